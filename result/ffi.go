/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package result

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"dirpx.dev/fficb/code"
)

// FallbackDescription replaces descriptions that cannot be converted into a
// C string.
const FallbackDescription = "Could not convert error description into string"

// fallbackText is allocated once and never freed, so it can be handed out
// without pinning.
var fallbackText = []byte(FallbackDescription + "\x00")

// ErrConversion matches every *ConversionError.
var ErrConversion = errors.New("result: description is not representable as a C string")

// ConversionError reports a description with an interior NUL byte.
type ConversionError struct {
	// Code is the code of the failure whose description was rejected.
	Code int32
	// Offset is the byte offset of the first NUL.
	Offset int
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("result: description for code %d has a NUL byte at offset %d", e.Code, e.Offset)
}

// Is makes errors.Is(err, ErrConversion) true.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// NativeResult is the language-level outcome of a boundary operation.
//
// Description is nil exactly when ErrorCode is 0.
type NativeResult struct {
	ErrorCode   int32
	Description *string
}

// Success returns the successful NativeResult.
func Success() NativeResult { return NativeResult{} }

// Failure returns a NativeResult carrying c and desc.
func Failure(c int32, desc string) NativeResult {
	return NativeResult{ErrorCode: c, Description: &desc}
}

// IsSuccess reports whether n carries no description.
func (n NativeResult) IsSuccess() bool { return n.Description == nil }

// ToFFI converts n into its C representation.
//
// A nil description produces code 0 whatever ErrorCode says. A description
// paired with a non-negative code is reported with code.Internal. The text is
// copied into a new nul-terminated buffer owned by the Go heap; callers that
// hand it to C must keep it pinned until the callee returns.
func (n NativeResult) ToFFI() (FfiResult, error) {
	if n.Description == nil {
		return FfiResult{}, nil
	}
	c := n.ErrorCode
	if code.Validate(code.Code(c)) != nil {
		c = int32(code.Internal)
	}
	desc := *n.Description
	if i := strings.IndexByte(desc, 0); i >= 0 {
		return FfiResult{}, &ConversionError{Code: c, Offset: i}
	}
	buf := make([]byte, len(desc)+1)
	copy(buf, desc)
	return FfiResult{ErrorCode: c, Description: &buf[0]}, nil
}

// FfiResult mirrors the C struct FfiResult field for field.
//
// Description points at a nul-terminated UTF-8 buffer, or is nil on success.
// The pointee is only valid while the callback that received it runs.
type FfiResult struct {
	ErrorCode   int32
	Description *byte
}

// Fallback returns the result delivered when the real description could not
// be converted. The code is preserved.
func Fallback(c int32) FfiResult {
	return FfiResult{ErrorCode: c, Description: &fallbackText[0]}
}

// IsFallback reports whether r carries the static fallback text.
func (r *FfiResult) IsFallback() bool {
	return r != nil && r.Description == &fallbackText[0]
}

// DescriptionBytes copies the description out of r, without the terminator.
// It returns nil on success.
func (r *FfiResult) DescriptionBytes() []byte {
	if r == nil || r.Description == nil {
		return nil
	}
	p := unsafe.Pointer(r.Description)
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return bytes.Clone(unsafe.Slice(r.Description, n))
}

// DescriptionString is DescriptionBytes as a string.
func (r *FfiResult) DescriptionString() string {
	return string(r.DescriptionBytes())
}
