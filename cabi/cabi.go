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

package cabi

/*
#cgo CFLAGS: -I${SRCDIR}
#include <stdlib.h>
#include "fficb.h"

static inline void fficb_call_result(fficb_result_cb cb, void *user_data, const FfiResult *result) {
	cb(user_data, result);
}

static inline void fficb_call_string(fficb_string_cb cb, void *user_data, const FfiResult *result, const char *value) {
	cb(user_data, result, value);
}

static inline void fficb_call_handle(fficb_handle_cb cb, void *user_data, const FfiResult *result, uint64_t handle) {
	cb(user_data, result, handle);
}
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"

	"dirpx.dev/fficb"
	"dirpx.dev/fficb/callback"
	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/result"
)

// result.FfiResult must stay layout compatible with the C struct. Each line
// fails to compile when the difference it encodes is negative.
var (
	_ [unsafe.Sizeof(C.FfiResult{}) - unsafe.Sizeof(result.FfiResult{})]struct{}
	_ [unsafe.Sizeof(result.FfiResult{}) - unsafe.Sizeof(C.FfiResult{})]struct{}
	_ [unsafe.Offsetof(C.FfiResult{}.description) - unsafe.Offsetof(result.FfiResult{}.Description)]struct{}
	_ [unsafe.Offsetof(result.FfiResult{}.Description) - unsafe.Offsetof(C.FfiResult{}.description)]struct{}
	_ [unsafe.Sizeof(C.int32_t(0)) - unsafe.Sizeof(int32(0))]struct{}
	_ [unsafe.Sizeof(int32(0)) - unsafe.Sizeof(C.int32_t(0))]struct{}
)

var (
	_ callback.Callback[callback.NoArgs] = ResultCallback{}
	_ callback.Callback[string]          = StringCallback{}
	_ callback.Callback[uint64]          = HandleCallback{}
)

func cResult(res *result.FfiResult) *C.FfiResult {
	return (*C.FfiResult)(unsafe.Pointer(res))
}

// ResultCallback wraps a fficb_result_cb.
type ResultCallback struct{ fn C.fficb_result_cb }

// NewResultCallback wraps fn, which must be a fficb_result_cb or nil.
func NewResultCallback(fn unsafe.Pointer) ResultCallback {
	return ResultCallback{fn: C.fficb_result_cb(fn)}
}

// Call implements callback.Callback. A NULL function pointer is skipped.
func (c ResultCallback) Call(userData unsafe.Pointer, res *result.FfiResult, _ callback.NoArgs) {
	if c.fn == nil {
		return
	}
	C.fficb_call_result(c.fn, userData, cResult(res))
}

// StringCallback wraps a fficb_string_cb.
//
// The payload is copied into C memory for the duration of the call and
// freed afterwards. On failure the callee receives NULL. A payload with an
// interior NUL is truncated at that byte.
type StringCallback struct{ fn C.fficb_string_cb }

// NewStringCallback wraps fn, which must be a fficb_string_cb or nil.
func NewStringCallback(fn unsafe.Pointer) StringCallback {
	return StringCallback{fn: C.fficb_string_cb(fn)}
}

// Call implements callback.Callback.
func (c StringCallback) Call(userData unsafe.Pointer, res *result.FfiResult, value string) {
	if c.fn == nil {
		return
	}
	var cv *C.char
	if res.ErrorCode == 0 {
		cv = C.CString(value)
		defer C.free(unsafe.Pointer(cv))
	}
	C.fficb_call_string(c.fn, userData, cResult(res), cv)
}

// HandleCallback wraps a fficb_handle_cb.
type HandleCallback struct{ fn C.fficb_handle_cb }

// NewHandleCallback wraps fn, which must be a fficb_handle_cb or nil.
func NewHandleCallback(fn unsafe.Pointer) HandleCallback {
	return HandleCallback{fn: C.fficb_handle_cb(fn)}
}

// Call implements callback.Callback.
func (c HandleCallback) Call(userData unsafe.Pointer, res *result.FfiResult, handle uint64) {
	if c.fn == nil {
		return
	}
	if res.ErrorCode != 0 {
		handle = 0
	}
	C.fficb_call_handle(c.fn, userData, cResult(res), C.uint64_t(handle))
}

// FromCString copies a nul-terminated C string argument into Go.
//
// NULL is reported as code.NullPointer and bytes that are not valid UTF-8 as
// code.InvalidString.
func FromCString(p unsafe.Pointer) (string, error) {
	if p == nil {
		return "", fficb.E(code.NullPointer, "string argument is NULL")
	}
	s := C.GoString((*C.char)(p))
	if !utf8.ValidString(s) {
		return "", fficb.E(code.InvalidString, "string argument is not valid UTF-8")
	}
	return s, nil
}
