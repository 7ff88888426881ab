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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Code is the numeric error code handed to native callers.
//
// It is a distinct type (not just int32) so that packages can declare which
// values are part of the wire contract and so that raw integers coming from C
// are not mixed with validated codes by accident.
//
// IMPORTANT: Success (0) is the only non-negative value that ever crosses the
// boundary. Every failure MUST carry a negative code.
type Code int32

// Success is the code reported when an operation completed without error.
const Success Code = 0

const (
	// nameFmt is the regular expression registered code names must match.
	//
	// Names follow the same shape as gRPC-style identifiers: a lowercase ASCII
	// letter followed by 2..63 lowercase letters, digits or underscores.
	nameFmt = `^[a-z][a-z0-9_]{2,63}$`
)

var (
	// nameRe is the compiled form of nameFmt.
	nameRe = regexp.MustCompile(nameFmt)
)

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as a failure code.
	ErrCodeInvalid = errors.New("fficb: invalid code")

	// ErrNameInvalid is returned by Register for malformed names.
	ErrNameInvalid = errors.New("fficb: invalid code name")

	// ErrDuplicate is returned by Register when a name or a code is already taken.
	ErrDuplicate = errors.New("fficb: duplicate code registration")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// registry holds the name <-> code tables. The built-in codes are seeded from
// codes.go at init; embedding products add their own through Register.
var registry = struct {
	sync.RWMutex
	byName map[string]Code
	byCode map[Code]string
}{
	byName: make(map[string]Code, len(builtin)),
	byCode: make(map[Code]string, len(builtin)),
}

func init() {
	for c, name := range builtin {
		registry.byName[name] = c
		registry.byCode[c] = name
	}
}

// Register adds a name for a product-specific failure code.
//
// The name is normalized first. Registering a name or a code twice is an
// error, because both directions of the table are part of the wire contract.
func Register(name string, c Code) error {
	name = Normalize(name)
	if !nameRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrNameInvalid, name)
	}
	if err := Validate(c); err != nil {
		return err
	}

	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.byName[name]; ok {
		return fmt.Errorf("%w: name %q", ErrDuplicate, name)
	}
	if _, ok := registry.byCode[c]; ok {
		return fmt.Errorf("%w: code %d", ErrDuplicate, int32(c))
	}
	registry.byName[name] = c
	registry.byCode[c] = name
	return nil
}

// MustRegister is the panic-on-error variant of Register. It is meant for
// package-level var blocks of products that embed the library.
func MustRegister(name string, c Code) Code {
	if err := Register(name, c); err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the code registered under name (after normalization).
func Lookup(name string) (Code, bool) {
	registry.RLock()
	defer registry.RUnlock()
	c, ok := registry.byName[Normalize(name)]
	return c, ok
}

// Parse accepts either a decimal integer ("-20") or a registered name
// ("not_found", "NOT-FOUND") and returns the failure code it denotes.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if s == "" {
		return Success, ErrCodeInvalid
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		c := Code(n)
		if err := Validate(c); err != nil {
			return Success, err
		}
		return c, nil
	}
	if c, ok := Lookup(s); ok {
		return c, nil
	}
	return Success, ErrCodeInvalid
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings a user-provided name closer to the canonical form.
//
// Only obvious, non-lossy transformations are applied:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_'.
//
// Decimal input such as "-20" starts with '-' and is therefore left untouched.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return s
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether c is usable as a failure code.
// Success and positive values are rejected.
func Validate(c Code) error {
	if c >= Success {
		return ErrCodeInvalid
	}
	return nil
}

// IsSuccess reports whether c is the success code.
func (c Code) IsSuccess() bool { return c == Success }

// Name returns the registered name of c, or "" when c has none.
func (c Code) Name() string {
	if c == Success {
		return "success"
	}
	registry.RLock()
	defer registry.RUnlock()
	return registry.byCode[c]
}

// String renders c as "name(-20)" when it is registered and as the bare
// decimal value otherwise.
func (c Code) String() string {
	if name := c.Name(); name != "" {
		return fmt.Sprintf("%s(%d)", name, int32(c))
	}
	return strconv.FormatInt(int64(c), 10)
}

// MarshalText implements encoding.TextMarshaler.
//
// The decimal form is emitted so that consumers without the name table can
// still read the value.
func (c Code) MarshalText() ([]byte, error) {
	if c != Success {
		if err := Validate(c); err != nil {
			return nil, err
		}
	}
	return []byte(strconv.FormatInt(int64(c), 10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Both decimal values and registered names are accepted. "0" yields Success.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	if s == "0" {
		*c = Success
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
