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
	"encoding"
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  internal  ", "internal"},
		{"to lower", "InVaLiD", "invalid"},
		{"dash to underscore", "not-found", "not_found"},
		{"mixed", "  ALREADY-EXISTS  ", "already_exists"},
		{"negative number untouched", " -20 ", "-20"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"decimal", "-20", NotFound},
		{"decimal unregistered", "-4242", Code(-4242)},
		{"name", "internal", Internal},
		{"name with spaces", "  not_found  ", NotFound},
		{"upper", "CONFLICT", Conflict},
		{"dash", "already-exists", AlreadyExists},
		{"int32 min", "-2147483648", Code(-2147483648)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"zero", "0"},
		{"positive", "7"},
		{"unknown name", "no_such_code"},
		{"overflow", "-2147483649"},
		{"garbage", "!@#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %d, want error", tt.in, got)
			}
			if !errors.Is(err, ErrCodeInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrCodeInvalid", tt.in, err)
			}
			if got != Success {
				t.Fatalf("Parse(%q) on error must return Success, got %d", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Code{Internal, NotFound, Panic, Code(-1 << 31)}
	for _, c := range valid {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%d) unexpected error: %v", c, err)
		}
	}

	invalid := []Code{Success, 1, 1<<31 - 1}
	for _, c := range invalid {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%d) expected error", c)
		}
	}
}

func TestBuiltinCodes_AreUniqueAndNegative(t *testing.T) {
	seen := make(map[string]Code, len(builtin))
	for c, name := range builtin {
		if err := Validate(c); err != nil {
			t.Fatalf("builtin %q has non-failure code %d", name, c)
		}
		if prev, ok := seen[name]; ok {
			t.Fatalf("name %q used by %d and %d", name, prev, c)
		}
		seen[name] = c
		if !nameRe.MatchString(name) {
			t.Fatalf("builtin name %q does not match %s", name, nameFmt)
		}
	}
}

func TestRegister(t *testing.T) {
	const custom Code = -1001
	// The registry is process-wide; tolerate a previous -count run.
	if err := Register("Vault-Locked", custom); err != nil && !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Register: %v", err)
	}
	if got, ok := Lookup("vault_locked"); !ok || got != custom {
		t.Fatalf("Lookup(vault_locked) = %d,%v; want %d,true", got, ok, custom)
	}
	if got := custom.String(); got != "vault_locked(-1001)" {
		t.Fatalf("String() = %q", got)
	}

	tests := []struct {
		name string
		in   string
		c    Code
		want error
	}{
		{"duplicate name", "vault_locked", -1002, ErrDuplicate},
		{"duplicate code", "vault_sealed", custom, ErrDuplicate},
		{"builtin code", "my_internal", Internal, ErrDuplicate},
		{"bad name", "x", -1003, ErrNameInvalid},
		{"success code", "all_good", Success, ErrCodeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Register(tt.in, tt.c); !errors.Is(err, tt.want) {
				t.Fatalf("Register(%q, %d) = %v, want %v", tt.in, tt.c, err, tt.want)
			}
		})
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("INVALID CODE ??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	if c := MustParse("not_found"); c != NotFound {
		t.Fatalf("MustParse(valid) = %d, want %d", c, NotFound)
	}
}

func TestCode_String(t *testing.T) {
	tests := []struct {
		c    Code
		want string
	}{
		{Success, "success(0)"},
		{Internal, "internal(-1)"},
		{NotFound, "not_found(-20)"},
		{Code(-31337), "-31337"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Fatalf("Code(%d).String() = %q, want %q", int32(tt.c), got, tt.want)
		}
	}
}

func TestCode_MarshalText(t *testing.T) {
	text, err := NotFound.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "-20" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "-20")
	}

	text, err = Success.MarshalText()
	if err != nil || string(text) != "0" {
		t.Fatalf("MarshalText(Success) = %q, %v", string(text), err)
	}

	if _, err := Code(5).MarshalText(); err == nil {
		t.Fatalf("MarshalText() on positive code must return error")
	}
}

func TestCode_UnmarshalText(t *testing.T) {
	var c Code
	if err := c.UnmarshalText([]byte("  NOT-FOUND  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != NotFound {
		t.Fatalf("UnmarshalText() = %d, want %d", c, NotFound)
	}

	if err := c.UnmarshalText([]byte("0")); err != nil || c != Success {
		t.Fatalf("UnmarshalText(0) = %d, %v", c, err)
	}

	var bad Code
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}
