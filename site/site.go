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

package site

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Site is the canonical name of a boundary entry point.
//
// The original failure site is the only place where diagnostic context is
// available, so every dispatch names the entry point it runs for. Sites are
// dot-separated identifiers:
//
//   - "fficb.code.name"
//   - "app.account.login"
//   - "acme.store.v1.store.get_item"
//
// Mappers match on site prefixes, loggers attach the site to every record.
type Site string

// MinLength and MaxLength define the allowed length range for a non-empty
// site.
const (
	// MinLength is the minimum length for a non-empty site.
	MinLength = 3

	// MaxLength is the maximum length for a site. gRPC-derived sites
	// ("package.version.service.method") are the longest in practice.
	MaxLength = 128

	// MaxSegments is the maximum number of dot-separated segments.
	MaxSegments = 8
)

const (
	// siteFmt accepts 1 to MaxSegments segments; each segment starts with a
	// lowercase ASCII letter and continues with lowercase letters, digits or
	// underscores.
	//
	// NOTE: the empty string is handled separately (no site provided) and
	// never reaches this regexp.
	siteFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,7}$`
)

var (
	// siteRe is the compiled regexp for siteFmt.
	siteRe = regexp.MustCompile(siteFmt)
)

var (
	// ErrSiteInvalidFormat is returned when a site does not match siteFmt.
	ErrSiteInvalidFormat = errors.New("fficb: invalid site format")
	// ErrSiteInvalidLength is returned when a site is too short or too long.
	ErrSiteInvalidLength = errors.New("fficb: invalid site length")
)

// Ensure Site implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Site)(nil)
	_ encoding.TextUnmarshaler = (*Site)(nil)
)

// Empty is the zero-value site, meaning "entry point not named".
var Empty Site = ""

// Normalize brings an arbitrary string closer to the canonical site form:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (gRPC methods and C symbol paths use slashes)
//   - replace "-" with "_"
//
// It does NOT guarantee validity; callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s.
//
// The empty string yields Empty without error.
func Parse(s string) (Site, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Site(s), nil
}

// MustParse is the panic-on-error variant of Parse, intended for
// package-level site declarations next to exported entry points.
//
// Unlike Parse, MustParse rejects the empty string.
func MustParse(s string) Site {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if st == Empty {
		panic("fficb: empty site in MustParse")
	}
	return st
}

// Validate checks whether st is in canonical form. Empty is valid.
func Validate(st Site) error {
	if st == Empty {
		return nil
	}
	return validate(string(st))
}

// Segments splits the site into its dot-separated parts.
func (st Site) Segments() []string {
	if st == Empty {
		return nil
	}
	return strings.Split(string(st), ".")
}

// String returns the canonical string representation of the site.
func (st Site) String() string {
	return string(st)
}

// MarshalText implements encoding.TextMarshaler.
func (st Site) MarshalText() ([]byte, error) {
	if err := Validate(st); err != nil {
		return nil, err
	}
	if st == Empty {
		return []byte{}, nil
	}
	return []byte(st), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (st *Site) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrSiteInvalidLength
	}
	if !siteRe.MatchString(s) {
		return ErrSiteInvalidFormat
	}
	return nil
}
