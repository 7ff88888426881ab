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

package fficb

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"dirpx.dev/fficb/apis"
	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/site"
)

// Error is the canonical rich error type of the boundary.
//
// It carries:
//   - Code: numeric code reported to native callers (required, negative);
//   - Site: entry point the failure was raised for (optional);
//   - Message: human-oriented description, delivered as the C string;
//   - Details: key/value payload, shown only in the debug representation;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Code is the numeric classification of the error. Must be a failure
	// code from package code or one registered by the embedding product.
	Code code.Code

	// Site names the boundary entry point, e.g. "app.account.login".
	// May be empty when the dispatcher supplies the site instead.
	Site site.Site

	// Message is the human-readable explanation handed to the callback.
	Message string

	// Details is an optional, shallow map of extra fields for diagnostics.
	// The map is treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any).
	Cause error
}

var (
	_ apis.CodedError = (*Error)(nil)
	_ apis.SitedError = (*Error)(nil)
	_ fmt.Formatter   = (*Error)(nil)
)

// E is a convenience constructor for Error.
//
// Usage:
//
//	return fficb.E(code.NotFound, "account does not exist",
//	    fficb.WithSiteOption("app.account.login"),
//	    fficb.WithDetailOption("account", id),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Errorf is E with a formatted message.
func Errorf(c code.Code, format string, args ...any) *Error {
	return &Error{Code: c, Message: fmt.Sprintf(format, args...)}
}

// Error implements the built-in error interface and is the description
// delivered across the boundary:
//
//	<message>
//
// or, when a cause is attached:
//
//	<message>: <cause>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		if e.Message == "" {
			return e.Cause.Error()
		}
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// ErrorCode implements apis.CodedError.
//
// A nil receiver or a non-failure code reports code.Internal, so an Error can
// never be mistaken for success.
func (e *Error) ErrorCode() int32 {
	if e == nil || code.Validate(e.Code) != nil {
		return int32(code.Internal)
	}
	return int32(e.Code)
}

// ErrorSite implements apis.SitedError.
func (e *Error) ErrorSite() string {
	if e == nil {
		return ""
	}
	return string(e.Site)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Format implements fmt.Formatter.
//
// %s and %v print the description. %+v prints the debug representation that
// the normalizer logs at the failure site:
//
//	fficb.Error{code=not_found(-20) site="app.login" message="no account" details={id=7} cause=...}
//
// Details are printed in key order so log lines are stable.
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			e.writeDebug(f)
			return
		}
		_, _ = io.WriteString(f, e.Error())
	case 's':
		_, _ = io.WriteString(f, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(*fficb.Error=%s)", verb, e.Error())
	}
}

func (e *Error) writeDebug(w io.Writer) {
	if e == nil {
		_, _ = io.WriteString(w, "fficb.Error(nil)")
		return
	}
	_, _ = fmt.Fprintf(w, "fficb.Error{code=%s", e.Code)
	if e.Site != site.Empty {
		_, _ = fmt.Fprintf(w, " site=%q", e.Site)
	}
	_, _ = fmt.Fprintf(w, " message=%q", e.Message)
	if len(e.Details) > 0 {
		_, _ = io.WriteString(w, " details={")
		for i, k := range slices.Sorted(maps.Keys(e.Details)) {
			if i > 0 {
				_, _ = io.WriteString(w, " ")
			}
			_, _ = fmt.Fprintf(w, "%s=%v", k, e.Details[k])
		}
		_, _ = io.WriteString(w, "}")
	}
	if e.Cause != nil {
		_, _ = fmt.Fprintf(w, " cause=%+v", e.Cause)
	}
	_, _ = io.WriteString(w, "}")
}

// WithSite returns a shallow copy of e with the given Site set.
// The original error is not modified.
func (e *Error) WithSite(s site.Site) *Error {
	cp := *e
	cp.Site = s
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The method always copies the map to preserve immutability.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	// No details yet, create a new single-entry map.
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	maps.Copy(m, cp.Details)
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into
// Details, kv taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	maps.Copy(m, cp.Details)
	maps.Copy(m, kv)
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
