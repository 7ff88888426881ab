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

import "dirpx.dev/fficb/site"

// Option adjusts an Error built by E. Options run in the order given and
// go through the copy-on-write With* methods, so an Option never mutates an
// Error that is already shared:
//
//	return fficb.E(code.Invalid, "handle out of range",
//	    fficb.WithSiteOption("vault.open"),
//	    fficb.WithDetailOption("handle", h),
//	)
type Option func(*Error) *Error

// WithSiteOption names the entry point that failed. The site ends up in the
// diagnostic record and in mapper prefix lookups.
func WithSiteOption(s site.Site) Option {
	return func(e *Error) *Error { return e.WithSite(s) }
}

// WithDetailOption records one key/value for the debug form (%+v).
// Details never reach the native caller.
func WithDetailOption(k string, v any) Option {
	return func(e *Error) *Error { return e.WithDetail(k, v) }
}

// WithDetailsOption is WithDetailOption for several keys at once.
func WithDetailsOption(kv map[string]any) Option {
	return func(e *Error) *Error { return e.WithDetails(kv) }
}

// WithCauseOption attaches the underlying error. Its text is appended to the
// description as "message: cause" and errors.Is/As see through it.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error { return e.WithCause(err) }
}
