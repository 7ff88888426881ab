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

package mapper

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/fficb/code"
)

// Option configures the Mapper at build time.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default code for an HTTP status.
func WithHTTPDefault(status int, c code.Code) Option {
	return func(b *builder) { b.http.defaults[status] = c }
}

// WithGRPCDefault sets or replaces the default code for a gRPC code.
func WithGRPCDefault(gc codes.Code, c code.Code) Option {
	return func(b *builder) { b.grpc.defaults[gc] = c }
}

// WithHTTPOverride pins the code for an HTTP status regardless of site.
// Overrides beat prefix rules and defaults.
func WithHTTPOverride(status int, c code.Code) Option {
	return func(b *builder) { b.http.override[status] = c }
}

// WithGRPCOverride pins the code for a gRPC code regardless of site.
func WithGRPCOverride(gc codes.Code, c code.Code) Option {
	return func(b *builder) { b.grpc.override[gc] = c }
}

// WithHTTPPrefix adds a site prefix rule for an HTTP status. The longest
// matching prefix wins; "*" matches one segment.
func WithHTTPPrefix(status int, prefix string, c code.Code) Option {
	return func(b *builder) {
		b.http.prefixes[status] = append(b.http.prefixes[status], prefixRule{prefix: prefix, c: c})
	}
}

// WithGRPCPrefix adds a site prefix rule for a gRPC code.
func WithGRPCPrefix(gc codes.Code, prefix string, c code.Code) Option {
	return func(b *builder) {
		b.grpc.prefixes[gc] = append(b.grpc.prefixes[gc], prefixRule{prefix: prefix, c: c})
	}
}

// WithFallback replaces code.Internal as the result for statuses nothing
// else covers.
func WithFallback(c code.Code) Option {
	return func(b *builder) { b.fallback = c }
}
