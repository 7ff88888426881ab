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
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/fficb/apis"
	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/site"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Seed a builder with the library defaults for HTTP and gRPC.
//  2. Apply opts in order.
//  3. Validate every code, normalize every prefix with site.Normalize and
//     compile the prefixes of each status into a segment trie.
//  4. Copy everything into maps owned by the mapper.
//
// Errors indicate an invalid prefix or a rule whose code is not a failure code.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if err := code.Validate(b.fallback); err != nil {
		return nil, fmt.Errorf("mapper: fallback code %d: %w", int32(b.fallback), err)
	}

	httpRules, err := b.http.freeze(httpLabel)
	if err != nil {
		return nil, err
	}
	grpcRules, err := b.grpc.freeze(grpcLabel)
	if err != nil {
		return nil, err
	}

	return &mapper{http: httpRules, grpc: grpcRules, fallback: b.fallback}, nil
}

// mapper resolves transport statuses with the precedence
//
//  1. exact override for the status;
//  2. longest site prefix registered for the status;
//  3. default for the status;
//  4. fallback.
//
// Lookups are O(site depth) and safe for concurrent use.
type mapper struct {
	http     rules[int]
	grpc     rules[codes.Code]
	fallback code.Code
}

var _ apis.Mapper = (*mapper)(nil)

// HTTPCode implements apis.Mapper.
func (m *mapper) HTTPCode(status int, s site.Site) code.Code {
	return m.http.resolve(status, s, m.fallback).code
}

// GRPCCode implements apis.Mapper.
func (m *mapper) GRPCCode(gc codes.Code, s site.Site) code.Code {
	return m.grpc.resolve(gc, s, m.fallback).code
}

// Explain traces how both statuses were resolved for s:
//
//	status=503 grpc=UNAVAILABLE(14) site="storage.pg.connect"
//	http: source=prefix pattern="storage.pg" -> dependency_failed(-13)
//	grpc: source=default -> unavailable(-10)
//
// The output is meant for people and tests, not for parsing.
func (m *mapper) Explain(status int, gc codes.Code, s site.Site) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "status=%d grpc=%s site=%q\n", status, grpcName(gc), string(s))
	_, _ = fmt.Fprintf(&b, "http: %s\n", m.http.resolve(status, s, m.fallback))
	_, _ = fmt.Fprintf(&b, "grpc: %s", m.grpc.resolve(gc, s, m.fallback))
	return b.String()
}
