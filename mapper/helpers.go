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
	"maps"
	"strconv"
	"strings"
	"unicode"

	"google.golang.org/grpc/codes"

	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/mapper/internal/segmenttrie"
	"dirpx.dev/fficb/site"
)

const (
	sourceOverride = "override"
	sourcePrefix   = "prefix"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// rules is the frozen form of a table.
type rules[K comparable] struct {
	defaults map[K]code.Code
	override map[K]code.Code
	tries    map[K]*segmenttrie.Trie[code.Code]
}

// freeze validates every code and prefix of t and copies it into fresh maps.
// label names a key in error messages.
func (t table[K]) freeze(label func(K) string) (rules[K], error) {
	for k, c := range t.defaults {
		if err := code.Validate(c); err != nil {
			return rules[K]{}, fmt.Errorf("mapper: default for %s: code %d: %w", label(k), int32(c), err)
		}
	}
	for k, c := range t.override {
		if err := code.Validate(c); err != nil {
			return rules[K]{}, fmt.Errorf("mapper: override for %s: code %d: %w", label(k), int32(c), err)
		}
	}

	tries := make(map[K]*segmenttrie.Trie[code.Code], len(t.prefixes))
	for k, rs := range t.prefixes {
		if len(rs) == 0 {
			continue
		}
		tr := segmenttrie.New[code.Code]()
		for _, r := range rs {
			if err := code.Validate(r.c); err != nil {
				return rules[K]{}, fmt.Errorf("mapper: prefix %q for %s: code %d: %w", r.prefix, label(k), int32(r.c), err)
			}
			if err := tr.Insert(site.Normalize(r.prefix), r.c); err != nil {
				return rules[K]{}, fmt.Errorf("mapper: prefix %q for %s: %w", r.prefix, label(k), err)
			}
		}
		tries[k] = tr
	}

	return rules[K]{
		defaults: maps.Clone(t.defaults),
		override: maps.Clone(t.override),
		tries:    tries,
	}, nil
}

// decision records which tier produced a code.
type decision struct {
	code    code.Code
	source  string
	pattern string
}

func (d decision) String() string {
	if d.source == sourcePrefix {
		return fmt.Sprintf("source=%s pattern=%q -> %s", d.source, d.pattern, d.code)
	}
	return fmt.Sprintf("source=%s -> %s", d.source, d.code)
}

func (r rules[K]) resolve(k K, s site.Site, fallback code.Code) decision {
	if c, ok := r.override[k]; ok {
		return decision{code: c, source: sourceOverride}
	}
	if tr := r.tries[k]; tr != nil {
		if c, pat, ok := tr.Lookup(string(s)); ok {
			return decision{code: c, source: sourcePrefix, pattern: pat}
		}
	}
	if c, ok := r.defaults[k]; ok {
		return decision{code: c, source: sourceDefault}
	}
	return decision{code: fallback, source: sourceFallback}
}

func httpLabel(status int) string { return "HTTP status " + strconv.Itoa(status) }

func grpcLabel(gc codes.Code) string { return "gRPC code " + grpcName(gc) }

// grpcName renders gc the way it appears in the gRPC docs, e.g.
// DEADLINE_EXCEEDED(4).
func grpcName(gc codes.Code) string {
	name := gc.String()
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(rune(name[i-1])) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return fmt.Sprintf("%s(%d)", b.String(), uint32(gc))
}
