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

// Package segmenttrie indexes dot-separated site prefixes for
// longest-prefix lookups that respect segment boundaries.
package segmenttrie

import (
	"errors"
	"fmt"
	"strings"
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// ErrInvalidPrefix is returned by Insert for empty prefixes, empty or
// malformed segments, and prefixes made of wildcards only.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie maps site prefixes to values. The zero value is not usable; call New.
//
// A Trie is not safe for concurrent Insert. Lookups on a trie that is no
// longer modified may run concurrently.
type Trie[T any] struct {
	children map[string]*Trie[T]
	set      bool
	val      T
	// pattern is the prefix as inserted, kept for diagnostics.
	pattern string
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with prefix, replacing any earlier value.
//
//	"storage.pg"
//	"auth.*.verify"
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		switch {
		case s == Wildcard:
		case validSegment(s):
			concrete = true
		default:
			return fmt.Errorf("%w: %q: bad segment %q", ErrInvalidPrefix, prefix, s)
		}
	}
	if !concrete {
		return fmt.Errorf("%w: %q: no concrete segment", ErrInvalidPrefix, prefix)
	}

	n := t
	for _, s := range segs {
		child, ok := n.children[s]
		if !ok {
			child = New[T]()
			n.children[s] = child
		}
		n = child
	}
	n.set = true
	n.val = val
	n.pattern = prefix
	return nil
}

// Lookup returns the value of the deepest prefix matching key together with
// the prefix as it was inserted. At equal depth a concrete segment beats a
// wildcard. Keys with malformed segments only match up to the first bad one.
func (t *Trie[T]) Lookup(key string) (val T, pattern string, ok bool) {
	if t == nil {
		return val, "", false
	}
	best := -1
	var walk func(n *Trie[T], rest string, depth int)
	walk = func(n *Trie[T], rest string, depth int) {
		if n.set && depth > best {
			best, val, pattern = depth, n.val, n.pattern
		}
		if rest == "" {
			return
		}
		seg, next, _ := strings.Cut(rest, ".")
		if !validSegment(seg) {
			return
		}
		if child, ok := n.children[seg]; ok {
			walk(child, next, depth+1)
		}
		if child, ok := n.children[Wildcard]; ok {
			walk(child, next, depth+1)
		}
	}
	walk(t, key, 0)
	return val, pattern, best >= 0
}

// Match is Lookup without the pattern.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, _, ok := t.Lookup(key)
	return v, ok
}

// validSegment reports whether s matches [a-z][a-z0-9_]*.
func validSegment(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
