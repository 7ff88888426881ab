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
	"maps"

	"google.golang.org/grpc/codes"

	"dirpx.dev/fficb/code"
)

type prefixRule struct {
	// prefix is the raw site prefix; it is normalized and validated in New.
	prefix string
	c      code.Code
}

// table collects the rules of one transport before New freezes them.
type table[K comparable] struct {
	defaults map[K]code.Code
	override map[K]code.Code
	prefixes map[K][]prefixRule
}

func newTable[K comparable](seed map[K]code.Code) table[K] {
	return table[K]{
		defaults: maps.Clone(seed),
		override: make(map[K]code.Code),
		prefixes: make(map[K][]prefixRule),
	}
}

type builder struct {
	http     table[int]
	grpc     table[codes.Code]
	fallback code.Code
}

// newBuilder seeds a builder with the library defaults.
func newBuilder() *builder {
	return &builder{
		http:     newTable(defaultHTTP),
		grpc:     newTable(defaultGRPC),
		fallback: code.Internal,
	}
}
