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

// Package mapper classifies failures of backend calls by transport status.
//
// Code behind the boundary talks to HTTP and gRPC services. When such a call
// fails, the status it returned has to become one of the codes reported to
// native callers. A Mapper makes that decision from the status and the site
// the call was made for:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(499, code.Canceled),
//	    mapper.WithHTTPPrefix(http.StatusServiceUnavailable, "storage.pg", code.DependencyFailed),
//	)
//	if err != nil {
//	    // invalid prefix or code
//	}
//	c := m.HTTPCode(503, "storage.pg.connect") // code.DependencyFailed
//
// # Resolution model
//
//  1. exact override for the status;
//  2. longest-prefix-match of the site among the rules of the status;
//  3. library default for the status (see defaults.go);
//  4. fallback, code.Internal unless WithFallback says otherwise.
//
// Prefixes are segment aware: "auth.j" never matches "auth.jwt", and "*"
// stands for exactly one segment.
//
// # Immutability
//
// New copies all inputs. A Mapper is a snapshot that can be shared across
// goroutines. Mapper.Explain prints which tier produced a code.
package mapper
