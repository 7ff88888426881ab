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

// Package result turns errors into the values that cross the C boundary.
//
// Two steps are involved:
//
//  1. Normalizer reduces an error to a NativeResult: a numeric code and an
//     optional description. It also writes the single diagnostic record for
//     the failure.
//
//  2. NativeResult.ToFFI converts that value into an FfiResult whose layout
//     equals the C struct
//
//     typedef struct { int32_t error_code; const char *description; } FfiResult;
//
// A nil description always travels with code 0 and a non-nil one always
// travels with a negative code. When a description cannot be represented as
// a C string, Fallback supplies a static replacement text so the code still
// reaches the caller.
package result
