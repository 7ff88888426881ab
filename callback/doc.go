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

// Package callback delivers boundary results to caller-supplied callbacks.
//
// Every exported entry point of a native library follows the same shape:
// run the operation, then invoke the caller's callback exactly once with the
// caller's opaque user data, an FfiResult and the success payload. This
// package owns that last step:
//
//	func export(ud unsafe.Pointer, cb unsafe.Pointer) {
//	    callback.Catch(nil, "app.account.get", ud, cabi.NewHandleCallback(cb),
//	        func() (uint64, error) { return accounts.Open() })
//	}
//
// CallResult performs a single delivery, TryCB short-circuits a failed step
// inside a longer entry point, Catch and CatchCode additionally turn panics
// into code.Panic failures.
//
// The description buffer handed to a callback is pinned for the duration of
// the call and released afterwards. Callbacks must copy what they keep.
package callback
