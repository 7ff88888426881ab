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

package callback

import (
	"unsafe"

	"dirpx.dev/fficb/result"
)

// Callback receives the outcome of one boundary operation.
//
// userData is passed through untouched. res and everything it points to are
// only valid until Call returns. args is the success payload, or the zero
// value of A when res reports a failure.
type Callback[A any] interface {
	Call(userData unsafe.Pointer, res *result.FfiResult, args A)
}

// Func adapts an ordinary function to Callback.
type Func[A any] func(userData unsafe.Pointer, res *result.FfiResult, args A)

// Call implements Callback.
func (f Func[A]) Call(userData unsafe.Pointer, res *result.FfiResult, args A) {
	f(userData, res, args)
}

// NoArgs is the payload of callbacks that only receive a result.
type NoArgs struct{}
