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

// Package cabi binds the callback protocol to C function pointers.
//
// The C side of the contract lives in fficb.h next to this file. Each
// callback type here wraps one of the typedefs declared there and satisfies
// callback.Callback, so it can be passed straight to callback.Catch and
// friends:
//
//	//export fficb_account_open
//	func fficb_account_open(path *C.char, ud unsafe.Pointer, cb C.fficb_handle_cb) {
//	    callback.Catch(nil, "app.account.open", ud, cabi.NewHandleCallback(unsafe.Pointer(cb)),
//	        func() (uint64, error) { ... })
//	}
//
// C types are private to the package that imports "C", so constructors take
// function pointers as unsafe.Pointer.
package cabi
