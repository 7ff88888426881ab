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

// Command libfficb is the C shared library:
//
//	go build -buildmode=c-shared -o libfficb.so ./cmd/libfficb
//
// Every export reports its outcome through the protocol of package callback.
// Settings come from the environment, see internal/config.
package main

/*
#cgo CFLAGS: -I${SRCDIR}/../../cabi
#include <stdint.h>
#include "fficb.h"
*/
import "C"

import (
	"unsafe"

	"dirpx.dev/fficb/cabi"
	"dirpx.dev/fficb/callback"
)

//export fficb_code_name
func fficb_code_name(c C.int32_t, userData unsafe.Pointer, cb C.fficb_string_cb) {
	callback.Catch[string](dispatcher, siteCodeName, userData, cabi.NewStringCallback(unsafe.Pointer(cb)),
		func() (string, error) { return codeName(int32(c)) })
}

//export fficb_site_normalize
func fficb_site_normalize(raw *C.char, userData unsafe.Pointer, cb C.fficb_string_cb) {
	callback.Catch[string](dispatcher, siteSiteNormalize, userData, cabi.NewStringCallback(unsafe.Pointer(cb)),
		func() (string, error) { return normalizeSite(unsafe.Pointer(raw)) })
}

//export fficb_code_validate
func fficb_code_validate(c C.int32_t) C.int32_t {
	return C.int32_t(callback.CatchCode(dispatcher, siteCodeValidate,
		func() error { return validateCode(int32(c)) }))
}

func main() {}
