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

// Package ctest provides C callbacks that record what they receive, for
// exercising package cabi from Go tests.
package ctest

/*
#cgo CFLAGS: -I${SRCDIR}/../..
#include <stdlib.h>
#include <string.h>
#include "fficb.h"

#define CTEST_TEXT 512

typedef struct ctest_record {
	int calls;
	void *user_data;
	int32_t error_code;
	int has_description;
	char description[CTEST_TEXT];
	int has_value;
	char value[CTEST_TEXT];
	uint64_t handle;
} ctest_record;

static void ctest_copy(char *dst, const char *src) {
	strncpy(dst, src, CTEST_TEXT - 1);
	dst[CTEST_TEXT - 1] = 0;
}

void ctest_on_result(void *user_data, const FfiResult *result) {
	ctest_record *rec = (ctest_record *)user_data;
	rec->calls++;
	rec->user_data = user_data;
	rec->error_code = result->error_code;
	rec->has_description = result->description != NULL;
	if (result->description != NULL) {
		ctest_copy(rec->description, result->description);
	}
}

void ctest_on_string(void *user_data, const FfiResult *result, const char *value) {
	ctest_record *rec = (ctest_record *)user_data;
	ctest_on_result(user_data, result);
	rec->has_value = value != NULL;
	if (value != NULL) {
		ctest_copy(rec->value, value);
	}
}

void ctest_on_handle(void *user_data, const FfiResult *result, uint64_t handle) {
	ctest_on_result(user_data, result);
	((ctest_record *)user_data)->handle = handle;
}
*/
import "C"

import "unsafe"

// ResultFunc returns the address of a fficb_result_cb that records into the
// Record passed as user data.
func ResultFunc() unsafe.Pointer { return unsafe.Pointer(C.ctest_on_result) }

// StringFunc is ResultFunc for fficb_string_cb.
func StringFunc() unsafe.Pointer { return unsafe.Pointer(C.ctest_on_string) }

// HandleFunc is ResultFunc for fficb_handle_cb.
func HandleFunc() unsafe.Pointer { return unsafe.Pointer(C.ctest_on_handle) }

// Record is a C allocated observation buffer.
type Record struct{ p *C.ctest_record }

// NewRecord allocates a zeroed Record. Call Free when done.
func NewRecord() *Record {
	return &Record{p: (*C.ctest_record)(C.calloc(1, C.sizeof_ctest_record))}
}

// Free releases the C memory.
func (r *Record) Free() { C.free(unsafe.Pointer(r.p)) }

// UserData is the pointer to pass as user data.
func (r *Record) UserData() unsafe.Pointer { return unsafe.Pointer(r.p) }

// Calls is the number of callback invocations seen.
func (r *Record) Calls() int { return int(r.p.calls) }

// SeenUserData is the user data pointer the last callback received.
func (r *Record) SeenUserData() unsafe.Pointer { return r.p.user_data }

// Code is the last error code received.
func (r *Record) Code() int32 { return int32(r.p.error_code) }

// Description is the last description received; false means NULL.
func (r *Record) Description() (string, bool) {
	if r.p.has_description == 0 {
		return "", false
	}
	return C.GoString(&r.p.description[0]), true
}

// Value is the last string payload received; false means NULL.
func (r *Record) Value() (string, bool) {
	if r.p.has_value == 0 {
		return "", false
	}
	return C.GoString(&r.p.value[0]), true
}

// Handle is the last handle payload received.
func (r *Record) Handle() uint64 { return uint64(r.p.handle) }

// CString allocates s in C memory. Release it with FreeString.
func CString(s string) unsafe.Pointer { return unsafe.Pointer(C.CString(s)) }

// FreeString releases a string from CString.
func FreeString(p unsafe.Pointer) { C.free(p) }
