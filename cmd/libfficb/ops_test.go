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

package main

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fficb/apis"
	"dirpx.dev/fficb/callback"
	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/internal/testutil"
)

func codeOf(t *testing.T, err error) code.Code {
	t.Helper()
	var coded apis.CodedError
	require.True(t, errors.As(err, &coded), "error %v carries no code", err)
	return code.Code(coded.ErrorCode())
}

func TestCodeName(t *testing.T) {
	name, err := codeName(int32(code.NotFound))
	require.NoError(t, err)
	assert.Equal(t, "not_found", name)

	_, err = codeName(-4242)
	assert.Equal(t, code.NotFound, codeOf(t, err))
	assert.EqualError(t, err, "code -4242 has no registered name")
}

func TestNormalizeSite(t *testing.T) {
	raw := []byte("  App/Account-Login \x00")
	got, err := normalizeSite(unsafe.Pointer(&raw[0]))
	require.NoError(t, err)
	assert.Equal(t, "app.account_login", got)

	_, err = normalizeSite(nil)
	assert.Equal(t, code.NullPointer, codeOf(t, err))

	bad := []byte("1nope\x00")
	_, err = normalizeSite(unsafe.Pointer(&bad[0]))
	assert.Equal(t, code.Invalid, codeOf(t, err))

	empty := []byte("   \x00")
	_, err = normalizeSite(unsafe.Pointer(&empty[0]))
	assert.Equal(t, code.Missing, codeOf(t, err))
}

func TestValidateCode(t *testing.T) {
	d := callback.New()
	assert.Equal(t, int32(0), callback.CatchCode(d, siteCodeValidate, func() error { return validateCode(-20) }))
	assert.Equal(t, int32(code.Invalid), callback.CatchCode(d, siteCodeValidate, func() error { return validateCode(0) }))
	assert.Equal(t, int32(code.Invalid), callback.CatchCode(d, siteCodeValidate, func() error { return validateCode(5) }))
}

func TestEntryPointsThroughDispatcher(t *testing.T) {
	require.NotNil(t, dispatcher)

	var rec testutil.Recorder[string]
	callback.Catch[string](dispatcher, siteCodeName, nil, &rec, func() (string, error) { return codeName(-31) })
	callback.Catch[string](dispatcher, siteCodeName, nil, &rec, func() (string, error) { return codeName(-9999) })

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, int32(0), calls[0].Code)
	assert.Equal(t, "permission_denied", calls[0].Args)
	assert.Equal(t, int32(code.NotFound), calls[1].Code)
	require.NotNil(t, calls[1].Description)
	assert.Equal(t, "code -9999 has no registered name", *calls[1].Description)
}
