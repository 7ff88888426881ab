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

package cabi_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fficb/apis"
	"dirpx.dev/fficb/cabi"
	"dirpx.dev/fficb/cabi/internal/ctest"
	"dirpx.dev/fficb/callback"
	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/internal/testutil"
	"dirpx.dev/fficb/result"
)

var quiet = callback.New(callback.WithLogger(slog.New(slog.DiscardHandler)))

func newRecord(t *testing.T) *ctest.Record {
	t.Helper()
	rec := ctest.NewRecord()
	t.Cleanup(rec.Free)
	return rec
}

func TestResultCallback_RoundTrip(t *testing.T) {
	cb := cabi.NewResultCallback(ctest.ResultFunc())

	t.Run("failure", func(t *testing.T) {
		rec := newRecord(t)
		callback.CallResult[callback.NoArgs](quiet, "app.ping", testutil.ErrTest, rec.UserData(), cb, callback.NoArgs{})

		assert.Equal(t, 1, rec.Calls())
		assert.Equal(t, rec.UserData(), rec.SeenUserData())
		assert.Equal(t, int32(-1), rec.Code())
		desc, ok := rec.Description()
		require.True(t, ok)
		assert.Equal(t, "Test Error", desc)
	})

	t.Run("success", func(t *testing.T) {
		rec := newRecord(t)
		callback.CallResult[callback.NoArgs](quiet, "app.ping", nil, rec.UserData(), cb, callback.NoArgs{})

		assert.Equal(t, 1, rec.Calls())
		assert.Equal(t, int32(0), rec.Code())
		_, ok := rec.Description()
		assert.False(t, ok)
	})

	t.Run("fallback", func(t *testing.T) {
		rec := newRecord(t)
		callback.CallResult[callback.NoArgs](quiet, "app.ping", testutil.Text("a\x00b"), rec.UserData(), cb, callback.NoArgs{})

		assert.Equal(t, int32(-2), rec.Code())
		desc, ok := rec.Description()
		require.True(t, ok)
		assert.Equal(t, result.FallbackDescription, desc)
	})
}

func TestStringCallback_RoundTrip(t *testing.T) {
	cb := cabi.NewStringCallback(ctest.StringFunc())

	rec := newRecord(t)
	callback.Catch[string](quiet, "app.greet", rec.UserData(), cb, func() (string, error) {
		return "héllo ✓", nil
	})
	assert.Equal(t, 1, rec.Calls())
	assert.Equal(t, int32(0), rec.Code())
	v, ok := rec.Value()
	require.True(t, ok)
	assert.Equal(t, "héllo ✓", v)

	rec = newRecord(t)
	callback.Catch[string](quiet, "app.greet", rec.UserData(), cb, func() (string, error) {
		return "ignored", testutil.Text("howdy")
	})
	assert.Equal(t, 1, rec.Calls())
	assert.Equal(t, int32(-2), rec.Code())
	desc, _ := rec.Description()
	assert.Equal(t, "howdy", desc)
	_, ok = rec.Value()
	assert.False(t, ok)
}

func TestHandleCallback_RoundTrip(t *testing.T) {
	cb := cabi.NewHandleCallback(ctest.HandleFunc())

	rec := newRecord(t)
	callback.CallResult[uint64](quiet, "app.open", nil, rec.UserData(), cb, 0xdeadbeef)
	assert.Equal(t, uint64(0xdeadbeef), rec.Handle())

	rec = newRecord(t)
	callback.CallResult[uint64](quiet, "app.open", testutil.ErrTest, rec.UserData(), cb, 0xdeadbeef)
	assert.Equal(t, int32(-1), rec.Code())
	assert.Equal(t, uint64(0), rec.Handle())
}

func TestCatch_PanicOverC(t *testing.T) {
	rec := newRecord(t)
	callback.Catch[uint64](quiet, "app.open", rec.UserData(), cabi.NewHandleCallback(ctest.HandleFunc()),
		func() (uint64, error) { panic("boom") })

	assert.Equal(t, 1, rec.Calls())
	assert.Equal(t, int32(code.Panic), rec.Code())
	desc, _ := rec.Description()
	assert.Equal(t, "panic: boom", desc)
}

func TestNilFunctionPointer(t *testing.T) {
	res := result.Fallback(-1)
	assert.NotPanics(t, func() {
		cabi.NewResultCallback(nil).Call(nil, &res, callback.NoArgs{})
		cabi.NewStringCallback(nil).Call(nil, &res, "x")
		cabi.NewHandleCallback(nil).Call(nil, &res, 1)
	})
}

func TestFromCString(t *testing.T) {
	p := ctest.CString("app.login")
	defer ctest.FreeString(p)
	s, err := cabi.FromCString(p)
	require.NoError(t, err)
	assert.Equal(t, "app.login", s)

	assertCode := func(t *testing.T, err error, want code.Code) {
		t.Helper()
		require.Error(t, err)
		var coded apis.CodedError
		require.True(t, errors.As(err, &coded))
		assert.Equal(t, int32(want), coded.ErrorCode())
	}

	t.Run("null", func(t *testing.T) {
		_, err := cabi.FromCString(nil)
		assertCode(t, err, code.NullPointer)
	})

	t.Run("invalid utf8", func(t *testing.T) {
		bad := ctest.CString("\xff\xfe")
		defer ctest.FreeString(bad)
		_, err := cabi.FromCString(bad)
		assertCode(t, err, code.InvalidString)
	})
}
