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

package result_test

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fficb"
	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/internal/testutil"
	"dirpx.dev/fficb/result"
	"dirpx.dev/fficb/site"
)

type rawCode int32

func (e rawCode) Error() string    { return fmt.Sprintf("raw %d", int32(e)) }
func (e rawCode) ErrorCode() int32 { return int32(e) }

func TestNormalize_Success(t *testing.T) {
	logger, logs := testutil.NewLogger()
	n := result.NewNormalizer(result.WithLogger(logger))

	c, desc := n.Normalize("app.ping", nil)
	assert.Equal(t, int32(0), c)
	assert.Nil(t, desc)
	assert.Empty(t, logs.Lines())
}

func TestNormalize_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int32
		wantDesc string
	}{
		{"test variant", testutil.ErrTest, -1, "Test Error"},
		{"text variant", testutil.Text("howdy"), -2, "howdy"},
		{"wrapped", fmt.Errorf("open: %w", testutil.ErrTest), -1, "open: Test Error"},
		{"zero code", rawCode(0), -1, "raw 0"},
		{"positive code", rawCode(7), -1, "raw 7"},
		{"unknown error", errors.New("boom"), -1, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := testutil.NewLogger()
			n := result.NewNormalizer(result.WithLogger(logger))

			c, desc := n.Normalize("app.test", tt.err)
			assert.Equal(t, tt.wantCode, c)
			require.NotNil(t, desc)
			assert.Equal(t, tt.wantDesc, *desc)

			lines := logs.Lines()
			require.Len(t, lines, 1)
			assert.Contains(t, lines[0], "level=DEBUG")
			assert.Contains(t, lines[0], fmt.Sprintf("**ERRNO: %d** %s", tt.wantCode, tt.wantDesc))
			assert.Contains(t, lines[0], "site=app.test")
			assert.Contains(t, lines[0], fmt.Sprintf("code=%d", tt.wantCode))
		})
	}
}

func TestNormalize_LogUsesDebugRepresentation(t *testing.T) {
	logger, logs := testutil.NewLogger()
	n := result.NewNormalizer(result.WithLogger(logger))

	err := fficb.E(code.NotFound, "no account", fficb.WithDetailOption("id", 7))
	n.Normalize("app.login", err)

	lines := logs.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "**ERRNO: -20** fficb.Error{code=not_found(-20)")
	assert.Contains(t, lines[0], "details={id=7}")
}

func TestNormalize_SiteFromError(t *testing.T) {
	logger, logs := testutil.NewLogger()
	n := result.NewNormalizer(result.WithLogger(logger))

	n.Normalize(site.Empty, fficb.E(code.Gone, "expired").WithSite("app.session.refresh"))
	n.Normalize("app.explicit", fficb.E(code.Gone, "expired").WithSite("app.session.refresh"))

	lines := logs.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "site=app.session.refresh")
	assert.Contains(t, lines[1], "site=app.explicit")
}

func TestNormalize_Classifiers(t *testing.T) {
	errBackend := errors.New("backend said no")
	var seen []site.Site

	n := result.NewNormalizer(
		result.WithLogger(slog.New(slog.DiscardHandler)),
		result.WithClassifier(func(s site.Site, err error) (code.Code, bool) {
			seen = append(seen, s)
			return 0, false
		}),
		result.WithClassifier(func(_ site.Site, err error) (code.Code, bool) {
			return code.Success, errors.Is(err, errBackend)
		}),
		result.WithClassifier(func(_ site.Site, err error) (code.Code, bool) {
			return code.PermissionDenied, errors.Is(err, errBackend)
		}),
		result.WithClassifier(nil),
	)

	assert.Equal(t, int32(code.PermissionDenied), n.Code("app.vault", fmt.Errorf("call: %w", errBackend)))
	assert.Equal(t, int32(code.Internal), n.Code("app.vault", errors.New("other")))
	assert.Equal(t, []site.Site{"app.vault", "app.vault"}, seen)

	// Coded errors never reach the classifiers.
	assert.Equal(t, int32(-2), n.Code("app.coded", testutil.Text("x")))
	assert.Len(t, seen, 2)
}

func TestNormalize_FallbackCode(t *testing.T) {
	discard := result.WithLogger(slog.New(slog.DiscardHandler))

	n := result.NewNormalizer(discard, result.WithFallbackCode(code.Unavailable))
	assert.Equal(t, int32(code.Unavailable), n.Code("", errors.New("x")))
	assert.Equal(t, int32(code.Unavailable), n.Code("", rawCode(3)))

	n = result.NewNormalizer(discard, result.WithFallbackCode(code.Success))
	assert.Equal(t, int32(code.Internal), n.Code("", errors.New("x")))
}

func TestNormalize_DebugDisabled(t *testing.T) {
	var b strings.Builder
	logger := slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}))
	n := result.NewNormalizer(result.WithLogger(logger))

	got := n.Native("app.test", testutil.ErrTest)
	assert.Equal(t, int32(-1), got.ErrorCode)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Test Error", *got.Description)
	assert.False(t, got.IsSuccess())
	assert.Empty(t, b.String())
}

func TestNormalize_DefaultLogger(t *testing.T) {
	n := result.NewNormalizer()
	assert.Same(t, slog.Default(), n.Logger())
}

func TestToFFI_Success(t *testing.T) {
	r, err := result.Success().ToFFI()
	require.NoError(t, err)
	assert.Equal(t, int32(0), r.ErrorCode)
	assert.Nil(t, r.Description)
	assert.Nil(t, r.DescriptionBytes())

	// A missing description wins over a stray code.
	r, err = result.NativeResult{ErrorCode: -5}.ToFFI()
	require.NoError(t, err)
	assert.Equal(t, int32(0), r.ErrorCode)
	assert.Nil(t, r.Description)
}

func TestToFFI_Failure(t *testing.T) {
	tests := []struct {
		name     string
		in       result.NativeResult
		wantCode int32
	}{
		{"ascii", result.Failure(-1, "Test Error"), -1},
		{"utf8", result.Failure(-2, "héllo ✓ 日本"), -2},
		{"empty text", result.Failure(-3, ""), -3},
		{"non-failure code", result.Failure(0, "oops"), int32(code.Internal)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.in.ToFFI()
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, r.ErrorCode)
			require.NotNil(t, r.Description)

			want := *tt.in.Description
			raw := unsafe.Slice(r.Description, len(want)+1)
			assert.Equal(t, []byte(want+"\x00"), raw)
			assert.Equal(t, want, r.DescriptionString())
			assert.False(t, r.IsFallback())
		})
	}
}

func TestToFFI_FreshBuffer(t *testing.T) {
	in := result.Failure(-1, "same")
	a, err := in.ToFFI()
	require.NoError(t, err)
	b, err := in.ToFFI()
	require.NoError(t, err)
	assert.NotSame(t, a.Description, b.Description)
}

func TestToFFI_InteriorNUL(t *testing.T) {
	r, err := result.Failure(-2, "bad\x00text").ToFFI()
	require.Error(t, err)
	assert.True(t, errors.Is(err, result.ErrConversion))
	assert.Nil(t, r.Description)

	var ce *result.ConversionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, int32(-2), ce.Code)
	assert.Equal(t, 3, ce.Offset)
}

func TestFallback(t *testing.T) {
	r := result.Fallback(-7)
	assert.Equal(t, int32(-7), r.ErrorCode)
	assert.Equal(t, result.FallbackDescription, r.DescriptionString())
	assert.True(t, r.IsFallback())
	assert.Equal(t, "Could not convert error description into string", result.FallbackDescription)

	// The text is static.
	again := result.Fallback(-8)
	assert.Same(t, r.Description, again.Description)
}
