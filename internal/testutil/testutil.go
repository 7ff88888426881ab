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

// Package testutil holds fixtures shared by the package tests: a small coded
// error type, a recording callback and a log capture.
package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"unsafe"

	"dirpx.dev/fficb/result"
)

type variant int

const (
	variantTest variant = iota
	variantText
)

// TestError is a minimal coded error with two variants.
//
//   - ErrTest reports code -1 with the description "Test Error".
//   - Text(s) reports code -2 with s as the description.
type TestError struct {
	v    variant
	text string
}

// ErrTest is the fixed variant of TestError.
var ErrTest = &TestError{v: variantTest}

// Text returns the text-carrying variant of TestError.
func Text(s string) *TestError { return &TestError{v: variantText, text: s} }

func (e *TestError) Error() string {
	if e.v == variantText {
		return e.text
	}
	return "Test Error"
}

// ErrorCode implements apis.CodedError.
func (e *TestError) ErrorCode() int32 {
	if e.v == variantText {
		return -2
	}
	return -1
}

// Call is one observed callback invocation. Description is copied out of
// the result while the callback runs, as a native consumer has to do.
type Call[A any] struct {
	UserData    unsafe.Pointer
	Code        int32
	Description *string
	Args        A
}

// Recorder is a callback.Callback that remembers every invocation.
type Recorder[A any] struct {
	mu    sync.Mutex
	calls []Call[A]
}

// Call implements callback.Callback.
func (r *Recorder[A]) Call(userData unsafe.Pointer, res *result.FfiResult, args A) {
	c := Call[A]{UserData: userData, Code: res.ErrorCode, Args: args}
	if res.Description != nil {
		s := res.DescriptionString()
		c.Description = &s
	}
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

// Calls returns a copy of the recorded invocations.
func (r *Recorder[A]) Calls() []Call[A] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call[A], len(r.calls))
	copy(out, r.calls)
	return out
}

// LogBuffer is a concurrency-safe sink for slog text output.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Lines returns the non-empty lines written so far.
func (b *LogBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []string
	for _, l := range strings.Split(b.buf.String(), "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// NewLogger returns a Debug level text logger writing into a fresh LogBuffer.
func NewLogger() (*slog.Logger, *LogBuffer) {
	b := &LogBuffer{}
	h := slog.NewTextHandler(b, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(h), b
}
