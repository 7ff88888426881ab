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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"runtime/debug"
	"unsafe"

	"dirpx.dev/fficb"
	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/result"
	"dirpx.dev/fficb/site"
)

// Dispatcher binds a Normalizer to the delivery rules.
// It is immutable and safe for concurrent use.
type Dispatcher struct {
	normalizer  *result.Normalizer
	logger      *slog.Logger
	logFallback bool
}

// New builds a Dispatcher.
func New(opts ...Option) *Dispatcher {
	s := settings{logFallback: true}
	for _, opt := range opts {
		opt(&s)
	}
	return &Dispatcher{
		normalizer:  result.NewNormalizer(s.normalizer...),
		logger:      s.logger,
		logFallback: s.logFallback,
	}
}

var defaultDispatcher = New()

// Default returns the process-wide dispatcher. It logs through
// slog.Default() and uses no classifiers.
func Default() *Dispatcher { return defaultDispatcher }

// Normalizer returns the normalizer used by d.
func (d *Dispatcher) Normalizer() *result.Normalizer { return d.normalizer }

func (d *Dispatcher) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return slog.Default()
}

// isNil reports whether cb is nil or wraps a nil func or pointer.
func isNil[A any](cb Callback[A]) bool {
	if cb == nil {
		return true
	}
	switch v := reflect.ValueOf(cb); v.Kind() {
	case reflect.Func, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

func orDefault(d *Dispatcher) *Dispatcher {
	if d == nil {
		return defaultDispatcher
	}
	return d
}

// CallResult reports err (nil meaning success) to cb together with args.
//
// cb is invoked exactly once. The description it sees is pinned until it
// returns. If the description cannot be converted the static fallback text
// is sent with the original code. A nil d means Default().
func CallResult[A any](d *Dispatcher, s site.Site, err error, userData unsafe.Pointer, cb Callback[A], args A) {
	d = orDefault(d)
	if isNil(cb) {
		d.log().LogAttrs(context.Background(), slog.LevelError, "no callback to deliver result to",
			slog.String("site", string(s)),
		)
		return
	}

	native := d.normalizer.Native(s, err)
	res, convErr := native.ToFFI()
	if convErr != nil {
		c := int32(code.Internal)
		var ce *result.ConversionError
		if errors.As(convErr, &ce) {
			c = ce.Code
		}
		res = result.Fallback(c)
		if d.logFallback {
			d.log().LogAttrs(context.Background(), slog.LevelWarn, "error description replaced by fallback",
				slog.String("site", string(s)),
				slog.Int("code", int(res.ErrorCode)),
				slog.Any("error", convErr),
			)
		}
	}

	var pinner runtime.Pinner
	defer pinner.Unpin()
	if res.Description != nil && !res.IsFallback() {
		pinner.Pin(res.Description)
	}
	cb.Call(userData, &res, args)
}

// TryCB returns (v, true) when err is nil and leaves cb alone. Otherwise it
// reports err through cb with the zero payload and returns (zero, false),
// so entry points can bail out with a single check:
//
//	f, err := open(path)
//	f, ok := callback.TryCB(d, s, ud, cb, f, err)
//	if !ok {
//	    return
//	}
func TryCB[T, A any](d *Dispatcher, s site.Site, userData unsafe.Pointer, cb Callback[A], v T, err error) (T, bool) {
	if err == nil {
		return v, true
	}
	var args A
	CallResult(d, s, err, userData, cb, args)
	var zero T
	return zero, false
}

// Catch runs fn and reports its outcome through cb exactly once.
//
// A panic in fn is recovered and reported as code.Panic with the panic value
// in the description; its stack is logged at Error. The callback itself runs
// outside the recovered scope.
func Catch[A any](d *Dispatcher, s site.Site, userData unsafe.Pointer, cb Callback[A], fn func() (A, error)) {
	d = orDefault(d)
	args, err := run(d, s, fn)
	if err != nil {
		var zero A
		args = zero
	}
	CallResult(d, s, err, userData, cb, args)
}

// CatchCode is Catch for entry points that return the code to their caller
// instead of invoking a callback.
func CatchCode(d *Dispatcher, s site.Site, fn func() error) int32 {
	d = orDefault(d)
	_, err := run(d, s, func() (NoArgs, error) { return NoArgs{}, fn() })
	return d.normalizer.Code(s, err)
}

func run[A any](d *Dispatcher, s site.Site, fn func() (A, error)) (args A, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = d.recovered(s, v)
		}
	}()
	return fn()
}

func (d *Dispatcher) recovered(s site.Site, v any) error {
	d.log().LogAttrs(context.Background(), slog.LevelError, "panic recovered at boundary",
		slog.String("site", string(s)),
		slog.String("panic", fmt.Sprint(v)),
		slog.String("stack", string(debug.Stack())),
	)
	cause, ok := v.(error)
	if !ok {
		cause = fmt.Errorf("%v", v)
	}
	return fficb.E(code.Panic, "panic", fficb.WithSiteOption(s), fficb.WithCauseOption(cause))
}
