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

package result

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dirpx.dev/fficb/apis"
	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/site"
)

// Classifier assigns a code to an error that does not implement
// apis.CodedError. It reports false when it does not recognize err.
type Classifier func(s site.Site, err error) (code.Code, bool)

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets the logger receiving the per-failure record.
// A nil logger means slog.Default() at the time of logging.
func WithLogger(l *slog.Logger) Option {
	return func(n *Normalizer) { n.logger = l }
}

// WithClassifier appends c to the classifier chain. Classifiers run in the
// order they were added; the first hit wins.
func WithClassifier(c Classifier) Option {
	return func(n *Normalizer) {
		if c != nil {
			n.classifiers = append(n.classifiers, c)
		}
	}
}

// WithFallbackCode replaces code.Internal as the code of unclassified errors.
// Values that are not failure codes are ignored.
func WithFallbackCode(c code.Code) Option {
	return func(n *Normalizer) {
		if code.Validate(c) == nil {
			n.fallback = c
		}
	}
}

// Normalizer reduces errors to (code, description) pairs.
//
// A Normalizer is immutable after NewNormalizer returns and safe for
// concurrent use.
type Normalizer struct {
	logger      *slog.Logger
	classifiers []Classifier
	fallback    code.Code
}

// NewNormalizer builds a Normalizer from opts.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{fallback: code.Internal}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize returns (0, nil) for a nil err. Otherwise it returns the code of
// err and its Error() text, after writing one Debug record of the form
//
//	**ERRNO: <code>** <err formatted with %+v>
func (n *Normalizer) Normalize(s site.Site, err error) (int32, *string) {
	if err == nil {
		return 0, nil
	}
	s = siteOf(s, err)
	c := n.resolve(s, err)
	n.logFailure(s, c, err)
	desc := err.Error()
	return int32(c), &desc
}

// Native is Normalize packed into a NativeResult.
func (n *Normalizer) Native(s site.Site, err error) NativeResult {
	c, desc := n.Normalize(s, err)
	return NativeResult{ErrorCode: c, Description: desc}
}

// Code is Normalize for entry points that return the code directly.
func (n *Normalizer) Code(s site.Site, err error) int32 {
	c, _ := n.Normalize(s, err)
	return c
}

// Logger returns the effective logger.
func (n *Normalizer) Logger() *slog.Logger {
	if n.logger != nil {
		return n.logger
	}
	return slog.Default()
}

func (n *Normalizer) resolve(s site.Site, err error) code.Code {
	var coded apis.CodedError
	if errors.As(err, &coded) {
		if c := code.Code(coded.ErrorCode()); code.Validate(c) == nil {
			return c
		}
		return n.fallback
	}
	for _, classify := range n.classifiers {
		if c, ok := classify(s, err); ok && code.Validate(c) == nil {
			return c
		}
	}
	return n.fallback
}

func (n *Normalizer) logFailure(s site.Site, c code.Code, err error) {
	l := n.Logger()
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.LogAttrs(ctx, slog.LevelDebug, fmt.Sprintf("**ERRNO: %d** %+v", int32(c), err),
		slog.String("site", string(s)),
		slog.Int("code", int(c)),
	)
}

// siteOf prefers the dispatch site and falls back to the one remembered
// by the error.
func siteOf(s site.Site, err error) site.Site {
	if s != site.Empty {
		return s
	}
	var sited apis.SitedError
	if errors.As(err, &sited) {
		if v, perr := site.Parse(sited.ErrorSite()); perr == nil {
			return v
		}
	}
	return s
}
