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
	"log/slog"

	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/result"
)

// Option configures a Dispatcher.
type Option func(*settings)

type settings struct {
	logger      *slog.Logger
	normalizer  []result.Option
	logFallback bool
}

// WithLogger sets the logger used by the dispatcher and its normalizer.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
		s.normalizer = append(s.normalizer, result.WithLogger(l))
	}
}

// WithClassifier appends a classifier for errors without their own code.
func WithClassifier(c result.Classifier) Option {
	return func(s *settings) { s.normalizer = append(s.normalizer, result.WithClassifier(c)) }
}

// WithFallbackCode sets the code of unclassified errors.
func WithFallbackCode(c code.Code) Option {
	return func(s *settings) { s.normalizer = append(s.normalizer, result.WithFallbackCode(c)) }
}

// WithFallbackLogging toggles the Warn record written when a description is
// replaced by result.FallbackDescription. It is on by default.
func WithFallbackLogging(on bool) Option {
	return func(s *settings) { s.logFallback = on }
}
