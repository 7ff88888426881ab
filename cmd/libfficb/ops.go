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
	"fmt"
	"log/slog"
	"os"
	"unsafe"

	"dirpx.dev/fficb"
	"dirpx.dev/fficb/cabi"
	"dirpx.dev/fficb/callback"
	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/internal/config"
	"dirpx.dev/fficb/internal/logging"
	"dirpx.dev/fficb/site"
)

const (
	siteCodeName      site.Site = "fficb.code.name"
	siteSiteNormalize site.Site = "fficb.site.normalize"
	siteCodeValidate  site.Site = "fficb.code.validate"
)

var dispatcher = newDispatcher()

func newDispatcher() *callback.Dispatcher {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		logger.Warn("invalid configuration, using defaults", slog.Any("error", err))
	}
	return callback.New(
		callback.WithLogger(logger),
		callback.WithFallbackLogging(cfg.LogFallback),
	)
}

// codeName returns the registered name of c.
func codeName(c int32) (string, error) {
	name := code.Code(c).Name()
	if name == "" {
		return "", fficb.Errorf(code.NotFound, "code %d has no registered name", c)
	}
	return name, nil
}

// normalizeSite returns the canonical form of the C string at raw.
func normalizeSite(raw unsafe.Pointer) (string, error) {
	s, err := cabi.FromCString(raw)
	if err != nil {
		return "", err
	}
	st, err := site.Parse(s)
	if err != nil {
		return "", fficb.E(code.Invalid, fmt.Sprintf("site %q", s), fficb.WithCauseOption(err))
	}
	if st == site.Empty {
		return "", fficb.E(code.Missing, "site is empty")
	}
	return st.String(), nil
}

func validateCode(c int32) error {
	if code.Validate(code.Code(c)) != nil {
		return fficb.Errorf(code.Invalid, "code %d is not a failure code", c)
	}
	return nil
}
