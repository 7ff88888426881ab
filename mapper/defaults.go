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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/fficb/code"
)

// defaultHTTP holds the built-in classification of HTTP statuses returned by
// backends. It covers the statuses whose meaning is unambiguous; everything
// else resolves to the fallback unless the caller adds a rule.
var defaultHTTP = map[int]code.Code{
	// 4xx: the request we sent was refused.
	http.StatusBadRequest:            code.Invalid,
	http.StatusUnauthorized:          code.Unauthenticated,
	http.StatusForbidden:             code.PermissionDenied,
	http.StatusNotFound:              code.NotFound,
	http.StatusMethodNotAllowed:      code.Unsupported,
	http.StatusRequestTimeout:        code.Timeout,
	http.StatusConflict:              code.Conflict,
	http.StatusGone:                  code.Gone,
	http.StatusPreconditionFailed:    code.PreconditionFailed,
	http.StatusRequestEntityTooLarge: code.Invalid,
	http.StatusUnprocessableEntity:   code.Invalid,
	http.StatusTooManyRequests:       code.RateLimited,
	// 499 is nginx's "client closed request".
	499: code.Canceled,

	// 5xx: the backend failed.
	http.StatusInternalServerError: code.DependencyFailed,
	http.StatusNotImplemented:      code.Unsupported,
	http.StatusBadGateway:          code.DependencyFailed,
	http.StatusServiceUnavailable:  code.Unavailable,
	http.StatusGatewayTimeout:      code.Timeout,
	http.StatusInsufficientStorage: code.QuotaExceeded,
}

// defaultGRPC holds the built-in classification of canonical gRPC codes.
// codes.OK is deliberately absent: it is never a failure.
var defaultGRPC = map[codes.Code]code.Code{
	codes.Canceled:           code.Canceled,
	codes.Unknown:            code.Internal,
	codes.InvalidArgument:    code.Invalid,
	codes.DeadlineExceeded:   code.Timeout,
	codes.NotFound:           code.NotFound,
	codes.AlreadyExists:      code.AlreadyExists,
	codes.PermissionDenied:   code.PermissionDenied,
	codes.ResourceExhausted:  code.QuotaExceeded,
	codes.FailedPrecondition: code.PreconditionFailed,
	codes.Aborted:            code.Conflict,
	codes.OutOfRange:         code.Invalid,
	codes.Unimplemented:      code.Unsupported,
	codes.Internal:           code.DependencyFailed,
	codes.Unavailable:        code.Unavailable,
	codes.DataLoss:           code.DependencyFailed,
	codes.Unauthenticated:    code.Unauthenticated,
}
