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

// Package httpx classifies failed HTTP responses of backend calls.
//
// Error bodies in the google.rpc.Status JSON form used by grpc-gateway are
// understood: the message replaces the generic status text and an ErrorInfo
// published by package grpcx carries the exact code. Write produces such
// bodies.
package httpx

import (
	"fmt"
	"io"
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/fficb"
	"dirpx.dev/fficb/apis"
	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/grpcx"
	"dirpx.dev/fficb/site"
)

// MaxBody caps how much of an error body FromResponse reads.
const MaxBody = 64 << 10

// FromResponse returns nil for 2xx responses and a *fficb.Error describing
// the failure otherwise. 1xx and 3xx count as failures as well: a client that
// follows redirects never hands them over, so seeing one means the exchange
// did not produce the expected payload. The body is read up to MaxBody bytes;
// closing it stays with the caller.
func FromResponse(resp *http.Response, m apis.Mapper, s site.Site) *fficb.Error {
	if resp == nil {
		return fficb.E(code.Missing, "http: nil response", fficb.WithSiteOption(s))
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := http.StatusText(resp.StatusCode)
	if msg == "" {
		msg = fmt.Sprintf("status %d", resp.StatusCode)
	}
	var c code.Code
	if st, ok := decodeStatus(resp); ok {
		if st.GetMessage() != "" {
			msg = st.GetMessage()
		}
		c, _ = codeFromDetails(st)
	}
	if c == code.Success {
		c = code.Internal
		if m != nil {
			c = m.HTTPCode(resp.StatusCode, s)
		}
	}

	return fficb.E(c, msg,
		fficb.WithSiteOption(s),
		fficb.WithDetailOption("http_status", resp.StatusCode),
	)
}

func decodeStatus(resp *http.Response) (*spb.Status, bool) {
	if resp.Body == nil {
		return nil, false
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBody))
	if err != nil || len(body) == 0 {
		return nil, false
	}
	st := &spb.Status{}
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(body, st); err != nil {
		return nil, false
	}
	return st, true
}

func codeFromDetails(st *spb.Status) (code.Code, bool) {
	for _, d := range st.GetDetails() {
		info := &errdetails.ErrorInfo{}
		if !d.MessageIs(info) {
			continue
		}
		if err := d.UnmarshalTo(info); err != nil {
			continue
		}
		if c, ok := grpcx.CodeFromErrorInfo(info); ok {
			return c, true
		}
	}
	return 0, false
}

// httpStatus follows the grpc-gateway projection of gRPC codes.
var httpStatus = map[codes.Code]int{
	codes.Canceled:           499,
	codes.Unknown:            http.StatusInternalServerError,
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.Unauthenticated:    http.StatusUnauthorized,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.FailedPrecondition: http.StatusBadRequest,
	codes.Aborted:            http.StatusConflict,
	codes.OutOfRange:         http.StatusBadRequest,
	codes.Unimplemented:      http.StatusNotImplemented,
	codes.Internal:           http.StatusInternalServerError,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.DataLoss:           http.StatusInternalServerError,
}

// Write serializes e as a google.rpc.Status JSON body. The HTTP status is
// derived from the gRPC projection of the code.
func Write(rw http.ResponseWriter, e *fficb.Error) {
	if e == nil {
		return
	}
	st := grpcx.Status(e)
	hs, ok := httpStatus[st.Code()]
	if !ok {
		hs = http.StatusInternalServerError
	}

	b, err := protojson.Marshal(st.Proto())
	if err != nil {
		rw.WriteHeader(hs)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(hs)
	_, _ = rw.Write(b)
}
