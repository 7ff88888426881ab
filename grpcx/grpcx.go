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

// Package grpcx connects gRPC backends to the boundary.
//
// On the client side Classifier and UnaryClientInterceptor turn status errors
// returned by backend calls into codes. On the server side Status and
// UnaryServerInterceptor publish a *fficb.Error as a status carrying an
// errdetails.ErrorInfo, so another fficb-based process can recover the exact
// code instead of relying on the coarse gRPC code.
package grpcx

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dirpx.dev/fficb"
	"dirpx.dev/fficb/apis"
	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/result"
	"dirpx.dev/fficb/site"
)

// Domain is the ErrorInfo domain of errors published by this package.
const Domain = "fficb.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaCode = "code"
	MetaSite = "site"
)

// grpcCodes projects boundary codes onto canonical gRPC codes for Status.
var grpcCodes = map[code.Code]codes.Code{
	code.Internal:           codes.Internal,
	code.Invalid:            codes.InvalidArgument,
	code.Missing:            codes.InvalidArgument,
	code.Unsupported:        codes.Unimplemented,
	code.Unavailable:        codes.Unavailable,
	code.Timeout:            codes.DeadlineExceeded,
	code.Canceled:           codes.Canceled,
	code.DependencyFailed:   codes.Internal,
	code.Overloaded:         codes.ResourceExhausted,
	code.NotFound:           codes.NotFound,
	code.AlreadyExists:      codes.AlreadyExists,
	code.Conflict:           codes.Aborted,
	code.PreconditionFailed: codes.FailedPrecondition,
	code.Gone:               codes.NotFound,
	code.Unauthenticated:    codes.Unauthenticated,
	code.PermissionDenied:   codes.PermissionDenied,
	code.RateLimited:        codes.ResourceExhausted,
	code.QuotaExceeded:      codes.ResourceExhausted,
	code.Panic:              codes.Internal,
	code.NullPointer:        codes.InvalidArgument,
	code.InvalidString:      codes.InvalidArgument,
}

// GRPCCode returns the canonical gRPC code for c; unknown codes map to
// codes.Unknown.
func GRPCCode(c code.Code) codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

// Status converts e into a status whose details hold an ErrorInfo with the
// numeric code and, when set, the site. A nil e yields an OK status.
func Status(e *fficb.Error) *status.Status {
	if e == nil {
		return status.New(codes.OK, "")
	}
	c := code.Code(e.ErrorCode())
	st := status.New(GRPCCode(c), e.Error())

	reason := strings.ToUpper(c.Name())
	if reason == "" {
		reason = "UNNAMED_CODE"
	}
	info := &errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   Domain,
		Metadata: map[string]string{MetaCode: strconv.FormatInt(int64(c), 10)},
	}
	if e.Site != site.Empty {
		info.Metadata[MetaSite] = string(e.Site)
	}

	with, err := st.WithDetails(info)
	if err != nil {
		return st
	}
	return with
}

// CodeFromErrorInfo returns the code published in info, if info belongs to
// Domain and carries a valid failure code.
func CodeFromErrorInfo(info *errdetails.ErrorInfo) (code.Code, bool) {
	if info.GetDomain() != Domain {
		return 0, false
	}
	raw, ok := info.GetMetadata()[MetaCode]
	if !ok {
		return 0, false
	}
	c, err := code.Parse(raw)
	if err != nil {
		return 0, false
	}
	return c, true
}

func codeFromStatus(st *status.Status) (code.Code, bool) {
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			if c, ok := CodeFromErrorInfo(info); ok {
				return c, true
			}
		}
	}
	return 0, false
}

func mapped(m apis.Mapper, gc codes.Code, s site.Site) code.Code {
	if m == nil {
		return code.Internal
	}
	return m.GRPCCode(gc, s)
}

// Classifier recognizes gRPC status errors, including wrapped ones. A code
// published through Status wins; otherwise m classifies the gRPC code.
func Classifier(m apis.Mapper) result.Classifier {
	return func(s site.Site, err error) (code.Code, bool) {
		st, ok := status.FromError(err)
		if !ok || st.Code() == codes.OK {
			return 0, false
		}
		if c, ok := codeFromStatus(st); ok {
			return c, true
		}
		return mapped(m, st.Code(), s), true
	}
}

// Wrap turns a gRPC status error into a *fficb.Error for site s, keeping err
// as the cause. msg leads the description. Errors that carry no status are
// wrapped with fmt.Errorf and left for the normalizer's fallback.
func Wrap(m apis.Mapper, s site.Site, msg string, err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%s: %w", msg, err)
	}
	c, ok := codeFromStatus(st)
	if !ok {
		c = mapped(m, st.Code(), s)
	}
	return fficb.E(c, msg,
		fficb.WithSiteOption(s),
		fficb.WithCauseOption(err),
		fficb.WithDetailOption("grpc_code", st.Code().String()),
	)
}

// UnaryClientInterceptor converts failed calls into *fficb.Error values
// whose site is derived from the method name.
func UnaryClientInterceptor(m apis.Mapper) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		return Wrap(m, SiteFromMethod(method), "grpc "+method, err)
	}
}

// UnaryServerInterceptor publishes handler errors that wrap a *fficb.Error
// through Status. Other errors pass through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		var fe *fficb.Error
		if !errors.As(err, &fe) {
			return nil, err
		}
		return nil, Status(fe).Err()
	}
}

// SiteFromMethod derives a site from a full gRPC method name:
//
//	"/acct.v1.Accounts/GetAccount" -> "acct.v1.accounts.get_account"
//
// Names that do not form a valid site yield site.Empty.
func SiteFromMethod(fullMethod string) site.Site {
	var b strings.Builder
	prevLower := false
	for _, r := range strings.TrimPrefix(fullMethod, "/") {
		switch {
		case r == '/' || r == '.':
			b.WriteByte('.')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	s, err := site.Parse(b.String())
	if err != nil {
		return site.Empty
	}
	return s
}
