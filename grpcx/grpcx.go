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

package grpcx

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/adapter"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
)

// ToGRPC converts s into a gRPC status with the same code and message.
// This conversion is total and lossy: ErrorDetails are not carried. Use
// ToGRPCWithDetails to keep them.
//
// A code outside the table becomes codes.Unknown.
func ToGRPC(s dstatus.Status) *gstatus.Status {
	return gstatus.New(s.Code.GRPC(), s.Message())
}

// ToGRPCWithDetails converts s into a gRPC status carrying its
// ErrorDetails as google.rpc.ErrorInfo messages.
func ToGRPCWithDetails(s dstatus.Status) (*gstatus.Status, error) {
	p, err := adapter.ToProto(s)
	if err != nil {
		return nil, err
	}
	return gstatus.FromProto(p), nil
}

// FromGRPC converts a gRPC status into a Status. It returns false for nil
// and for codes.OK, which is not a failure.
func FromGRPC(st *gstatus.Status) (dstatus.Status, bool) {
	if st == nil || st.Code() == codes.OK {
		return dstatus.Status{}, false
	}
	s, err := adapter.FromProto(st.Proto())
	if err != nil {
		return dstatus.Status{}, false
	}
	return s, true
}

// FromError extracts a Status from an error returned by a gRPC call.
// It returns false when err is nil or carries no gRPC status.
func FromError(err error) (dstatus.Status, bool) {
	if err == nil {
		return dstatus.Status{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return dstatus.Status{}, false
	}
	return FromGRPC(st)
}

// Options configures UnaryServerInterceptor.
type Options struct {
	// Details attaches ERROR_INFO details to the outgoing gRPC status.
	// When false only code and message are sent.
	Details bool

	// LiftUnknown converts plain errors (neither a Status, an
	// apis.CodedError nor a gRPC status) into UNKNOWN. When false they are
	// returned unchanged and grpc-go reports them as Unknown itself.
	LiftUnknown bool

	// OnStatus, when set, observes every Status the interceptor converts,
	// e.g. to log it. It must not block.
	OnStatus func(ctx context.Context, method string, s dstatus.Status)
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors carrying a Status into gRPC status errors.
//
// Errors that already are gRPC status errors pass through untouched.
// Context cancellation and deadline errors become CANCELLED and
// DEADLINE_EXCEEDED.
func UnaryServerInterceptor(opts Options) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		s, ok := liftError(err, opts.LiftUnknown)
		if !ok {
			return resp, err
		}
		if opts.OnStatus != nil {
			opts.OnStatus(ctx, info.FullMethod, s)
		}
		return resp, toErr(s, opts.Details)
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// gRPC status errors into Status errors, so callers can use errors.As and
// errors.Is with dstatus values.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		if s, ok := FromError(err); ok {
			return s
		}
		return err
	}
}

// liftError decides which Status, if any, err should be reported as.
func liftError(err error, liftUnknown bool) (dstatus.Status, bool) {
	var ce apis.CodedError
	if errors.As(err, &ce) {
		return dstatus.FromError(err), true
	}
	if _, ok := gstatus.FromError(err); ok {
		return dstatus.Status{}, false
	}
	switch {
	case errors.Is(err, context.Canceled):
		return dstatus.New(code.Cancelled, dstatus.DetailsFromError(err)), true
	case errors.Is(err, context.DeadlineExceeded):
		return dstatus.New(code.DeadlineExceeded, dstatus.DetailsFromError(err)), true
	}
	if liftUnknown {
		return dstatus.UnknownFromError(err), true
	}
	return dstatus.Status{}, false
}

func toErr(s dstatus.Status, details bool) error {
	if details {
		if st, err := ToGRPCWithDetails(s); err == nil {
			return st.Err()
		}
	}
	return ToGRPC(s).Err()
}
