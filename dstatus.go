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

package dstatus

import (
	"errors"
	"log/slog"
	"strconv"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
)

// Status is the failure value returned across a service boundary.
//
// It carries:
//   - Code: one of the sixteen standard codes (required);
//   - Details: the code-agnostic payload, a message plus structured details.
//
// Status is a plain value. The With* helpers return modified copies and never
// touch the receiver's slices, so a Status can be shared freely between
// goroutines.
type Status struct {
	// Code selects the variant. It must be one of the codes of package code;
	// encoders refuse anything else.
	Code code.Code

	// Details is the payload shared by every variant.
	Details StatusDetails
}

var (
	_ error           = Status{}
	_ apis.CodedError = Status{}
	_ apis.CodedError = (*Status)(nil)
	_ slog.LogValuer  = Status{}
)

// New builds a Status with the given code and details. The per-code
// constructors below are shorthands for it.
func New(c code.Code, d StatusDetails) Status {
	return Status{Code: c, Details: d}
}

// Cancelled returns a CANCELLED status.
func Cancelled(d StatusDetails) Status { return New(code.Cancelled, d) }

// Unknown returns an UNKNOWN status.
func Unknown(d StatusDetails) Status { return New(code.Unknown, d) }

// InvalidArgument returns an INVALID_ARGUMENT status.
func InvalidArgument(d StatusDetails) Status { return New(code.InvalidArgument, d) }

// DeadlineExceeded returns a DEADLINE_EXCEEDED status.
func DeadlineExceeded(d StatusDetails) Status { return New(code.DeadlineExceeded, d) }

// NotFound returns a NOT_FOUND status.
func NotFound(d StatusDetails) Status { return New(code.NotFound, d) }

// AlreadyExists returns an ALREADY_EXISTS status.
func AlreadyExists(d StatusDetails) Status { return New(code.AlreadyExists, d) }

// PermissionDenied returns a PERMISSION_DENIED status.
func PermissionDenied(d StatusDetails) Status { return New(code.PermissionDenied, d) }

// Unauthenticated returns an UNAUTHENTICATED status.
func Unauthenticated(d StatusDetails) Status { return New(code.Unauthenticated, d) }

// ResourceExhausted returns a RESOURCE_EXHAUSTED status.
func ResourceExhausted(d StatusDetails) Status { return New(code.ResourceExhausted, d) }

// FailedPrecondition returns a FAILED_PRECONDITION status.
func FailedPrecondition(d StatusDetails) Status { return New(code.FailedPrecondition, d) }

// Aborted returns an ABORTED status.
func Aborted(d StatusDetails) Status { return New(code.Aborted, d) }

// OutOfRange returns an OUT_OF_RANGE status.
func OutOfRange(d StatusDetails) Status { return New(code.OutOfRange, d) }

// Unimplemented returns an UNIMPLEMENTED status.
func Unimplemented(d StatusDetails) Status { return New(code.Unimplemented, d) }

// Internal returns an INTERNAL status.
func Internal(d StatusDetails) Status { return New(code.Internal, d) }

// Unavailable returns an UNAVAILABLE status.
func Unavailable(d StatusDetails) Status { return New(code.Unavailable, d) }

// DataLoss returns a DATA_LOSS status.
func DataLoss(d StatusDetails) Status { return New(code.DataLoss, d) }

// fromError renders v and hands the result to ctor.
func fromError(ctor func(StatusDetails) Status, v any) Status {
	return ctor(DetailsFromError(v))
}

// FailedPreconditionFromError wraps any displayable value (an error, a
// fmt.Stringer, a string, ...) into a FAILED_PRECONDITION status whose
// message is the rendered value and whose details are empty.
func FailedPreconditionFromError(v any) Status { return fromError(FailedPrecondition, v) }

// InvalidArgumentFromError is FailedPreconditionFromError for INVALID_ARGUMENT.
func InvalidArgumentFromError(v any) Status { return fromError(InvalidArgument, v) }

// InternalFromError is FailedPreconditionFromError for INTERNAL.
func InternalFromError(v any) Status { return fromError(Internal, v) }

// UnknownFromError is FailedPreconditionFromError for UNKNOWN.
func UnknownFromError(v any) Status { return fromError(Unknown, v) }

// FromError lifts an arbitrary error into a Status without losing what the
// error already knows:
//
//   - a Status (or *Status) anywhere in the chain is returned as-is;
//   - an apis.CodedError with a known code keeps that code, and the message
//     becomes err.Error();
//   - anything else becomes UNKNOWN with err.Error() as message.
//
// FromError never fails. A nil error yields UNKNOWN with message "<nil>".
func FromError(err error) Status {
	var st Status
	if errors.As(err, &st) {
		return st
	}
	var sp *Status
	if errors.As(err, &sp) && sp != nil {
		return *sp
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		if c := ce.StatusCode(); code.Validate(c) == nil {
			return New(c, DetailsFromError(err))
		}
	}
	return UnknownFromError(err)
}

// CodeOf returns the status code carried by err, following the same rules
// as FromError. It returns code.Empty for a nil error.
func CodeOf(err error) code.Code {
	if err == nil {
		return code.Empty
	}
	return FromError(err).Code
}

// Error implements the error interface.
//
// The format is always:
//
//	<CODE>: <message>
//
// which is stable, single-line and grep-friendly.
func (s Status) Error() string {
	return s.Code.String() + ": " + s.Details.String()
}

// StatusCode implements apis.CodedError.
func (s Status) StatusCode() code.Code { return s.Code }

// Message returns the human-readable message of the status.
func (s Status) Message() string { return s.Details.Message }

// ErrorDetails returns the structured details of the status. The slice is
// shared with s and must not be modified.
func (s Status) ErrorDetails() []ErrorDetails { return s.Details.ErrorDetails }

// Is reports whether target is a Status with the same code, so that
//
//	errors.Is(err, dstatus.NotFound(dstatus.StatusDetails{}))
//
// matches any NOT_FOUND status regardless of its message.
func (s Status) Is(target error) bool {
	switch t := target.(type) {
	case Status:
		return s.Code == t.Code
	case *Status:
		return t != nil && s.Code == t.Code
	}
	return false
}

// Equal reports whether s and o have the same code and equal details.
func (s Status) Equal(o Status) bool {
	return s.Code == o.Code && s.Details.Equal(o.Details)
}

// WithMessage returns a copy of s with a replaced message.
// The code and details are kept.
func (s Status) WithMessage(msg string) Status {
	s.Details.Message = msg
	return s
}

// WithErrorDetails returns a copy of s with ds appended to its details.
// The receiver is not modified.
func (s Status) WithErrorDetails(ds ...ErrorDetails) Status {
	s.Details = s.Details.WithErrorDetails(ds...)
	return s
}

// LogValue implements slog.LogValuer, rendering the status as a group:
//
//	code=NOT_FOUND message="user not found" error_details.0.type=ERROR_INFO ...
func (s Status) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", s.Code.String()),
		slog.String("message", s.Details.Message),
	}
	if n := len(s.Details.ErrorDetails); n > 0 {
		ds := make([]slog.Attr, 0, n)
		for i, d := range s.Details.ErrorDetails {
			ds = append(ds, slog.Any(strconv.Itoa(i), d))
		}
		attrs = append(attrs, slog.Attr{Key: "error_details", Value: slog.GroupValue(ds...)})
	}
	return slog.GroupValue(attrs...)
}
