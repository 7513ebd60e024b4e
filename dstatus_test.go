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
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/dstatus/code"
)

// constructors lists every per-code constructor next to the code it must
// produce.
var constructors = []struct {
	code code.Code
	ctor func(StatusDetails) Status
}{
	{code.Cancelled, Cancelled},
	{code.Unknown, Unknown},
	{code.InvalidArgument, InvalidArgument},
	{code.DeadlineExceeded, DeadlineExceeded},
	{code.NotFound, NotFound},
	{code.AlreadyExists, AlreadyExists},
	{code.PermissionDenied, PermissionDenied},
	{code.Unauthenticated, Unauthenticated},
	{code.ResourceExhausted, ResourceExhausted},
	{code.FailedPrecondition, FailedPrecondition},
	{code.Aborted, Aborted},
	{code.OutOfRange, OutOfRange},
	{code.Unimplemented, Unimplemented},
	{code.Internal, Internal},
	{code.Unavailable, Unavailable},
	{code.DataLoss, DataLoss},
}

func TestConstructors_CoverEveryCode(t *testing.T) {
	require.Len(t, constructors, len(code.All()))

	seen := make(map[code.Code]bool)
	for _, tc := range constructors {
		st := tc.ctor(NewStatusDetails("boom"))
		require.Equal(t, tc.code, st.Code)
		require.Equal(t, "boom", st.Message())
		seen[st.Code] = true
	}
	for _, c := range code.All() {
		require.True(t, seen[c], "no constructor for %s", c)
	}
}

func TestStatus_Error(t *testing.T) {
	for _, tc := range constructors {
		t.Run(string(tc.code), func(t *testing.T) {
			st := tc.ctor(NewStatusDetails("something broke"))
			require.Equal(t, string(tc.code)+": something broke", st.Error())
		})
	}
}

func TestStatus_ErrorWithEmptyMessage(t *testing.T) {
	require.Equal(t, "ABORTED: ", Aborted(StatusDetails{}).Error())
}

func TestStatus_ErrorIgnoresDetails(t *testing.T) {
	st := Unknown(NewStatusDetails(
		"Unsure about that",
		ErrorInfoDetail(NewErrorInfo("UNKNOWN_FAULT", "com.appbiotic.error")),
	))
	require.Equal(t, "UNKNOWN: Unsure about that", st.Error())
	require.Equal(t, "Unsure about that", st.Details.String())
}

func TestFromErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  Status
		want string
	}{
		{"internal from string", InternalFromError("bug"), "INTERNAL: bug"},
		{"internal from error", InternalFromError(errors.New("bug")), "INTERNAL: bug"},
		{"failed precondition", FailedPreconditionFromError(errors.New("table is locked")), "FAILED_PRECONDITION: table is locked"},
		{"invalid argument from stringer", InvalidArgumentFromError(stringer("bad id")), "INVALID_ARGUMENT: bad id"},
		{"unknown from wrapped", UnknownFromError(fmt.Errorf("load: %w", errors.New("eof"))), "UNKNOWN: load: eof"},
		{"unknown from int", UnknownFromError(42), "UNKNOWN: 42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got.Error())
			require.Empty(t, tt.got.ErrorDetails())
		})
	}
}

func TestFromError(t *testing.T) {
	nf := NotFound(NewStatusDetails("no such user", ErrorInfoDetail(NewErrorInfo("USER_NOT_FOUND", "dev.dirpx.users"))))

	t.Run("status in chain is kept", func(t *testing.T) {
		got := FromError(fmt.Errorf("handler: %w", nf))
		require.True(t, got.Equal(nf))
	})
	t.Run("pointer status in chain is kept", func(t *testing.T) {
		got := FromError(fmt.Errorf("handler: %w", &nf))
		require.True(t, got.Equal(nf))
	})
	t.Run("coded error keeps code", func(t *testing.T) {
		got := FromError(fmt.Errorf("quota: %w", codedErr{c: code.ResourceExhausted}))
		require.Equal(t, code.ResourceExhausted, got.Code)
		require.Equal(t, "quota: coded", got.Message())
	})
	t.Run("coded error with unknown code", func(t *testing.T) {
		got := FromError(codedErr{c: "TEAPOT"})
		require.Equal(t, code.Unknown, got.Code)
	})
	t.Run("plain error becomes unknown", func(t *testing.T) {
		got := FromError(errors.New("disk on fire"))
		require.Equal(t, "UNKNOWN: disk on fire", got.Error())
	})
	t.Run("nil error", func(t *testing.T) {
		require.Equal(t, "UNKNOWN: <nil>", FromError(nil).Error())
	})
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, code.Empty, CodeOf(nil))
	require.Equal(t, code.Unknown, CodeOf(errors.New("x")))
	require.Equal(t, code.DataLoss, CodeOf(fmt.Errorf("wrap: %w", DataLoss(NewStatusDetails("gone")))))
}

func TestStatus_Is(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NotFound(NewStatusDetails("user 42")))

	require.True(t, errors.Is(err, NotFound(StatusDetails{})))
	require.True(t, errors.Is(err, &Status{Code: code.NotFound}))
	require.False(t, errors.Is(err, Internal(NewStatusDetails("user 42"))))
	require.False(t, errors.Is(err, errors.New("NOT_FOUND: user 42")))

	var st Status
	require.True(t, errors.As(err, &st))
	require.Equal(t, "user 42", st.Message())
}

func TestStatus_Equal(t *testing.T) {
	a := Internal(NewStatusDetails("x", ErrorInfoDetail(NewErrorInfo("R", "d.e").WithMetadata("k", "v"))))
	b := Internal(NewStatusDetails("x", ErrorInfoDetail(NewErrorInfo("R", "d.e").WithMetadata("k", "v"))))
	require.True(t, a.Equal(b))

	require.False(t, a.Equal(Unknown(a.Details)))
	require.False(t, a.Equal(a.WithMessage("y")))
	require.False(t, a.Equal(Internal(NewStatusDetails("x"))))

	// nil and empty detail lists are the same thing
	require.True(t, Internal(StatusDetails{Message: "x", ErrorDetails: []ErrorDetails{}}).Equal(Internal(NewStatusDetails("x"))))
}

func TestStatus_CopyOnWrite(t *testing.T) {
	base := Internal(NewStatusDetails("x", ErrorInfoDetail(NewErrorInfo("A", "d.e"))))
	grown := base.WithErrorDetails(ErrorInfoDetail(NewErrorInfo("B", "d.e")))

	require.Len(t, base.ErrorDetails(), 1)
	require.Len(t, grown.ErrorDetails(), 2)

	renamed := base.WithMessage("y")
	require.Equal(t, "x", base.Message())
	require.Equal(t, "y", renamed.Message())
	require.Equal(t, code.Internal, renamed.Code)
}

func TestNewStatusDetails_CopiesInput(t *testing.T) {
	ds := []ErrorDetails{ErrorInfoDetail(NewErrorInfo("A", "d.e"))}
	d := NewStatusDetails("x", ds...)
	ds[0] = ErrorInfoDetail(NewErrorInfo("MUTATED", "d.e"))

	info, ok := d.ErrorDetails[0].ErrorInfo()
	require.True(t, ok)
	require.Equal(t, "A", info.Reason)

	require.Nil(t, NewStatusDetails("x").ErrorDetails)
}

func TestDetailsFromError(t *testing.T) {
	d := DetailsFromError(errors.New("boom"))
	require.Equal(t, StatusDetails{Message: "boom"}, d)
	require.Equal(t, "boom", d.String())
}

func TestE_Options(t *testing.T) {
	st := E(code.NotFound, "user not found",
		WithErrorInfo("USER_NOT_FOUND", "dev.dirpx.users"),
		WithMetadata("userId", "42"),
		WithMetadata("tenant", "acme"),
	)

	require.Equal(t, code.NotFound, st.Code)
	require.Equal(t, "NOT_FOUND: user not found", st.Error())
	require.Len(t, st.ErrorDetails(), 1)

	info, ok := st.ErrorDetails()[0].ErrorInfo()
	require.True(t, ok)
	require.Equal(t, map[string]string{"userId": "42", "tenant": "acme"}, info.Metadata)
}

func TestE_WithMetadataBeforeInfoIsNoop(t *testing.T) {
	st := E(code.Internal, "x", WithMetadata("k", "v"))
	require.Empty(t, st.ErrorDetails())
}

func TestStatus_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	st := E(code.Unavailable, "db down",
		WithErrorInfo("PG_CONNECT", "dev.dirpx.storage"),
		WithMetadata("host", "db"),
	)
	logger.Error("request failed", "status", st)

	out := buf.String()
	for _, want := range []string{
		"status.code=UNAVAILABLE",
		`status.message="db down"`,
		"status.error_details.0.type=ERROR_INFO",
		"status.error_details.0.reason=PG_CONNECT",
		"status.error_details.0.domain=dev.dirpx.storage",
		"status.error_details.0.metadata.host=db",
	} {
		require.True(t, strings.Contains(out, want), "missing %q in %q", want, out)
	}
}

type stringer string

func (s stringer) String() string { return string(s) }

type codedErr struct{ c code.Code }

func (e codedErr) Error() string         { return "coded" }
func (e codedErr) StatusCode() code.Code { return e.c }
