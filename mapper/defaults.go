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

	"dirpx.dev/dstatus/code"
)

// StatusClientClosedRequest is the non-standard 499 popularized by nginx for
// "client closed request". net/http has no constant for it.
const StatusClientClosedRequest = 499

// defaultHTTP is the library's built-in HTTP table for the sixteen codes.
// Callers adjust it at the boundary where HTTP is produced.
//
// It follows the conventional gRPC-to-HTTP correspondence used by gateways.
var defaultHTTP = map[code.Code]int{
	// 5xx: server, dependency and transient failures.
	code.Unknown:          http.StatusInternalServerError, // Nothing better is known; do not expose internals.
	code.Internal:         http.StatusInternalServerError, // Invariant broken on the server.
	code.DataLoss:         http.StatusInternalServerError, // Unrecoverable data corruption.
	code.Unimplemented:    http.StatusNotImplemented,      // Operation not supported by this server.
	code.Unavailable:      http.StatusServiceUnavailable,  // Transient; the client may retry.
	code.DeadlineExceeded: http.StatusGatewayTimeout,      // Time budget exceeded.

	// Cancellation by the caller.
	code.Cancelled: StatusClientClosedRequest,

	// 4xx: input and state problems.
	code.InvalidArgument:    http.StatusBadRequest, // Malformed input regardless of state.
	code.FailedPrecondition: http.StatusBadRequest, // System is not in the required state.
	code.OutOfRange:         http.StatusBadRequest, // Past the valid range (end of file, page, ...).
	code.NotFound:           http.StatusNotFound,

	// Conflicts and concurrency.
	code.AlreadyExists: http.StatusConflict,
	code.Aborted:       http.StatusConflict, // Concurrency conflict; retry at a higher level.

	// AuthN / AuthZ.
	code.Unauthenticated:  http.StatusUnauthorized,
	code.PermissionDenied: http.StatusForbidden,

	// Quotas.
	code.ResourceExhausted: http.StatusTooManyRequests,
}
