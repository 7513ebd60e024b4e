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

package code

// Request lifecycle codes
//
// These codes describe what happened to the call itself rather than to the
// resources it touched.
const (
	// Cancelled indicates that the operation was cancelled, typically by the
	// caller or by context propagation.
	//
	// gRPC 1 CANCELLED. Can be mapped to an HTTP 499 (client closed request).
	Cancelled Code = "CANCELLED"

	// Unknown indicates an error that carries no better classification.
	// Errors lifted from foreign error spaces land here by default.
	//
	// gRPC 2 UNKNOWN. Can be mapped to an HTTP 500.
	Unknown Code = "UNKNOWN"

	// DeadlineExceeded indicates that the deadline expired before the
	// operation could complete. For state-changing operations the change may
	// still have happened.
	//
	// gRPC 4 DEADLINE_EXCEEDED. Can be mapped to an HTTP 504.
	DeadlineExceeded Code = "DEADLINE_EXCEEDED"

	// Aborted indicates that the operation was aborted, typically due to a
	// concurrency issue such as a sequencer check failure or a transaction
	// abort. The client should retry at a higher level.
	//
	// gRPC 10 ABORTED. Can be mapped to an HTTP 409.
	Aborted Code = "ABORTED"

	// Unimplemented indicates that the operation is not implemented or not
	// supported/enabled in this service.
	//
	// gRPC 12 UNIMPLEMENTED. Can be mapped to an HTTP 501.
	Unimplemented Code = "UNIMPLEMENTED"
)

// Input / state codes
//
// These codes tell the caller that the request, or the state it expects,
// is wrong.
const (
	// InvalidArgument indicates that the client specified an invalid
	// argument, independent of the state of the system.
	//
	// gRPC 3 INVALID_ARGUMENT. Can be mapped to an HTTP 400.
	InvalidArgument Code = "INVALID_ARGUMENT"

	// NotFound indicates that a requested entity was not found.
	//
	// gRPC 5 NOT_FOUND. Can be mapped to an HTTP 404.
	NotFound Code = "NOT_FOUND"

	// AlreadyExists indicates that an entity the client attempted to create
	// already exists.
	//
	// gRPC 6 ALREADY_EXISTS. Can be mapped to an HTTP 409.
	AlreadyExists Code = "ALREADY_EXISTS"

	// FailedPrecondition indicates that the system is not in a state required
	// for the operation. The client should not retry until the state has been
	// explicitly fixed.
	//
	// gRPC 9 FAILED_PRECONDITION. Can be mapped to an HTTP 400.
	FailedPrecondition Code = "FAILED_PRECONDITION"

	// OutOfRange indicates that the operation was attempted past the valid
	// range, e.g. seeking past end-of-file.
	//
	// gRPC 11 OUT_OF_RANGE. Can be mapped to an HTTP 400.
	OutOfRange Code = "OUT_OF_RANGE"
)

// Authentication / authorization / capacity
const (
	// PermissionDenied indicates that the caller is identified but does not
	// have permission to execute the operation.
	//
	// gRPC 7 PERMISSION_DENIED. Can be mapped to an HTTP 403.
	PermissionDenied Code = "PERMISSION_DENIED"

	// Unauthenticated indicates that the request does not have valid
	// authentication credentials for the operation.
	//
	// gRPC 16 UNAUTHENTICATED. Can be mapped to an HTTP 401.
	Unauthenticated Code = "UNAUTHENTICATED"

	// ResourceExhausted indicates that some resource has been exhausted,
	// such as a per-user quota or the disk of the whole file system.
	//
	// gRPC 8 RESOURCE_EXHAUSTED. Can be mapped to an HTTP 429.
	ResourceExhausted Code = "RESOURCE_EXHAUSTED"
)

// Server-side codes
const (
	// Internal indicates that an invariant expected by the underlying system
	// has been broken. Reserved for serious errors.
	//
	// gRPC 13 INTERNAL. Can be mapped to an HTTP 500.
	Internal Code = "INTERNAL"

	// Unavailable indicates that the service is currently unavailable. This
	// is most likely transient and the call may be retried with backoff.
	//
	// gRPC 14 UNAVAILABLE. Can be mapped to an HTTP 503.
	Unavailable Code = "UNAVAILABLE"

	// DataLoss indicates unrecoverable data loss or corruption.
	//
	// gRPC 15 DATA_LOSS. Can be mapped to an HTTP 500.
	DataLoss Code = "DATA_LOSS"
)

// all is the canonical ordering of the code table. It follows the numeric
// order of the RPC convention so that listings and tests are stable.
var all = []Code{
	Cancelled,
	Unknown,
	InvalidArgument,
	DeadlineExceeded,
	NotFound,
	AlreadyExists,
	PermissionDenied,
	ResourceExhausted,
	FailedPrecondition,
	Aborted,
	OutOfRange,
	Unimplemented,
	Internal,
	Unavailable,
	DataLoss,
	Unauthenticated,
}

// ordinal indexes all for O(1) membership checks.
var ordinal = func() map[Code]int {
	m := make(map[Code]int, len(all))
	for i, c := range all {
		m[c] = i
	}
	return m
}()
