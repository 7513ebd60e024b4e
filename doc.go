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

// Package dstatus is a portable, serializable status taxonomy for service
// boundaries.
//
// A failure is represented as a structured value rather than a string:
//
//   - Status: one of sixteen standard codes (see package code) plus a
//     StatusDetails payload. This is what services return.
//   - StatusDetails: a human-readable message plus an ordered list of
//     ErrorDetails.
//   - ErrorDetails: a closed, tagged set of structured facts about the
//     failure. Today its only variant is ErrorInfo (reason, domain, metadata).
//   - ValidationError: a separate, narrower taxonomy for input validation,
//     currently only INVALID_FORMAT.
//
// # Wire form
//
// Field names and tag tokens are fixed contracts shared with other
// languages:
//
//	Status:          {"code": "NOT_FOUND", "message": "...", "error_details": [...]}
//	ErrorDetails:    {"type": "ERROR_INFO", "reason": "...", "domain": "...", "metadata": {...}}
//	ValidationError: {"type": "INVALID_FORMAT", "message": "..."}
//
// error_details and metadata are omitted when empty. The same keys are used
// for the YAML form.
//
// # Construction
//
// Constructors never fail and never validate. Wrapping a lower-level failure
// is an explicit call:
//
//	if err := repo.Load(ctx, id); err != nil {
//	    return dstatus.InternalFromError(err)
//	}
//
// Rich details are attached the same way:
//
//	return dstatus.NotFound(dstatus.NewStatusDetails("user not found",
//	    dstatus.ErrorInfoDetail(dstatus.NewErrorInfo("USER_NOT_FOUND", "dev.dirpx.users").
//	        WithMetadata("userId", id)),
//	))
//
// Transport conversion lives in the grpcx, adapter and httpx packages.
package dstatus
