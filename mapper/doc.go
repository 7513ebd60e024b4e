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

// Package mapper provides deterministic, immutable mappings from status
// codes (dirpx.dev/dstatus/code) to HTTP statuses, optionally refined by the
// domain of the status's ErrorInfo.
//
// # Overview
//
// A dstatus.Status carries a Code and, often, an ErrorInfo whose Domain
// names the system that defined the failure (e.g. "dev.dirpx.storage").
// HTTP handlers and REST gateways need one concrete HTTP status for that
// pair. Package mapper does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per Code;
//   - domain-aware: callers can add rules for specific owning domains.
//
// gRPC is not configurable here. Every code has exactly one gRPC code, see
// code.Code.GRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Code;
//  2. per-Code longest-prefix-match (LPM) on the domain;
//  3. per-Code default (library or user-adjusted);
//  4. global fallback (500).
//
// Domain rules are label-aware: domains are "."-separated labels and "*"
// matches exactly one label. For example:
//
//	WithHTTPDomain(code.Unavailable, "dev.dirpx", http.StatusServiceUnavailable)
//	WithHTTPDomain(code.Unavailable, "dev.*.storage", http.StatusBadGateway)
//
// The more specific prefix wins; "dev.dirpx" does not match "dev.dirpxy".
//
// # Library defaults
//
// The package ships the conventional table (NOT_FOUND -> 404,
// UNAUTHENTICATED -> 401, UNAVAILABLE -> 503, CANCELLED -> 499, ...).
// Default returns a Mapper with exactly that table.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Cancelled, http.StatusRequestTimeout),
//	    mapper.WithHTTPDomain(code.Unavailable, "dev.dirpx.storage", http.StatusBadGateway),
//	)
//	if err != nil {
//	    // invalid prefix, unknown code, out-of-range status
//	}
//
//	m.HTTPStatus(code.Unavailable, "dev.dirpx.storage.pg") // 502
//
// # Diagnostics
//
// Explain returns a human-readable trace of how a (code, domain) pair was
// resolved, including which tier matched and, for domain rules, which
// pattern was used. It is intended for inspection and logging, not for
// machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's values.
package mapper
