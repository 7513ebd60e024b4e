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

package apis

import "dirpx.dev/dstatus/code"

// Mapper is an immutable, concurrency-safe view of HTTP mapping rules.
// It resolves a status code, optionally refined by the ErrorInfo domain of
// the status, into an HTTP status.
//
// gRPC is deliberately absent: the gRPC mapping is the fixed one-to-one
// table owned by the code package and is not configurable.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given code and domain.
	// An empty domain means "no ErrorInfo available"; the mapper must then
	// fall back to the code-level rule.
	HTTPStatus(c code.Code, domain string) int

	// Explain returns a human-readable description of which rule matched.
	Explain(c code.Code, domain string) string
}
