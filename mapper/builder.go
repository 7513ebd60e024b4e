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

type domainRule struct {
	// prefix is the raw, dot-separated domain prefix (may contain "*").
	// It is normalized and validated when the per-code trie is built.
	prefix string
	// status is the HTTP status to apply when this prefix matches.
	status int
}

type builder struct {
	// httpDefaults holds per-code HTTP defaults, seeded from the library
	// table and adjusted by WithHTTPDefault.
	httpDefaults map[code.Code]int

	// httpOverride holds exact per-code HTTP overrides (highest tier).
	httpOverride map[code.Code]int

	// httpDomains holds per-code LPM rules over the ErrorInfo domain,
	// compiled into a segment trie by New.
	httpDomains map[code.Code][]domainRule

	// fallbackHTTP is used when a code has no default at all.
	fallbackHTTP int
}

// newBuilder creates an empty builder with maps pre-sized to the code table.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		httpOverride: make(map[code.Code]int),
		httpDomains:  make(map[code.Code][]domainRule),
		fallbackHTTP: http.StatusInternalServerError,
	}
}
