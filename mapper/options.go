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
	"dirpx.dev/dstatus/code"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library default HTTP status for the
// given code. It is used when neither an override nor a domain rule applies.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.httpDefaults[c] = status }
}

// WithHTTPOverride registers an exact HTTP status for the given code.
// Overrides win over every other tier, domain rules included.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.httpOverride[c] = status }
}

// WithHTTPDomain adds a longest-prefix-match rule for the given code,
// evaluated against the domain of the first ERROR_INFO detail.
// A more specific prefix wins. Use "*" to match a single label:
//
//	WithHTTPDomain(code.Unavailable, "dev.dirpx", 503)
//	WithHTTPDomain(code.Unavailable, "dev.*.storage", 502)
func WithHTTPDomain(c code.Code, prefix string, status int) Option {
	return func(b *builder) {
		b.httpDomains[c] = append(b.httpDomains[c], domainRule{prefix: prefix, status: status})
	}
}

// WithHTTPFallback replaces the status used for codes that have no default,
// 500 unless set.
func WithHTTPFallback(status int) Option {
	return func(b *builder) { b.fallbackHTTP = status }
}
