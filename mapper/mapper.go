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
	"errors"
	"fmt"
	"maps"
	"strings"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/mapper/internal/segmenttrie"
)

// ErrInvalidOption is returned by New when an option names an unknown code,
// an out-of-range HTTP status or a malformed domain prefix.
var ErrInvalidOption = errors.New("mapper: invalid option")

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with the library defaults.
//  2. Apply user-provided options (defaults, overrides, domain rules).
//  3. Validate codes and HTTP statuses.
//  4. Build per-code label tries supporting longest-prefix-match with "*"
//     as a single-label wildcard.
//  5. Freeze all maps into fresh copies.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	maps.Copy(b.httpDefaults, defaultHTTP)
	for _, opt := range opts {
		opt(b)
	}

	if err := checkStatus("fallback", b.fallbackHTTP); err != nil {
		return nil, err
	}
	for _, tier := range []struct {
		name string
		m    map[code.Code]int
	}{
		{"default", b.httpDefaults},
		{"override", b.httpOverride},
	} {
		for c, s := range tier.m {
			if err := code.Validate(c); err != nil {
				return nil, fmt.Errorf("%w: %s for %w", ErrInvalidOption, tier.name, err)
			}
			if err := checkStatus(tier.name+" for "+c.String(), s); err != nil {
				return nil, err
			}
		}
	}

	tries := make(map[code.Code]*segmenttrie.Trie[int], len(b.httpDomains))
	for c, rules := range b.httpDomains {
		if err := code.Validate(c); err != nil {
			return nil, fmt.Errorf("%w: domain rule for %w", ErrInvalidOption, err)
		}
		t := segmenttrie.New[int]()
		for _, r := range rules {
			if err := checkStatus("domain rule for "+c.String(), r.status); err != nil {
				return nil, err
			}
			p := normalizeDomain(r.prefix)
			if err := t.Insert(p, r.status); err != nil {
				return nil, fmt.Errorf("%w: domain prefix %q for code %q: %w", ErrInvalidOption, r.prefix, c, err)
			}
		}
		tries[c] = t
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		httpOverride: freeze(b.httpOverride),
		httpTrie:     tries,
		fallbackHTTP: b.fallbackHTTP,
	}, nil
}

// MustNew is New that panics on error. It is meant for package-level vars.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMapper = MustNew()

// Default returns the shared Mapper built from the library defaults only.
func Default() apis.Mapper { return defaultMapper }

// mapper combines per-code defaults, exact overrides and per-code label
// tries over domains. Lookups are O(depth) and safe for concurrent use.
type mapper struct {
	// httpDefault holds the base HTTP status for each code.
	httpDefault map[code.Code]int

	// httpOverride holds explicit HTTP statuses that beat every other tier.
	httpOverride map[code.Code]int

	// httpTrie stores per-code tries resolving HTTP statuses by domain prefix.
	httpTrie map[code.Code]*segmenttrie.Trie[int]

	// fallbackHTTP is used when a code has no default.
	fallbackHTTP int
}

var _ apis.Mapper = (*mapper)(nil)

// HTTPStatus resolves an HTTP status for the given code and domain.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. per-code longest-prefix-match on the domain;
//  3. per-code default;
//  4. fallback.
func (m *mapper) HTTPStatus(c code.Code, domain string) int {
	s, _, _ := m.resolve(c, domain)
	return s
}

// Explain produces a textual trace of how the mapper resolved c and domain.
//
// Example output:
//
//	code="UNAVAILABLE" domain="dev.dirpx.storage.pg"
//	http: source=domain pattern="dev.dirpx.storage" -> 502
//	grpc: source=fixed -> Unavailable(14)
//
// source is one of override, domain, default or fallback. The grpc line is
// informational: that mapping is fixed per code.
func (m *mapper) Explain(c code.Code, domain string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q domain=%q\n", c, domain)

	s, src, pat := m.resolve(c, domain)
	if src == "domain" {
		_, _ = fmt.Fprintf(&b, "http: source=%s pattern=%q -> %d\n", src, pat, s)
	} else {
		_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", src, s)
	}

	g := c.GRPC()
	_, _ = fmt.Fprintf(&b, "grpc: source=fixed -> %s(%d)", g, int(g))
	return b.String()
}

// resolve returns the HTTP status, the tier that produced it, and the
// matched pattern for domain rules.
func (m *mapper) resolve(c code.Code, domain string) (status int, source, pattern string) {
	if v, ok := m.httpOverride[c]; ok {
		return v, "override", ""
	}
	if domain != "" {
		if t := m.httpTrie[c]; t != nil {
			if v, ok, pat := t.MatchWithPattern(normalizeDomain(domain)); ok {
				return v, "domain", pat
			}
		}
	}
	if v, ok := m.httpDefault[c]; ok {
		return v, "default", ""
	}
	return m.fallbackHTTP, "fallback", ""
}

// normalizeDomain brings a domain or prefix to the form stored in the trie.
// Domains are case-insensitive; a single trailing root dot is dropped.
func normalizeDomain(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimSuffix(s, ".")
}

func checkStatus(what string, s int) error {
	if s < 100 || s > 599 {
		return fmt.Errorf("%w: %s: HTTP status %d out of range", ErrInvalidOption, what, s)
	}
	return nil
}

// freeze makes a detached copy of src, nil when empty.
func freeze(src map[code.Code]int) map[code.Code]int {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}
