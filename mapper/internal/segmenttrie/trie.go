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

package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a label-aware prefix index for dot-separated domains such as
// "com.appbiotic.error". Each node represents one label; the wildcard "*"
// matches exactly one label. Lookups are longest-prefix-match on label
// boundaries, so a more specific rule wins over a shorter one.
//
// A Trie is built once and then only read; concurrent Match calls are safe
// as long as no Insert runs at the same time.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for Explain.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty,
// has empty labels, contains invalid characters, or consists only of
// wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated prefix and associates it with val.
// Inserting the same prefix twice replaces the value.
//
//	"com.appbiotic"
//	"dev.dirpx.users"
//	"dev.*.storage"
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	labels := strings.Split(prefix, ".")
	allWild := true
	for _, l := range labels {
		if l == "*" {
			continue
		}
		if !validLabel(l) {
			return ErrInvalidPrefix
		}
		allWild = false
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, l := range labels {
		child, ok := cur.children[l]
		if !ok {
			child = New[T]()
			cur.children[l] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest prefix matching domain.
// An invalid label stops the descent on that path.
func (t *Trie[T]) Match(domain string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(domain)
	return v, ok
}

// MatchWithPattern is Match that also returns the matched rule as it was
// inserted (possibly containing "*").
func (t *Trie[T]) MatchWithPattern(domain string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best := -1
	var bestVal T
	var bestPat string

	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > best {
			best, bestVal, bestPat = depth, n.val, n.pattern
		}
		if off >= len(domain) {
			return
		}
		label, next, ok := nextLabel(domain, off)
		if !ok {
			return
		}
		if c, ok := n.children[label]; ok {
			walk(c, next, depth+1)
		}
		if c, ok := n.children["*"]; ok {
			walk(c, next, depth+1)
		}
	}
	walk(t, 0, 0)

	if best < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// nextLabel scans the label starting at off without allocating. It returns
// the label, the offset just past its trailing dot, and whether it is valid.
func nextLabel(s string, off int) (string, int, bool) {
	i := off
	for i < len(s) && s[i] != '.' {
		i++
	}
	label := s[off:i]
	if !validLabel(label) {
		return "", 0, false
	}
	if i < len(s) {
		i++
		if i == len(s) {
			// trailing dot
			return "", 0, false
		}
	}
	return label, i, true
}

// validLabel reports whether l matches [a-z0-9][a-z0-9_-]*.
func validLabel(l string) bool {
	if l == "" {
		return false
	}
	for i := 0; i < len(l); i++ {
		c := l[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case (c == '-' || c == '_') && i > 0:
		default:
			return false
		}
	}
	return true
}
