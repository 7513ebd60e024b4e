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

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// Code is the canonical representation of a status code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with canonical tokens.
type Code string

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as one of the known status codes.
	ErrCodeInvalid = errors.New("dstatus: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It never names a valid status; it is what
// CodeOf-style helpers return for a nil error.
var Empty Code = ""

// Lookup reports whether s is exactly one of the known code tokens.
// No normalization is applied: this is the check used on the wire.
func Lookup(s string) (Code, bool) {
	c := Code(s)
	if _, ok := ordinal[c]; !ok {
		return Empty, false
	}
	return c, true
}

// Parse takes a user-provided string, normalizes it and looks it up.
// On success it returns a canonical Code value.
func Parse(s string) (Code, error) {
	c, ok := Lookup(Normalize(s))
	if !ok {
		return Empty, fmt.Errorf("%w: %q", ErrCodeInvalid, s)
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level values in var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical code form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - uppercases the value;
//   - replaces '-' and ' ' with '_'.
//
// It does NOT guarantee that the result is a known code.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return s
}

// Validate checks whether the provided Code is one of the known codes.
// The empty code ("") is considered invalid.
func Validate(c Code) error {
	if _, ok := ordinal[c]; !ok {
		return fmt.Errorf("%w: %q", ErrCodeInvalid, string(c))
	}
	return nil
}

// All returns every known code in canonical numeric order
// (CANCELLED first, DATA_LOSS last). The returned slice is a fresh copy.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// Unknown codes are refused so that an invalid value can never reach the wire.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Unlike Parse, decoding is exact: the token must match the table byte for
// byte (surrounding whitespace aside), because the tokens are a wire contract.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, ok := Lookup(string(bytes.TrimSpace(text)))
	if !ok {
		return fmt.Errorf("%w: %q", ErrCodeInvalid, string(text))
	}
	*c = parsed
	return nil
}
