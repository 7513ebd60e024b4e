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

package reason

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxLength and MaxKeyLength bound the sizes accepted by the validators.
const (
	// MaxLength is the maximum length of a reason.
	MaxLength = 63

	// MaxKeyLength is the maximum length of a metadata key.
	MaxKeyLength = 64

	// MaxDomainLength is the maximum length of a domain, the DNS name limit.
	MaxDomainLength = 253
)

const (
	// reasonFmt accepts UPPER_SNAKE identifiers that start with a letter and
	// do not end with an underscore.
	//
	// Examples that match:
	//
	//	"UNKNOWN_FAULT"
	//	"API_DISABLED"
	//	"QUOTA_V2_EXCEEDED"
	//
	// Examples that DO NOT match:
	//
	//	"unknown_fault" (lowercase)
	//	"UNKNOWN-FAULT" (dash)
	//	"_FAULT"        (leading underscore)
	//	"FAULT_"        (trailing underscore)
	reasonFmt = `^[A-Z][A-Z0-9_]*[A-Z0-9]$`

	// labelFmt is a single DNS-style domain label.
	labelFmt = `^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`

	// keyFmt is a metadata key.
	keyFmt = `^[a-z][a-zA-Z0-9_-]*$`
)

var (
	reasonRe = regexp.MustCompile(reasonFmt)
	labelRe  = regexp.MustCompile(labelFmt)
	keyRe    = regexp.MustCompile(keyFmt)
)

var (
	// ErrReasonInvalidFormat is returned when a reason is not UPPER_SNAKE.
	ErrReasonInvalidFormat = errors.New("dstatus: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is empty or too long.
	ErrReasonInvalidLength = errors.New("dstatus: invalid reason length")
	// ErrDomainInvalid is returned when a domain is not a DNS-style name.
	ErrDomainInvalid = errors.New("dstatus: invalid domain")
	// ErrMetadataKeyInvalid is returned when a metadata key is malformed.
	ErrMetadataKeyInvalid = errors.New("dstatus: invalid metadata key")
)

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical reason form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - upper-case
//   - replace "-", "." and " " with "_"
//
// It does NOT guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(s)
}

// Validate checks whether r is a well-formed reason.
func Validate(r string) error {
	if len(r) < 2 || len(r) > MaxLength {
		return fmt.Errorf("%w: %q", ErrReasonInvalidLength, r)
	}
	if !reasonRe.MatchString(r) {
		return fmt.Errorf("%w: %q", ErrReasonInvalidFormat, r)
	}
	return nil
}

// ValidateDomain checks whether d is a DNS-style name of at least two
// lowercase labels, e.g. "com.appbiotic.error" or "googleapis.com".
func ValidateDomain(d string) error {
	if d == "" || len(d) > MaxDomainLength {
		return fmt.Errorf("%w: %q", ErrDomainInvalid, d)
	}
	labels := strings.Split(d, ".")
	if len(labels) < 2 {
		return fmt.Errorf("%w: %q needs at least two labels", ErrDomainInvalid, d)
	}
	for _, l := range labels {
		if len(l) > 63 || !labelRe.MatchString(l) {
			return fmt.Errorf("%w: %q has bad label %q", ErrDomainInvalid, d, l)
		}
	}
	return nil
}

// ValidateMetadataKey checks a single metadata key.
func ValidateMetadataKey(k string) error {
	if len(k) > MaxKeyLength || !keyRe.MatchString(k) {
		return fmt.Errorf("%w: %q", ErrMetadataKeyInvalid, k)
	}
	return nil
}
