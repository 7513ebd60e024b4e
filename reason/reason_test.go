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
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim+upper", "  unknown_fault  ", "UNKNOWN_FAULT"},
		{"dash to underscore", "api-disabled", "API_DISABLED"},
		{"dot to underscore", "quota.exceeded", "QUOTA_EXCEEDED"},
		{"space to underscore", "Bad Token", "BAD_TOKEN"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Valid(t *testing.T) {
	for _, r := range []string{"UNKNOWN_FAULT", "API_DISABLED", "QUOTA_V2_EXCEEDED", "OK", strings.Repeat("A", MaxLength)} {
		if err := Validate(r); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", r, err)
		}
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrReasonInvalidLength},
		{"single char", "A", ErrReasonInvalidLength},
		{"too long", strings.Repeat("A", MaxLength+1), ErrReasonInvalidLength},
		{"lowercase", "unknown_fault", ErrReasonInvalidFormat},
		{"dash", "UNKNOWN-FAULT", ErrReasonInvalidFormat},
		{"leading underscore", "_FAULT", ErrReasonInvalidFormat},
		{"trailing underscore", "FAULT_", ErrReasonInvalidFormat},
		{"digit first", "1FAULT", ErrReasonInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate(%q) = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestValidateDomain(t *testing.T) {
	valid := []string{"com.appbiotic.error", "googleapis.com", "dev.dirpx.storage-pg", "io.k8s"}
	for _, d := range valid {
		if err := ValidateDomain(d); err != nil {
			t.Fatalf("ValidateDomain(%q) unexpected error: %v", d, err)
		}
	}

	invalid := []string{
		"",                    // empty
		"localhost",           // single label
		"Com.Appbiotic",       // uppercase
		"com..appbiotic",      // empty label
		"com.-appbiotic",      // leading dash
		"com.appbiotic_error", // underscore
		"com.appbiotic.",      // trailing dot
		"com." + strings.Repeat("a", 64),
	}
	for _, d := range invalid {
		if err := ValidateDomain(d); !errors.Is(err, ErrDomainInvalid) {
			t.Fatalf("ValidateDomain(%q) = %v, want ErrDomainInvalid", d, err)
		}
	}
}

func TestValidateMetadataKey(t *testing.T) {
	for _, k := range []string{"resource", "resourceName", "max_size", "retry-after"} {
		if err := ValidateMetadataKey(k); err != nil {
			t.Fatalf("ValidateMetadataKey(%q) unexpected error: %v", k, err)
		}
	}
	for _, k := range []string{"", "Resource", "1key", "with space", "a.b", strings.Repeat("k", MaxKeyLength+1)} {
		if err := ValidateMetadataKey(k); !errors.Is(err, ErrMetadataKeyInvalid) {
			t.Fatalf("ValidateMetadataKey(%q) = %v, want ErrMetadataKeyInvalid", k, err)
		}
	}
}
