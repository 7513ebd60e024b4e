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

package dstatus

import "fmt"

// StatusDetails is the code-agnostic payload of a Status: a message plus an
// ordered list of structured details.
//
// Message is required but may be empty. ErrorDetails may be empty, in which
// case it is omitted from every serialized form.
type StatusDetails struct {
	Message      string         `json:"message" yaml:"message"`
	ErrorDetails []ErrorDetails `json:"error_details,omitempty" yaml:"error_details,omitempty"`
}

// NewStatusDetails builds a StatusDetails from a message and details.
// The details are copied, so later changes to the caller's slice are not
// observed.
func NewStatusDetails(message string, details ...ErrorDetails) StatusDetails {
	return StatusDetails{Message: message, ErrorDetails: cloneDetails(details)}
}

// DetailsFromError renders any displayable value into a StatusDetails with
// no error details.
//
// Rendering follows fmt: an error renders as Error(), a fmt.Stringer as
// String(), a string as itself.
func DetailsFromError(v any) StatusDetails {
	return StatusDetails{Message: display(v)}
}

// String returns the message only. The code prefix belongs to the owning
// Status.
func (d StatusDetails) String() string { return d.Message }

// WithErrorDetails returns a copy of d with ds appended.
// The receiver's slice is never written to.
func (d StatusDetails) WithErrorDetails(ds ...ErrorDetails) StatusDetails {
	if len(ds) == 0 {
		return d
	}
	out := make([]ErrorDetails, 0, len(d.ErrorDetails)+len(ds))
	out = append(out, d.ErrorDetails...)
	out = append(out, ds...)
	d.ErrorDetails = out
	return d
}

// Equal reports whether d and o have the same message and pairwise equal
// details in the same order. A nil and an empty list are equal.
func (d StatusDetails) Equal(o StatusDetails) bool {
	if d.Message != o.Message || len(d.ErrorDetails) != len(o.ErrorDetails) {
		return false
	}
	for i := range d.ErrorDetails {
		if !d.ErrorDetails[i].Equal(o.ErrorDetails[i]) {
			return false
		}
	}
	return true
}

// cloneDetails copies ds, normalizing an empty list to nil.
func cloneDetails(ds []ErrorDetails) []ErrorDetails {
	if len(ds) == 0 {
		return nil
	}
	out := make([]ErrorDetails, len(ds))
	copy(out, ds)
	return out
}

func display(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
