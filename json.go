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

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/dstatus/code"
)

var (
	// ErrUnknownCode is returned when a serialized status carries a code
	// outside the table. It is the same sentinel as code.ErrCodeInvalid.
	ErrUnknownCode = code.ErrCodeInvalid

	// ErrUnknownDetailType is returned when an ErrorDetails carries a type
	// token this version does not know.
	ErrUnknownDetailType = errors.New("dstatus: unknown error detail type")

	// ErrUnknownValidationType is returned when a ValidationError carries a
	// type token this version does not know.
	ErrUnknownValidationType = errors.New("dstatus: unknown validation error type")

	// ErrMissingDiscriminant is returned when the "code" or "type" field is
	// absent or empty.
	ErrMissingDiscriminant = errors.New("dstatus: missing discriminant")

	// ErrMissingField is returned when a required field other than the
	// discriminant is absent or null.
	ErrMissingField = errors.New("dstatus: missing required field")
)

var (
	_ json.Marshaler   = Status{}
	_ json.Unmarshaler = (*Status)(nil)
	_ json.Marshaler   = ErrorDetails{}
	_ json.Unmarshaler = (*ErrorDetails)(nil)
	_ json.Marshaler   = ValidationError{}
	_ json.Unmarshaler = (*ValidationError)(nil)
)

// statusWire is the flattened wire shape of a Status: the code next to the
// StatusDetails fields, not nested under a sub-key.
type statusWire struct {
	Code          code.Code `json:"code" yaml:"code"`
	StatusDetails `yaml:",inline"`
}

// errorInfoWire is the flattened wire shape of an ERROR_INFO detail.
type errorInfoWire struct {
	Type      DetailType `json:"type" yaml:"type"`
	ErrorInfo `yaml:",inline"`
}

// detailHead reads only the discriminant of a serialized detail.
type detailHead struct {
	Type DetailType `json:"type" yaml:"type"`
}

// validationWire has the fields of ValidationError without its methods.
type validationWire ValidationError

// MarshalJSON implements json.Marshaler.
//
//	{"code":"UNKNOWN","message":"Unsure about that","error_details":[...]}
func (s Status) MarshalJSON() ([]byte, error) {
	w, err := s.wire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. The "code" field selects the
// variant; the remaining fields populate Details. Field names are matched
// exactly and "message" is required.
func (s *Status) UnmarshalJSON(b []byte) error {
	m, err := members(b)
	if err != nil {
		return err
	}
	var w statusWire
	if err := member(m, "code", &w.Code, false); err != nil {
		return err
	}
	if w.Code == code.Empty {
		return fmt.Errorf("%w: status has no %q", ErrMissingDiscriminant, "code")
	}
	if err := member(m, "message", &w.Message, true); err != nil {
		return err
	}
	if err := member(m, "error_details", &w.ErrorDetails, false); err != nil {
		return err
	}
	return s.fromWire(w)
}

func (s Status) wire() (statusWire, error) {
	if err := code.Validate(s.Code); err != nil {
		return statusWire{}, err
	}
	return statusWire{Code: s.Code, StatusDetails: s.Details}, nil
}

func (s *Status) fromWire(w statusWire) error {
	if w.Code == code.Empty {
		return fmt.Errorf("%w: status has no %q", ErrMissingDiscriminant, "code")
	}
	w.ErrorDetails = cloneDetails(w.ErrorDetails)
	*s = Status{Code: w.Code, Details: w.StatusDetails}
	return nil
}

// MarshalJSON implements json.Marshaler.
//
//	{"type":"ERROR_INFO","reason":"UNKNOWN_FAULT","domain":"com.appbiotic.error"}
func (d ErrorDetails) MarshalJSON() ([]byte, error) {
	w, err := d.wire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. An ERROR_INFO detail requires
// "reason" and "domain".
func (d *ErrorDetails) UnmarshalJSON(b []byte) error {
	m, err := members(b)
	if err != nil {
		return err
	}
	var typ DetailType
	if err := member(m, "type", &typ, false); err != nil {
		return err
	}
	switch typ {
	case DetailErrorInfo:
		var info ErrorInfo
		if err := member(m, "reason", &info.Reason, true); err != nil {
			return err
		}
		if err := member(m, "domain", &info.Domain, true); err != nil {
			return err
		}
		if err := member(m, "metadata", &info.Metadata, false); err != nil {
			return err
		}
		*d = ErrorInfoDetail(info)
		return nil
	case "":
		return fmt.Errorf("%w: error detail has no %q", ErrMissingDiscriminant, "type")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDetailType, string(typ))
	}
}

func (d ErrorDetails) wire() (any, error) {
	switch d.typ {
	case DetailErrorInfo:
		return errorInfoWire{Type: d.typ, ErrorInfo: d.info}, nil
	case "":
		return nil, fmt.Errorf("%w: error detail has no variant", ErrMissingDiscriminant)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDetailType, string(d.typ))
	}
}

// MarshalJSON implements json.Marshaler.
//
//	{"type":"INVALID_FORMAT","message":"did not match regex"}
func (e ValidationError) MarshalJSON() ([]byte, error) {
	if err := checkValidationType(e.Type); err != nil {
		return nil, err
	}
	return json.Marshal(validationWire(e))
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ValidationError) UnmarshalJSON(b []byte) error {
	m, err := members(b)
	if err != nil {
		return err
	}
	var w validationWire
	if err := member(m, "type", &w.Type, false); err != nil {
		return err
	}
	if err := checkValidationType(w.Type); err != nil {
		return err
	}
	if err := member(m, "message", &w.Message, true); err != nil {
		return err
	}
	*e = ValidationError(w)
	return nil
}

func checkValidationType(t ValidationType) error {
	if t == "" {
		return fmt.Errorf("%w: validation error has no %q", ErrMissingDiscriminant, "type")
	}
	if !knownValidationType(t) {
		return fmt.Errorf("%w: %q", ErrUnknownValidationType, string(t))
	}
	return nil
}

// members splits a JSON object into its fields keyed by their exact names.
// A null object yields an empty map, so every lookup reports absence.
func members(b []byte) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// member decodes the field named key into dst. A null value counts as
// absent; an absent required field fails with ErrMissingField.
func member(m map[string]json.RawMessage, key string, dst any, required bool) error {
	raw, ok := m[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		if required {
			return fmt.Errorf("%w: %q", ErrMissingField, key)
		}
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}
