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

import "log/slog"

// ValidationType is the wire discriminant of a ValidationError.
type ValidationType string

const (
	// ValidationInvalidFormat tags an input that does not have the expected
	// shape (pattern, charset, encoding, ...).
	ValidationInvalidFormat ValidationType = "INVALID_FORMAT"
)

// ValidationError is an input-validation failure. It is a separate, narrower
// taxonomy than Status and is not itself a service-boundary status; use
// Status to convert it explicitly.
//
// Its discriminant is serialized under "type", unlike Status which uses
// "code". The two names are part of the wire contract.
type ValidationError struct {
	Type    ValidationType `json:"type" yaml:"type"`
	Message string         `json:"message" yaml:"message"`
}

var _ slog.LogValuer = ValidationError{}

// InvalidFormat returns an INVALID_FORMAT validation error.
func InvalidFormat(message string) ValidationError {
	return ValidationError{Type: ValidationInvalidFormat, Message: message}
}

// Error implements the error interface as "<TYPE>: <message>".
func (e ValidationError) Error() string {
	return string(e.Type) + ": " + e.Message
}

// Status converts e into an INVALID_ARGUMENT status whose message is the
// rendered validation error, e.g. "INVALID_FORMAT: did not match regex".
func (e ValidationError) Status() Status {
	return InvalidArgumentFromError(e)
}

// LogValue implements slog.LogValuer.
func (e ValidationError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(e.Type)),
		slog.String("message", e.Message),
	)
}

// knownValidationType reports whether t is one of the ValidationType tokens.
func knownValidationType(t ValidationType) bool {
	switch t {
	case ValidationInvalidFormat:
		return true
	default:
		return false
	}
}
