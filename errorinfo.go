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
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"dirpx.dev/dstatus/reason"
)

// DetailType is the wire discriminant of an ErrorDetails variant.
// Every variant has its own fixed token, independent of the others.
type DetailType string

const (
	// DetailErrorInfo tags an ErrorInfo detail.
	DetailErrorInfo DetailType = "ERROR_INFO"
)

// ErrorInfo is a machine-readable description of the cause of a failure.
//
// Reason is intended to be a short UPPER_SNAKE code (e.g. "UNKNOWN_FAULT"),
// Domain a DNS-style namespace owning that code (e.g. "com.appbiotic.error").
// Neither is validated on construction; see Validate and StrictInfo.
//
// Metadata is an unordered string map. Encoders emit its keys sorted and
// omit it entirely when empty.
type ErrorInfo struct {
	Reason   string            `json:"reason" yaml:"reason"`
	Domain   string            `json:"domain" yaml:"domain"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// InfoValidator is a pluggable check for an ErrorInfo.
type InfoValidator func(ErrorInfo) error

// NewErrorInfo builds an ErrorInfo with empty metadata.
func NewErrorInfo(reason, domain string) ErrorInfo {
	return ErrorInfo{Reason: reason, Domain: domain}
}

// WithMetadata returns a copy of i with one extra metadata entry.
//
// The map is always copied, so the receiver and any ErrorInfo sharing its
// map are left untouched.
func (i ErrorInfo) WithMetadata(k, v string) ErrorInfo {
	m := make(map[string]string, len(i.Metadata)+1)
	maps.Copy(m, i.Metadata)
	m[k] = v
	i.Metadata = m
	return i
}

// WithMetadataMap returns a copy of i with kv merged into its metadata,
// kv taking precedence on key conflicts.
func (i ErrorInfo) WithMetadataMap(kv map[string]string) ErrorInfo {
	if len(kv) == 0 {
		return i
	}
	m := make(map[string]string, len(i.Metadata)+len(kv))
	maps.Copy(m, i.Metadata)
	maps.Copy(m, kv)
	i.Metadata = m
	return i
}

// Equal reports whether i and o have the same reason, domain and metadata.
// Metadata order is irrelevant; nil and empty metadata are equal.
func (i ErrorInfo) Equal(o ErrorInfo) bool {
	return i.Reason == o.Reason && i.Domain == o.Domain && maps.Equal(i.Metadata, o.Metadata)
}

// Validate runs every validator against i and joins their failures.
// With no validators it accepts anything, matching the constructors.
func (i ErrorInfo) Validate(vs ...InfoValidator) error {
	var errs []error
	for _, v := range vs {
		if v == nil {
			continue
		}
		if err := v(i); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// StrictInfo is an InfoValidator enforcing the intended format of reason,
// domain and metadata keys (see package reason).
func StrictInfo(i ErrorInfo) error {
	errs := []error{
		reason.Validate(i.Reason),
		reason.ValidateDomain(i.Domain),
	}
	for _, k := range slices.Sorted(maps.Keys(i.Metadata)) {
		errs = append(errs, reason.ValidateMetadataKey(k))
	}
	return errors.Join(errs...)
}

// LogValue implements slog.LogValuer.
func (i ErrorInfo) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("reason", i.Reason),
		slog.String("domain", i.Domain),
	}
	if len(i.Metadata) > 0 {
		md := make([]slog.Attr, 0, len(i.Metadata))
		for _, k := range slices.Sorted(maps.Keys(i.Metadata)) {
			md = append(md, slog.String(k, i.Metadata[k]))
		}
		attrs = append(attrs, slog.Attr{Key: "metadata", Value: slog.GroupValue(md...)})
	}
	return slog.GroupValue(attrs...)
}

// ErrorDetails is one structured fact attached to a StatusDetails.
//
// It is a closed tagged union: the variant is fixed at construction and
// selected by Type. New variants get their own constructor, accessor and
// DetailType token; switches over Type should carry a default branch.
// The zero value has no variant and is refused by encoders.
type ErrorDetails struct {
	typ  DetailType
	info ErrorInfo
}

// ErrorInfoDetail wraps info as an ERROR_INFO detail. The metadata map is
// copied.
func ErrorInfoDetail(info ErrorInfo) ErrorDetails {
	if len(info.Metadata) == 0 {
		info.Metadata = nil
	} else {
		info.Metadata = maps.Clone(info.Metadata)
	}
	return ErrorDetails{typ: DetailErrorInfo, info: info}
}

// Type returns the variant tag.
func (d ErrorDetails) Type() DetailType { return d.typ }

// ErrorInfo returns the wrapped ErrorInfo when d is an ERROR_INFO detail.
// The returned metadata map is shared with d and must not be modified.
func (d ErrorDetails) ErrorInfo() (ErrorInfo, bool) {
	if d.typ != DetailErrorInfo {
		return ErrorInfo{}, false
	}
	return d.info, true
}

// Equal reports whether d and o are the same variant with equal payloads.
func (d ErrorDetails) Equal(o ErrorDetails) bool {
	if d.typ != o.typ {
		return false
	}
	switch d.typ {
	case DetailErrorInfo:
		return d.info.Equal(o.info)
	default:
		return true
	}
}

// String renders the detail for debugging, e.g. "ERROR_INFO{UNKNOWN_FAULT@com.appbiotic.error}".
func (d ErrorDetails) String() string {
	switch d.typ {
	case DetailErrorInfo:
		return fmt.Sprintf("%s{%s@%s}", d.typ, d.info.Reason, d.info.Domain)
	default:
		return fmt.Sprintf("%q{}", string(d.typ))
	}
}

// LogValue implements slog.LogValuer.
func (d ErrorDetails) LogValue() slog.Value {
	switch d.typ {
	case DetailErrorInfo:
		return slog.GroupValue(append([]slog.Attr{slog.String("type", string(d.typ))}, d.info.LogValue().Group()...)...)
	default:
		return slog.GroupValue(slog.String("type", string(d.typ)))
	}
}
