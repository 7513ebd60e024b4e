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

package adapter

import (
	"errors"
	"fmt"
	"maps"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/code"
)

var (
	// ErrNilStatus is returned by FromProto for a nil message.
	ErrNilStatus = errors.New("adapter: nil status")

	// ErrNotAFailure is returned by FromProto for a status with code OK,
	// which has no dstatus counterpart.
	ErrNotAFailure = errors.New("adapter: status code OK is not a failure")
)

// ToProto converts s into a google.rpc.Status.
//
// It fails only for values the JSON encoder would refuse as well: an unknown
// code or a detail without a known variant.
func ToProto(s dstatus.Status) (*spb.Status, error) {
	if err := code.Validate(s.Code); err != nil {
		return nil, fmt.Errorf("adapter: %w", err)
	}
	out := &spb.Status{
		Code:    int32(s.Code.GRPC()),
		Message: s.Message(),
	}
	for i, d := range s.ErrorDetails() {
		m, err := detailToProto(d)
		if err != nil {
			return nil, fmt.Errorf("adapter: error_details[%d]: %w", i, err)
		}
		a, err := anypb.New(m)
		if err != nil {
			return nil, fmt.Errorf("adapter: error_details[%d]: %w", i, err)
		}
		out.Details = append(out.Details, a)
	}
	return out, nil
}

// FromProto converts a google.rpc.Status back into a Status.
//
// Codes outside the gRPC table become UNKNOWN, the way grpc-go treats them.
// Details that are not google.rpc.ErrorInfo are skipped.
func FromProto(p *spb.Status) (dstatus.Status, error) {
	if p == nil {
		return dstatus.Status{}, ErrNilStatus
	}
	g := codes.Code(p.GetCode())
	if g == codes.OK {
		return dstatus.Status{}, ErrNotAFailure
	}
	c, ok := code.FromGRPC(g)
	if !ok {
		c = code.Unknown
	}
	return dstatus.New(c, dstatus.NewStatusDetails(p.GetMessage(), DetailsFromProto(p.GetDetails())...)), nil
}

// DetailsFromProto extracts the ErrorDetails carried by packed protobuf
// details, in order. Entries that cannot be unpacked or have no dstatus
// variant are skipped.
func DetailsFromProto(details []*anypb.Any) []dstatus.ErrorDetails {
	var out []dstatus.ErrorDetails
	for _, a := range details {
		m, err := a.UnmarshalNew()
		if err != nil {
			continue
		}
		if d, ok := detailFromProto(m); ok {
			out = append(out, d)
		}
	}
	return out
}

// ErrorInfoToProto converts one ErrorInfo into its google.rpc.ErrorInfo
// form. The metadata map is copied.
func ErrorInfoToProto(info dstatus.ErrorInfo) *errdetails.ErrorInfo {
	return &errdetails.ErrorInfo{
		Reason:   info.Reason,
		Domain:   info.Domain,
		Metadata: maps.Clone(info.Metadata),
	}
}

// ErrorInfoFromProto is the inverse of ErrorInfoToProto.
func ErrorInfoFromProto(p *errdetails.ErrorInfo) dstatus.ErrorInfo {
	return dstatus.NewErrorInfo(p.GetReason(), p.GetDomain()).WithMetadataMap(p.GetMetadata())
}

func detailToProto(d dstatus.ErrorDetails) (proto.Message, error) {
	switch d.Type() {
	case dstatus.DetailErrorInfo:
		info, _ := d.ErrorInfo()
		return ErrorInfoToProto(info), nil
	case "":
		return nil, fmt.Errorf("%w: error detail has no variant", dstatus.ErrMissingDiscriminant)
	default:
		return nil, fmt.Errorf("%w: %q", dstatus.ErrUnknownDetailType, string(d.Type()))
	}
}

func detailFromProto(m proto.Message) (dstatus.ErrorDetails, bool) {
	switch v := m.(type) {
	case *errdetails.ErrorInfo:
		return dstatus.ErrorInfoDetail(ErrorInfoFromProto(v)), true
	default:
		return dstatus.ErrorDetails{}, false
	}
}
