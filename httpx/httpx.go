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

package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/mapper"
)

// ContentType is the media type of a serialized Status.
const ContentType = "application/json"

// MaxBodySize bounds how much of a response body Decode reads.
const MaxBodySize = 1 << 20

// ErrNotStatus is returned by Decode when a response does not carry a
// serialized Status.
var ErrNotStatus = errors.New("httpx: response is not a status")

// Writer is a thin adapter that turns a Status into an HTTP response using
// the provided mapper. A nil Mapper means mapper.Default().
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes s as JSON and writes it with the mapped HTTP status.
//
// No redaction is performed: whatever the status carries is exposed.
// A status the encoder refuses (unknown code, empty detail) is replaced by
// an INTERNAL status so the client still gets a well-formed body.
func (w Writer) Write(rw http.ResponseWriter, s dstatus.Status) {
	body, err := json.Marshal(s)
	if err != nil {
		s = dstatus.InternalFromError(fmt.Errorf("unencodable status: %w", err))
		body, _ = json.Marshal(s)
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.Header().Set("X-Content-Type-Options", "nosniff")
	rw.WriteHeader(w.statusMapper().HTTPStatus(s.Code, Domain(s)))
	_, _ = rw.Write(body)
}

// WriteError writes err as a Status, lifting it with dstatus.FromError.
func (w Writer) WriteError(rw http.ResponseWriter, err error) {
	w.Write(rw, dstatus.FromError(err))
}

// HandlerFunc is an http.HandlerFunc that reports failure by returning an
// error instead of writing it.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handle adapts h into an http.Handler. A non-nil error returned by h is
// written with WriteError; h must not have written a response in that case.
func (w Writer) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.WriteError(rw, err)
		}
	})
}

func (w Writer) statusMapper() apis.Mapper {
	if w.Mapper == nil {
		return mapper.Default()
	}
	return w.Mapper
}

// Domain returns the domain of the first ERROR_INFO detail of s, or "".
func Domain(s dstatus.Status) string {
	for _, d := range s.ErrorDetails() {
		if info, ok := d.ErrorInfo(); ok {
			return info.Domain
		}
	}
	return ""
}

// Decode reads a Status from an HTTP error response. The body is consumed
// but not closed.
//
// It returns ErrNotStatus for successful responses and for bodies that are
// not JSON; decoding errors of a JSON body (unknown code, unknown detail
// type) are returned as-is.
func Decode(resp *http.Response) (dstatus.Status, error) {
	if resp == nil || resp.StatusCode < 400 {
		return dstatus.Status{}, ErrNotStatus
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != ContentType {
		return dstatus.Status{}, fmt.Errorf("%w: content type %q", ErrNotStatus, resp.Header.Get("Content-Type"))
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return dstatus.Status{}, fmt.Errorf("httpx: read body: %w", err)
	}
	var s dstatus.Status
	if err := json.Unmarshal(b, &s); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) {
			return dstatus.Status{}, fmt.Errorf("%w: %w", ErrNotStatus, err)
		}
		return dstatus.Status{}, err
	}
	return s, nil
}
