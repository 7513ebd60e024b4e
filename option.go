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

import "dirpx.dev/dstatus/code"

// Option is a functional option for constructing a Status with E.
// It takes the details being built and returns the (possibly new) details.
type Option func(StatusDetails) StatusDetails

// E is a convenience constructor for Status.
//
// Usage:
//
//	return dstatus.E(code.NotFound, "user not found",
//	    dstatus.WithErrorInfo("USER_NOT_FOUND", "dev.dirpx.users"),
//	    dstatus.WithMetadata("userId", id),
//	)
//
// It always returns a *new* Status and applies all provided options in order.
func E(c code.Code, msg string, opts ...Option) Status {
	d := StatusDetails{Message: msg}
	for _, opt := range opts {
		d = opt(d)
	}
	return New(c, d)
}

// WithErrorDetails appends ready-made details.
// Intended to be used with E(...).
func WithErrorDetails(ds ...ErrorDetails) Option {
	return func(d StatusDetails) StatusDetails {
		return d.WithErrorDetails(ds...)
	}
}

// WithErrorInfo appends an ERROR_INFO detail with the given reason and
// domain. Intended to be used with E(...).
func WithErrorInfo(reason, domain string) Option {
	return WithErrorDetails(ErrorInfoDetail(NewErrorInfo(reason, domain)))
}

// WithMetadata adds one metadata entry to the most recently added
// ERROR_INFO detail. It is a no-op when there is none yet, so it must come
// after WithErrorInfo.
func WithMetadata(k, v string) Option {
	return func(d StatusDetails) StatusDetails {
		for i := len(d.ErrorDetails) - 1; i >= 0; i-- {
			info, ok := d.ErrorDetails[i].ErrorInfo()
			if !ok {
				continue
			}
			out := cloneDetails(d.ErrorDetails)
			out[i] = ErrorInfoDetail(info.WithMetadata(k, v))
			d.ErrorDetails = out
			return d
		}
		return d
	}
}
