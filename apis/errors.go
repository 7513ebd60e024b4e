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

package apis

import "dirpx.dev/dstatus/code"

// CodedError represents an error that is classified into one of the
// standard status codes.
//
// dstatus.Status implements it. Other error types may implement it too, so
// that dstatus.FromError can keep their classification instead of falling
// back to UNKNOWN.
type CodedError interface {
	error

	// StatusCode returns the status code of the error.
	//
	// The returned value SHOULD be one of the known codes from the code
	// package. Callers treat anything else as UNKNOWN.
	StatusCode() code.Code
}
