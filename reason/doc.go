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

// Package reason provides optional format checks for the machine-readable
// parts of an ErrorInfo: the reason, the domain and the metadata keys.
//
// The intended contract of those fields is:
//
//   - reason: a short UPPER_SNAKE code identifying the specific fault,
//     e.g. "UNKNOWN_FAULT" or "API_DISABLED";
//   - domain: a reverse-DNS (or otherwise DNS-style) namespace naming the
//     system that defines the reason, e.g. "com.appbiotic.error";
//   - metadata keys: lowerCamelCase-ish identifiers, e.g. "resourceName".
//
// Nothing in dstatus calls these checks on construction: ErrorInfo accepts
// any string. Callers that want the stricter contract opt in explicitly,
// typically through dstatus.StrictInfo.
package reason
