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

// Package httpx writes and reads dstatus values as HTTP error responses.
//
// The body is the JSON wire form of the Status, unchanged:
//
//	HTTP/1.1 404 Not Found
//	Content-Type: application/json
//
//	{"code":"NOT_FOUND","message":"user not found","error_details":[...]}
//
// The HTTP status line comes from an apis.Mapper, refined by the domain of
// the first ERROR_INFO detail. The body always carries the exact code, so a
// client never has to guess it back from the HTTP status.
package httpx
