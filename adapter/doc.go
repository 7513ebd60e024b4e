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

// Package adapter converts dstatus values to and from the google.rpc.Status
// protobuf message.
//
// google.rpc.Status is the shape gRPC puts on the wire and the one most
// status-aware tooling understands. ERROR_INFO details travel as
// google.rpc.ErrorInfo packed into google.protobuf.Any, so any client that
// knows the standard error model can read them without this library.
//
// The conversion keeps everything a Status carries: the code (through the
// fixed gRPC table of package code), the message and every ErrorDetails in
// order. Details attached by other libraries (RetryInfo, LocalizedMessage,
// ...) have no dstatus variant and are skipped on the way back.
package adapter
