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

// Package grpcx connects dstatus to grpc-go.
//
// There are two conversions from Status to a gRPC status:
//
//   - ToGRPC is the plain one: the code through the fixed table of package
//     code and the message. ErrorDetails are dropped.
//   - ToGRPCWithDetails additionally packs every ERROR_INFO detail as a
//     google.rpc.ErrorInfo, so nothing is lost.
//
// FromGRPC and FromError read a gRPC status back, details included when
// present.
//
// UnaryServerInterceptor turns handler errors carrying a Status into gRPC
// status errors; UnaryClientInterceptor does the reverse on the calling
// side, so a Status returned by a server arrives as a Status at the caller.
package grpcx
