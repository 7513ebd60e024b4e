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

// Package code defines the closed set of status codes carried by a
// dstatus.Status.
//
// A "code" is the top-level, machine-readable failure category of a status,
// following the well-known RPC status-code convention: CANCELLED, NOT_FOUND,
// INVALID_ARGUMENT and so on. Codes are:
//
//   - a fixed set of sixteen values (there is no OK code, a status always
//     describes a failure);
//   - rendered as SCREAMING_SNAKE_CASE tokens taken from an explicit table;
//   - part of the wire contract: the literal tokens never change.
//
// The package also owns the one-to-one table between codes and gRPC
// codes.Code values, so every transport adapter agrees on it.
//
// IMPORTANT: Empty codes ("") are NOT valid. Decoders reject them.
package code
