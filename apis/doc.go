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

// Package apis defines the small Go-level contracts shared between dstatus
// and its transport adapters.
//
// The goal of this package is to let adapters (HTTP, gRPC) and foreign error
// types talk about status codes without importing the concrete Status type.
// An error from another library that implements CodedError is lifted into a
// Status with its code preserved by dstatus.FromError.
//
// This package must remain lightweight: it only contains interfaces.
package apis
