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

// Package code defines the numeric error codes reported across the C ABI.
//
// A code is the only part of a failure that native callers are expected to
// branch on. Codes are:
//
//   - 32-bit signed integers;
//   - 0 for success and negative for every failure;
//   - stable: a published value is never reused for a different cause;
//   - optionally named, so logs and tooling can print "not_found(-20)".
//
// The package ships the codes the boundary itself needs and a registry that
// products embedding the library use to name their own codes.
package code
