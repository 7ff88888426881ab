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

// Package site names the entry points of the C boundary.
//
// Go has no equivalent of capturing the caller's module path and line when a
// failure is normalized, so the context that identifies an entry point is
// passed explicitly as a Site. It shows up in the diagnostic log line and is
// the key that transport mappers match prefix rules against.
//
// The zero value ("") is allowed and means that the caller did not name the
// entry point.
package site
