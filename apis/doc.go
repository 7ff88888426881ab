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

// Package apis defines the small Go-level contracts of the fficb boundary.
//
// Domain packages implement these interfaces; the normalizer, dispatcher and
// transport adapters consume them without importing concrete error types.
// Keeping the contracts here lets a product define its own error types in a
// package that does not depend on the dispatcher.
//
// This package must remain lightweight: interfaces only.
package apis
