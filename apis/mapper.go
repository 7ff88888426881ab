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

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/fficb/code"
	"dirpx.dev/fficb/site"
)

// Mapper is an immutable, concurrency-safe view of transport classification
// rules. It resolves the status returned by a backend call (HTTP or gRPC)
// made on behalf of a boundary entry point into the numeric code reported to
// native callers.
type Mapper interface {
	// HTTPCode returns the failure code for an HTTP response status observed
	// at the given site. If no site-specific rule exists, the mapper falls
	// back to the status-level rule.
	HTTPCode(status int, s site.Site) code.Code

	// GRPCCode returns the failure code for a gRPC status code observed at the
	// given site, with the same fallback logic as HTTPCode.
	GRPCCode(c codes.Code, s site.Site) code.Code

	// Explain returns a human-readable description of which rules matched.
	// Implementations may return an empty string in production builds.
	Explain(status int, c codes.Code, s site.Site) string
}
