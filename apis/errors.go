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

// CodedError is the ErrorCode capability: an error that knows the stable,
// numeric code native callers branch on.
//
// Codes are negative for failures; 0 is reserved for success and MUST NOT be
// returned by an error. The mapping from error variant to code is defined
// once per error type and is part of the wire contract, so it must not change
// between releases consumed by external callers.
//
// The human-readable description is the error's Error() string. The debug
// representation logged at the failure site is its "%+v" formatting, so rich
// error types should implement fmt.Formatter.
type CodedError interface {
	error

	// ErrorCode returns the numeric error code.
	//
	// Two semantically distinct causes within one error type should not share
	// a code if a caller needs to tell them apart programmatically.
	ErrorCode() int32
}

// SitedError is implemented by errors that remember which boundary entry
// point they were raised for (see package site).
//
// The returned value MAY be empty.
type SitedError interface {
	error

	// ErrorSite returns the canonical site name, or "".
	ErrorSite() string
}
