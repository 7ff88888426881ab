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

package code

// Core / generic error codes
//
// These codes describe high-level, transport-agnostic failure classes. The
// numeric values are part of the C ABI: once published they are never reused
// or renumbered.
const (
	// Internal indicates an internal, non-classified failure.
	// It is the fallback for errors that carry no code of their own.
	Internal Code = -1

	// Invalid indicates that an argument passed across the boundary violates
	// a structural or semantic invariant (format, range, charset).
	Invalid Code = -2

	// Missing indicates that a required argument or object is absent.
	Missing Code = -3

	// Unsupported indicates that the requested operation or option is not
	// available in this build or configuration.
	Unsupported Code = -4
)

// Runtime / operation control error codes
//
// These codes describe transient conditions of whatever sits behind the
// boundary (network services, storage).
const (
	// Unavailable indicates that a required backend is temporarily unreachable.
	Unavailable Code = -10

	// Timeout indicates that the operation exceeded its time budget.
	Timeout Code = -11

	// Canceled indicates that the operation was canceled before completion.
	Canceled Code = -12

	// DependencyFailed indicates that a reachable backend returned a failure
	// that makes continuing impossible.
	DependencyFailed Code = -13

	// Overloaded indicates that the backend refused work because it is saturated.
	Overloaded Code = -14
)

// Resource / state error codes
const (
	// NotFound indicates that the requested entity does not exist.
	NotFound Code = -20

	// AlreadyExists indicates that an entity with the same identity exists.
	AlreadyExists Code = -21

	// Conflict indicates a state conflict such as a concurrent update.
	Conflict Code = -22

	// PreconditionFailed indicates that a required precondition was not met.
	PreconditionFailed Code = -23

	// Gone indicates that the entity existed but is no longer available.
	Gone Code = -24
)

// Authentication / authorization
const (
	// Unauthenticated indicates that no valid identity could be established.
	Unauthenticated Code = -30

	// PermissionDenied indicates that the caller is known but not allowed.
	PermissionDenied Code = -31
)

// Rate / quota
const (
	// RateLimited indicates that the caller exceeded the allowed call rate.
	RateLimited Code = -40

	// QuotaExceeded indicates that a configured resource quota is exhausted.
	QuotaExceeded Code = -41
)

// Boundary error codes
//
// These codes are produced by the boundary itself rather than by the
// operation behind it.
const (
	// Panic indicates that the operation panicked and the panic was recovered
	// by the boundary wrapper.
	Panic Code = -50

	// NullPointer indicates that a required pointer argument was NULL.
	NullPointer Code = -51

	// InvalidString indicates that a C string argument was not valid UTF-8.
	InvalidString Code = -52
)

// builtin is the name table seeded into the registry.
var builtin = map[Code]string{
	Internal:           "internal",
	Invalid:            "invalid",
	Missing:            "missing",
	Unsupported:        "unsupported",
	Unavailable:        "unavailable",
	Timeout:            "timeout",
	Canceled:           "canceled",
	DependencyFailed:   "dependency_failed",
	Overloaded:         "overloaded",
	NotFound:           "not_found",
	AlreadyExists:      "already_exists",
	Conflict:           "conflict",
	PreconditionFailed: "precondition_failed",
	Gone:               "gone",
	Unauthenticated:    "unauthenticated",
	PermissionDenied:   "permission_denied",
	RateLimited:        "rate_limited",
	QuotaExceeded:      "quota_exceeded",
	Panic:              "panic",
	NullPointer:        "null_pointer",
	InvalidString:      "invalid_string",
}
