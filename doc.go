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

// Package fficb provides the rich error type used behind a C boundary.
//
// Operations exported to native callers fail with *Error values (or any other
// error implementing apis.CodedError). Package callback turns those failures
// into a numeric code plus a nul-terminated description and hands them to a
// caller-supplied callback exactly once; package cabi binds that protocol to
// C function pointers.
//
// A typical entry point:
//
//	var siteLogin = site.MustParse("app.account.login")
//
//	func login(name string) (uint64, error) {
//	    if name == "" {
//	        return 0, fficb.E(code.Missing, "account name is empty")
//	    }
//	    ...
//	}
//
//	callback.Catch(d, siteLogin, userData, cabi.NewHandleCallback(cb), func() (uint64, error) {
//	    return login(name)
//	})
package fficb
