// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package modp provides elements of prime fields whose modulus is fixed at
// compile time by a type parameter.
//
// A field is identified by a zero-sized parameter type implementing Params.
// For example:
//
//	type P17 struct{}
//	func (P17) Modulus() uint64 { return 17 }
//
//	x := modp.New[P17](12)
//	y := modp.New[P17](5)
//	z := x.Add(y) // 0 (mod 17)
//
// Since Element[P5] and Element[P17] are distinct types, combining elements of
// different fields is rejected by the compiler and none of the operations here
// needs to check for (or report) a field mismatch.  Parameter types for a number
// of well-known fields are generated into params.go.  Use Check to validate a
// parameter type defined elsewhere.
package modp
