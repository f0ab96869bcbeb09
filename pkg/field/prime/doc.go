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

// Package prime provides elements of a prime field GF(p) whose modulus p is
// only known at runtime, for any p that fits in a uint64.
//
// Every Element carries its own modulus.  Combining two elements whose moduli
// differ is therefore possible at the type level, and is reported at runtime
// through an error matching ErrFieldMismatch.  Where the modulus is known at
// compile time, package modp offers the same arithmetic with the modulus fixed
// by a type parameter, such that mixing fields fails to compile.
//
// All arithmetic is carried out with 128-bit intermediates, hence moduli right
// up to 2^64-1 are supported without overflow.  Division relies on Fermat's
// little theorem and, as such, is only meaningful when the modulus is prime.
// Use NewField to have this checked.
package prime
