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
package prime

import (
	"errors"
	"fmt"
)

// ErrFieldMismatch signals an attempt to combine elements from different
// fields, which is always a programming error.
var ErrFieldMismatch = errors.New("elements belong to different fields")

// ErrDivisionByZero signals an attempt to divide by (or invert) zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrDegenerateModulus signals a modulus of zero or one.
var ErrDegenerateModulus = errors.New("modulus must be at least 2")

// ErrNotPrime signals a modulus which is not prime.
var ErrNotPrime = errors.New("modulus is not prime")

// MismatchError provides details of a field mismatch, namely the operation
// attempted and the moduli of its operands.
type MismatchError struct {
	// Operation being attempted (e.g. "add").
	Op string
	// Modulus of the left-hand operand.
	Left uint64
	// Modulus of the right-hand operand.
	Right uint64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: cannot combine elements of GF(%d) and GF(%d)", e.Op, e.Left, e.Right)
}

// Unwrap allows errors.Is(err, ErrFieldMismatch) to succeed.
func (e *MismatchError) Unwrap() error {
	return ErrFieldMismatch
}
