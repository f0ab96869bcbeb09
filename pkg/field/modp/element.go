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
package modp

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/consensys/go-primefield/pkg/field/prime"
	"github.com/consensys/go-primefield/pkg/util/math"
)

// Params identifies a prime field by its modulus.  Implementations are expected
// to be zero-sized types, and Modulus() must always return the same prime.
type Params interface {
	Modulus() uint64
}

// Element of the prime field identified by P, holding the canonical residue in
// [0, p).  This is defined as an array to prevent mistaken use of arithmetic
// operators, or naive assignments.  The zero value is the additive identity.
type Element[P Params] [1]uint64

func modulus[P Params]() uint64 {
	var p P
	//
	return p.Modulus()
}

// Check that the parameter type P describes a usable prime field.
func Check[P Params]() error {
	_, err := prime.NewField(modulus[P]())
	//
	return err
}

// New constructs the element congruent to a (possibly negative) value, using
// the Euclidean remainder.
func New[P Params](value int64) Element[P] {
	return Element[P]{math.RemEuclid64(value, modulus[P]())}
}

// Uint64 constructs the element congruent to an unsigned value.
func Uint64[P Params](value uint64) Element[P] {
	return Element[P]{value % modulus[P]()}
}

// Lift converts an element with a runtime modulus into the static field P,
// failing with prime.ErrFieldMismatch if the moduli disagree.
func Lift[P Params](e prime.Element) (Element[P], error) {
	if m := modulus[P](); e.Modulus() != m {
		return Element[P]{}, &prime.MismatchError{Op: "lift", Left: e.Modulus(), Right: m}
	}
	//
	return Element[P]{e.Uint64()}, nil
}

// Dynamic converts this element into one carrying its modulus at runtime.
func (x Element[P]) Dynamic() prime.Element {
	return prime.NewUint64(x[0], modulus[P]())
}

// Modulus returns the order of the field.
func (x Element[P]) Modulus() uint64 {
	return modulus[P]()
}

// SetUint64 returns the element congruent to val.  The receiver is ignored.
func (x Element[P]) SetUint64(val uint64) Element[P] {
	return Uint64[P](val)
}

// Uint64 returns the numerical value of x.
func (x Element[P]) Uint64() uint64 {
	return x[0]
}

// IsZero checks whether x is zero.
func (x Element[P]) IsZero() bool {
	return x[0] == 0
}

// IsOne checks whether x is one.
func (x Element[P]) IsOne() bool {
	return x[0] == 1
}

// Add x + y
func (x Element[P]) Add(y Element[P]) Element[P] {
	return Element[P]{math.AddMod(x[0], y[0], modulus[P]())}
}

// Sub x - y
func (x Element[P]) Sub(y Element[P]) Element[P] {
	return Element[P]{math.SubMod(x[0], y[0], modulus[P]())}
}

// Mul x * y
func (x Element[P]) Mul(y Element[P]) Element[P] {
	return Element[P]{math.MulMod(x[0], y[0], modulus[P]())}
}

// Neg -x
func (x Element[P]) Neg() Element[P] {
	return Element[P]{math.NegMod(x[0], modulus[P]())}
}

// Double 2x
func (x Element[P]) Double() Element[P] {
	return x.Add(x)
}

// Half x/2.  This panics for an even modulus, where two has no inverse.
func (x Element[P]) Half() Element[P] {
	var p = modulus[P]()
	//
	if p&1 == 0 {
		panic(fmt.Sprintf("half undefined in GF(%d)", p))
	} else if x[0]&1 == 0 {
		return Element[P]{x[0] >> 1}
	}
	// (x + p) / 2 without overflowing, given p is odd.
	return Element[P]{x[0]>>1 + p>>1 + 1}
}

// Pow x^n, where x^0 is one.
func (x Element[P]) Pow(n uint64) Element[P] {
	return Element[P]{math.PowMod(x[0], n, modulus[P]())}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element[P]) Inverse() Element[P] {
	if x[0] == 0 {
		return x
	}
	//
	return Element[P]{math.InverseMod(x[0], modulus[P]())}
}

// Div x / y, failing with prime.ErrDivisionByZero when y is zero.
func (x Element[P]) Div(y Element[P]) (Element[P], error) {
	if y[0] == 0 {
		return Element[P]{}, fmt.Errorf("division in GF(%d): %w", modulus[P](), prime.ErrDivisionByZero)
	}
	//
	return x.Mul(y.Inverse()), nil
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element[P]) Cmp(y Element[P]) int {
	return cmp.Compare(x[0], y[0])
}

// Text returns the numerical value of x in the given base.
func (x Element[P]) Text(base int) string {
	return strconv.FormatUint(x[0], base)
}

func (x Element[P]) String() string {
	return x.Text(10)
}
