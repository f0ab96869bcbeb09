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
	"cmp"
	"fmt"
	"strconv"

	"github.com/consensys/go-primefield/pkg/util/math"
)

// Element of the prime field GF(p), where p is the element's modulus.  The
// residue is always kept in canonical form, meaning it lies in [0, p).
// Elements are immutable values: every operation returns a fresh element.
// Two elements are equal (under ==) iff they have the same modulus and the
// same residue.  The zero value Element{} belongs to no field and must not be
// used.
type Element struct {
	modulus uint64
	residue uint64
}

// New constructs the element of GF(modulus) congruent to value.  Negative
// values are normalised using the Euclidean remainder, hence New(-2, 3) equals
// New(1, 3).  This panics if modulus is less than 2, since no meaningful field
// exists in that case.
func New(value int64, modulus uint64) Element {
	checkModulus(modulus)
	//
	return Element{modulus, math.RemEuclid64(value, modulus)}
}

// NewUint64 constructs the element of GF(modulus) congruent to an unsigned
// value.  As for New, this panics if modulus is less than 2.
func NewUint64(value uint64, modulus uint64) Element {
	checkModulus(modulus)
	//
	return Element{modulus, value % modulus}
}

func checkModulus(modulus uint64) {
	if modulus < 2 {
		panic(fmt.Sprintf("invalid field modulus %d", modulus))
	}
}

// Modulus returns the modulus of the field this element belongs to.
func (x Element) Modulus() uint64 {
	return x.modulus
}

// Uint64 returns the canonical residue of this element, which lies in
// [0, modulus).
func (x Element) Uint64() uint64 {
	return x.residue
}

// IsZero checks whether this is the additive identity.
func (x Element) IsZero() bool {
	return x.residue == 0
}

// IsOne checks whether this is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.residue == 1
}

// Equal returns true if x and y have the same modulus and residue.
func (x Element) Equal(y Element) bool {
	return x == y
}

// SameField checks whether x and y belong to the same field.
func (x Element) SameField(y Element) bool {
	return x.modulus == y.modulus
}

// Add returns x + y, or an error if x and y belong to different fields.
func (x Element) Add(y Element) (Element, error) {
	if err := x.check("add", y); err != nil {
		return Element{}, err
	}
	//
	return Element{x.modulus, math.AddMod(x.residue, y.residue, x.modulus)}, nil
}

// Sub returns x - y, or an error if x and y belong to different fields.
func (x Element) Sub(y Element) (Element, error) {
	if err := x.check("sub", y); err != nil {
		return Element{}, err
	}
	//
	return Element{x.modulus, math.SubMod(x.residue, y.residue, x.modulus)}, nil
}

// Mul returns x * y, or an error if x and y belong to different fields.
func (x Element) Mul(y Element) (Element, error) {
	if err := x.check("mul", y); err != nil {
		return Element{}, err
	}
	//
	return Element{x.modulus, math.MulMod(x.residue, y.residue, x.modulus)}, nil
}

// Div returns x / y, computed as x * y^(p-2).  An error is returned if x and y
// belong to different fields, or if y is zero.  The result is only meaningful
// when the modulus is prime.
func (x Element) Div(y Element) (Element, error) {
	if err := x.check("div", y); err != nil {
		return Element{}, err
	}
	//
	inv, err := y.Inverse()
	if err != nil {
		return Element{}, err
	}
	//
	return Element{x.modulus, math.MulMod(x.residue, inv.residue, x.modulus)}, nil
}

// Neg returns the additive inverse -x.
func (x Element) Neg() Element {
	return Element{x.modulus, math.NegMod(x.residue, x.modulus)}
}

// Double returns x + x.
func (x Element) Double() Element {
	return Element{x.modulus, math.AddMod(x.residue, x.residue, x.modulus)}
}

// Square returns x * x.
func (x Element) Square() Element {
	return Element{x.modulus, math.MulMod(x.residue, x.residue, x.modulus)}
}

// Inverse returns the multiplicative inverse x^-1 = x^(p-2), or
// ErrDivisionByZero if x is zero.  The result is only meaningful when the
// modulus is prime.
func (x Element) Inverse() (Element, error) {
	if x.residue == 0 {
		return Element{}, fmt.Errorf("inverse of zero in GF(%d): %w", x.modulus, ErrDivisionByZero)
	}
	//
	return Element{x.modulus, math.InverseMod(x.residue, x.modulus)}, nil
}

// Pow returns x^n.  Observe that x^0 is one for every x, including zero.
func (x Element) Pow(n uint64) Element {
	return Element{x.modulus, math.PowMod(x.residue, n, x.modulus)}
}

// Exp returns x^n for a signed exponent.  Negative exponents are computed as
// (x^-1)^|n| and, hence, fail with ErrDivisionByZero when x is zero.
func (x Element) Exp(n int64) (Element, error) {
	if n >= 0 {
		return x.Pow(uint64(n)), nil
	}
	//
	inv, err := x.Inverse()
	if err != nil {
		return Element{}, err
	}
	// -(n+1)+1 avoids overflow for math.MinInt64
	return inv.Pow(uint64(-(n + 1)) + 1), nil
}

// Cmp compares the residues of x and y, returning -1, 0 or 1.  An error is
// returned if x and y belong to different fields.
func (x Element) Cmp(y Element) (int, error) {
	if err := x.check("cmp", y); err != nil {
		return 0, err
	}
	//
	return cmp.Compare(x.residue, y.residue), nil
}

// Text returns the residue of x in the given base.
func (x Element) Text(base int) string {
	return strconv.FormatUint(x.residue, base)
}

func (x Element) String() string {
	return fmt.Sprintf("%d (mod %d)", x.residue, x.modulus)
}

// check that x and y belong to the same field.
func (x Element) check(op string, y Element) error {
	if !x.SameField(y) {
		return &MismatchError{op, x.modulus, y.modulus}
	}
	//
	return nil
}
