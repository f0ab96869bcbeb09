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
	"crypto/sha256"
	"fmt"
	"io"
	"iter"
	"math/big"

	"github.com/holiman/uint256"
)

// Field identifies a prime field GF(p) and acts as a factory for its
// elements.  A Field constructed via NewField is guaranteed to have a prime
// modulus, hence all elements it produces support division.
type Field struct {
	modulus uint64
}

// NewField constructs the field of the given order, checking that the order is
// prime.  For moduli below 2^64, big.Int.ProbablyPrime(0) is exact.
func NewField(modulus uint64) (Field, error) {
	if modulus < 2 {
		return Field{}, fmt.Errorf("%w (got %d)", ErrDegenerateModulus, modulus)
	} else if !new(big.Int).SetUint64(modulus).ProbablyPrime(0) {
		return Field{}, fmt.Errorf("%d: %w", modulus, ErrNotPrime)
	}
	//
	return Field{modulus}, nil
}

// Modulus returns the order of this field.
func (f Field) Modulus() uint64 {
	return f.modulus
}

// Element returns the element of this field congruent to value.
func (f Field) Element(value int64) Element {
	return New(value, f.modulus)
}

// Uint64 returns the element of this field congruent to an unsigned value.
func (f Field) Uint64(value uint64) Element {
	return NewUint64(value, f.modulus)
}

// Zero returns the additive identity of this field.
func (f Field) Zero() Element {
	return NewUint64(0, f.modulus)
}

// One returns the multiplicative identity of this field.
func (f Field) One() Element {
	return NewUint64(1, f.modulus)
}

// Contains checks whether x is an element of this field.
func (f Field) Contains(x Element) bool {
	return x.modulus == f.modulus
}

// All iterates the elements of this field in increasing order of residue.  For
// large fields the caller is expected to stop early.
func (f Field) All() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for i := uint64(0); i < f.modulus; i++ {
			if !yield(Element{f.modulus, i}) {
				return
			}
		}
	}
}

// Hash maps the given data onto an element of this field.  The data is hashed
// using SHA-256 and the digest, read as a 256-bit big-endian integer, is
// reduced modulo the field order.
func (f Field) Hash(data ...[]byte) Element {
	var (
		h = sha256.New()
		v uint256.Int
	)
	//
	for _, d := range data {
		h.Write(d)
	}
	//
	v.SetBytes(h.Sum(nil))
	//
	return f.reduce(&v)
}

// Random samples an element of this field using randomness read from r.  Since
// 256 random bits are reduced modulo a 64-bit order, the bias is negligible.
func (f Field) Random(r io.Reader) (Element, error) {
	var (
		buf [32]byte
		v   uint256.Int
	)
	//
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Element{}, err
	}
	//
	v.SetBytes(buf[:])
	//
	return f.reduce(&v), nil
}

func (f Field) reduce(v *uint256.Int) Element {
	var m, r uint256.Int
	//
	m.SetUint64(f.modulus)
	r.Mod(v, &m)
	//
	return NewUint64(r.Uint64(), f.modulus)
}

func (f Field) String() string {
	return fmt.Sprintf("GF(%d)", f.modulus)
}
