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
package field

import (
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-primefield/pkg/field/modp"
	"github.com/consensys/go-primefield/pkg/util/assert"
)

func init() {
	// make sure the interface is adhered to.
	_ = Element[modp.Z5](modp.Z5{})
	_ = Element[modp.Element[modp.Goldilocks]](modp.Element[modp.Goldilocks]{})
}

func TestBatchInvert(t *testing.T) {
	s := make([]modp.Element[modp.KoalaBear], 4000)
	sInv := make([]modp.Element[modp.KoalaBear], len(s))
	scratch := make([]modp.Element[modp.KoalaBear], len(s))

	for i := range s {
		s[i] = Uint64[modp.Element[modp.KoalaBear]](uint64(rand.Uint32()))
		if rand.IntN(10) == 0 {
			s[i] = Zero[modp.Element[modp.KoalaBear]]() // getting a zero with considerable probability
		}

		sInv[i] = s[i].Inverse()
	}

	for _, n := range []int{0, 1, 2, 3, 17, 100, len(s)} {
		copy(scratch[:n], s)
		BatchInvert(scratch[:n])

		for j := range n {
			assert.Equal(t, sInv[j], scratch[j], "on slice of length %d, at index %d", n, j)
		}
	}
}

func TestBatchInvertZero(t *testing.T) {
	s := []modp.Z17{modp.New[modp.P17](0), modp.New[modp.P17](3), modp.New[modp.P17](0)}
	BatchInvert(s)
	// 3 * 6 = 18 = 1 (mod 17)
	assert.Equal(t, []modp.Z17{modp.New[modp.P17](0), modp.New[modp.P17](6), modp.New[modp.P17](0)}, s)
}

func TestPow(t *testing.T) {
	for base := range uint64(300) {
		for n := range uint64(64) {
			PowCheck[modp.GF251](t, base, n)
			PowCheck[modp.Goldilocks](t, base*0x9e3779b97f4a7c15, n)
		}
	}
}

func TestTwoPowN(t *testing.T) {
	// 2^31 = 2^27 - 1 (mod 2^31 - 2^27 + 1)
	assert.Equal(t, uint64(1<<27-1), TwoPowN[modp.Element[modp.BabyBear]](31).Uint64())
	assert.Equal(t, uint64(1)<<40, TwoPowN[modp.Element[modp.Goldilocks]](40).Uint64())
}

func TestSumProduct(t *testing.T) {
	var (
		a = modp.New[modp.P19](7)
		b = modp.New[modp.P19](15)
		c = modp.New[modp.P19](-3)
	)
	// 7 + 15 + 16 = 38 = 0, 7 * 15 * 16 = 1680 = 8 (mod 19)
	assert.True(t, Sum(a, b, c).IsZero())
	assert.Equal(t, uint64(8), Product(a, b, c).Uint64())
	assert.True(t, Sum[modp.Z19]().IsZero())
	assert.True(t, Product[modp.Z19]().IsOne())
}

// PowCheck compares the generic Pow against the element's own modular
// exponentiation.
func PowCheck[P modp.Params](t *testing.T, base uint64, n uint64) {
	var (
		x        = modp.Uint64[P](base)
		actual   = Pow(x, n)
		expected = x.Pow(n)
	)
	//
	if actual != expected {
		t.Errorf("Pow(%d,%d)=%s (not %s)", base, n, actual.String(), expected.String())
	}
}
