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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-primefield/pkg/field/prime"
	"github.com/consensys/go-primefield/pkg/util/assert"
)

// Local parameter type, as a user of this package would define one.
type p4 struct{}

func (p4) Modulus() uint64 { return 4 }

func Test_Vectors(t *testing.T) {
	assert.Equal(t, New[P17](1), New[P17](18))
	assert.Equal(t, New[P3](1), New[P3](-2))
	assert.Equal(t, New[P3](0), New[P3](2).Add(New[P3](1)))
	assert.Equal(t, New[P5](4), New[P5](2).Sub(New[P5](3)))
	assert.Equal(t, New[P5](3), New[P5](74).Mul(New[P5](2)))
	assert.Equal(t, New[P13](1), New[P13](3).Pow(3))
	assert.Equal(t, New[P13](1), New[P13](3).Pow(0))
	//
	q, err := New[P19](2).Div(New[P19](7))
	assert.NoError(t, err)
	assert.Equal(t, New[P19](3), q)
}

func Test_Aliases(t *testing.T) {
	// Z2: 1 + 1 = 0 and 1 * 1 = 1
	var one Z2 = New[P2](1)
	//
	assert.True(t, one.Add(one).IsZero())
	assert.True(t, one.Mul(one).IsOne())
	// 12 + 5 = 0 in Z17
	var x, y Z17 = New[P17](12), New[P17](5)
	//
	assert.True(t, x.Add(y).IsZero())
}

func Test_DivisionByZero(t *testing.T) {
	_, err := New[P19](2).Div(Z19{})
	assert.ErrorIs(t, err, prime.ErrDivisionByZero)
	// Inverse follows the zero-to-zero convention instead.
	assert.True(t, Z19{}.Inverse().IsZero())
}

func Test_Canonical(t *testing.T) {
	for range 10000 {
		v := rand.Int64() - rand.Int64()
		assert.True(t, New[Goldilocks](v).Uint64() < Goldilocks{}.Modulus())
		assert.True(t, New[GF251](v).Uint64() < 251)
	}
	//
	assert.Equal(t, uint64(1), New[P3](math.MinInt64).Uint64())
	assert.Equal(t, uint64(0), Uint64[P5](25).Uint64())
}

func Test_Properties(t *testing.T) {
	checkProperties[P2](t)
	checkProperties[P3](t)
	checkProperties[P5](t)
	checkProperties[P7](t)
	checkProperties[P13](t)
	checkProperties[GF251](t)
}

func Test_Half(t *testing.T) {
	checkHalf[P3](t)
	checkHalf[GF8209](t)
	checkHalf[Mersenne31](t)
	checkHalf[Goldilocks](t)
	// Two is not invertible in Z2
	assert.Panics(t, func() { New[P2](1).Half() })
	assert.Panics(t, func() { New[P2](0).Half() })
}

func Test_Neg(t *testing.T) {
	for range 1000 {
		x := Uint64[Goldilocks](rand.Uint64())
		assert.True(t, x.Add(x.Neg()).IsZero())
		assert.Equal(t, x.Add(x), x.Double())
	}
}

func Test_Lift(t *testing.T) {
	x, err := Lift[P19](prime.New(-1, 19))
	assert.NoError(t, err)
	assert.Equal(t, New[P19](18), x)
	assert.Equal(t, prime.New(18, 19), x.Dynamic())
	//
	_, err = Lift[P17](prime.New(3, 19))
	assert.ErrorIs(t, err, prime.ErrFieldMismatch)
}

func Test_Dynamic(t *testing.T) {
	// Static and dynamic arithmetic agree.
	for range 1000 {
		var (
			x = Uint64[Goldilocks](rand.Uint64())
			y = Uint64[Goldilocks](rand.Uint64())
		)
		//
		z, err := x.Dynamic().Mul(y.Dynamic())
		assert.NoError(t, err)
		assert.Equal(t, x.Mul(y).Dynamic(), z)
	}
}

func Test_Check(t *testing.T) {
	assert.NoError(t, Check[P2]())
	assert.NoError(t, Check[P3]())
	assert.NoError(t, Check[P5]())
	assert.NoError(t, Check[P7]())
	assert.NoError(t, Check[P13]())
	assert.NoError(t, Check[P17]())
	assert.NoError(t, Check[P19]())
	assert.NoError(t, Check[GF251]())
	assert.NoError(t, Check[GF8209]())
	assert.NoError(t, Check[Mersenne31]())
	assert.NoError(t, Check[BabyBear]())
	assert.NoError(t, Check[KoalaBear]())
	assert.NoError(t, Check[Goldilocks]())
	assert.ErrorIs(t, Check[p4](), prime.ErrNotPrime)
}

func Test_Text(t *testing.T) {
	assert.Equal(t, "250", New[GF251](-1).String())
	assert.Equal(t, "fa", New[GF251](-1).Text(16))
	assert.Equal(t, 1, New[GF251](3).Cmp(New[GF251](2)))
}

func checkProperties[P Params](t *testing.T) {
	var (
		p    = modulus[P]()
		zero = Element[P]{}
		one  = Uint64[P](1)
	)
	//
	for i := range p {
		x := Uint64[P](i)
		// identities
		assert.Equal(t, x, zero.Add(x))
		assert.Equal(t, zero, x.Add(zero.Sub(x)))
		assert.True(t, x.Pow(0).IsOne())
		// inverse
		if !x.IsZero() {
			inv, err := one.Div(x)
			assert.NoError(t, err)
			assert.Equal(t, one, x.Mul(inv))
			assert.Equal(t, inv, x.Inverse())
		}
		// closure
		for j := range p {
			y := Uint64[P](j)
			assert.True(t, x.Add(y).Uint64() < p)
			assert.True(t, x.Sub(y).Uint64() < p)
			assert.True(t, x.Mul(y).Uint64() < p)
		}
	}
}

func checkHalf[P Params](t *testing.T) {
	for range 1000 {
		x := Uint64[P](rand.Uint64())
		assert.Equal(t, x, x.Half().Double(), "half of %s", x)
	}
}
