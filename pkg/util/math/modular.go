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
package math

import "math/bits"

// RemEuclid64 returns the Euclidean remainder of x modulo m, which always lies
// in [0, m) regardless of the sign of x.  For example, RemEuclid64(-2, 3) is 1
// whereas the truncating remainder -2 % 3 is -2.  This panics if m is zero.
func RemEuclid64(x int64, m uint64) uint64 {
	if x >= 0 {
		return uint64(x) % m
	}
	// -(x+1) cannot overflow, even for math.MinInt64.
	r := uint64(-(x + 1)) % m
	//
	return m - 1 - r
}

// AddMod computes (x + y) mod m for x, y < m.  The sum is formed in 65 bits so
// moduli up to 2^64-1 are supported.
func AddMod(x, y, m uint64) uint64 {
	sum, carry := bits.Add64(x, y, 0)
	// When the addition carried the true sum is sum + 2^64, which exceeds m;
	// subtracting m in wrapping arithmetic still yields the right residue.
	if carry != 0 || sum >= m {
		sum -= m
	}
	//
	return sum
}

// SubMod computes (x - y) mod m for x, y < m.
func SubMod(x, y, m uint64) uint64 {
	if x >= y {
		return x - y
	}
	// wraps back into [0, m)
	return x - y + m
}

// NegMod computes -x mod m for x < m.
func NegMod(x, m uint64) uint64 {
	if x == 0 {
		return 0
	}
	//
	return m - x
}

// MulMod computes (x * y) mod m for x, y < m using a 128-bit intermediate
// product.
func MulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	// x,y < m ensures hi < m, hence Rem64 cannot panic.
	return bits.Rem64(hi, lo, m)
}

// InverseMod computes x^-1 mod p by Fermat's little theorem, namely x^(p-2).
// The modulus must be prime and x non-zero; neither is checked here.
func InverseMod(x, p uint64) uint64 {
	return PowMod(x, p-2, p)
}
