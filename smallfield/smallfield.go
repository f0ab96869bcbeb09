package smallfield

import (
	"cmp"
	"fmt"
	"math/big"

	"github.com/consensys/go-primefield/pkg/field/prime"
)

// Element of a prime order field, represented in Montgomery form to speed up multiplications.
type Element [1]uint32 // defined as an array to prevent mistaken use of arithmetic operators, or naive assignments.

// A Field of odd prime order, less than 2³¹.
type Field struct {
	modulus           uint32
	negModulusInvModR uint32
	// R² mod modulus, for conversion into Montgomery form.
	rSquared uint32
}

// New Field of the given order, which must be an odd prime below 2³¹.
// Primality is not checked here.
func New(modulus uint32) Field {
	if modulus >= 1<<31 {
		panic("modulus too large") // need at least one bit of "slack"
	} else if modulus < 3 || modulus%2 == 0 {
		panic(fmt.Sprintf("modulus %d must be odd", modulus))
	}

	var r2 big.Int

	m := big.NewInt(int64(modulus))
	r2.Lsh(big.NewInt(1), 64).Mod(&r2, m)
	m.ModInverse(m, big.NewInt(1<<32))

	return Field{
		modulus:           modulus,
		negModulusInvModR: uint32(1<<32 - m.Uint64()),
		rSquared:          uint32(r2.Uint64()),
	}
}

// Modulus returns the order of the field.
func (f Field) Modulus() uint32 {
	return f.modulus
}

// rSq returns R² (mod modulus).  Multiplying by this converts a value into
// Montgomery form.
func (f Field) rSq() Element {
	return Element{f.rSquared}
}

// Add x0 + x1 + xRest[0] + xRest[1] + ...
func (f Field) Add(x0, x1 Element, xRest ...Element) Element {
	res := Element{x0[0] + x1[0]}
	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	for _, e := range xRest {
		res[0] += e[0]
		if res[0] >= f.modulus {
			res[0] -= f.modulus
		}
	}

	return res
}

// Sub x0 - x1 - xRest[0] - xRest[1] - ...
func (f Field) Sub(x0, x1 Element, xRest ...Element) Element {
	const negMask uint32 = 1 << 31

	res := Element{x0[0] - x1[0]}
	if res[0]&negMask != 0 {
		res[0] += f.modulus
	}

	for _, e := range xRest {
		res[0] -= e[0]
		if res[0]&negMask != 0 {
			res[0] += f.modulus
		}
	}

	return res
}

// Neg -x
func (f Field) Neg(x Element) Element {
	return f.Sub(Element{}, x)
}

// Half x/2
func (f Field) Half(x Element) Element {
	if x[0]&1 == 0 {
		return Element{x[0] >> 1}
	}
	// cannot overflow, as both x and modulus are below 2³¹
	return Element{(x[0] + f.modulus) >> 1}
}

// montgomeryReduce x -> x.R⁻¹ (mod m)
func (f Field) montgomeryReduce(x uint64) Element {
	// textbook Montgomery reduction
	const R = 1 << 32
	m := (x * uint64(f.negModulusInvModR)) % R // m = x * (-modulus⁻¹) (mod R)

	res := Element{uint32((x + m*uint64(f.modulus)) / R)}

	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	return res
}

// ToUint32 returns the numerical (non-Montgomery)
// value of x.
func (f Field) ToUint32(x Element) uint32 {
	return f.montgomeryReduce(uint64(x[0]))[0]
}

func (f Field) mul(a, b Element) Element {
	return f.montgomeryReduce(uint64(a[0]) * uint64(b[0]))
}

// Mul x0 * x1 * xRest[0] * xRest[1] * ...
func (f Field) Mul(x0, x1 Element, xRest ...Element) Element {
	res := f.mul(x0, x1)
	for _, e := range xRest {
		res = f.mul(res, e)
	}

	return res
}

// Exp x^n, where x^0 is one.
func (f Field) Exp(x Element, n uint64) Element {
	res := f.NewElement(1)

	for ; n != 0; n >>= 1 {
		if n&1 == 1 {
			res = f.mul(res, x)
		}

		x = f.mul(x, x)
	}

	return res
}

// Inverse x⁻¹ = x^(modulus-2), or 0 if x = 0.
func (f Field) Inverse(x Element) Element {
	return f.Exp(x, uint64(f.modulus-2))
}

// NewElement returns an element of the field f corresponding to the natural number x.
func (f Field) NewElement(x uint32) Element {
	return f.mul(Element{x % f.modulus}, f.rSq())
}

// Cmp compares the numerical values of x0 and x1.
func (f Field) Cmp(x0, x1 Element) int {
	return cmp.Compare(f.ToUint32(x0), f.ToUint32(x1))
}

// Dynamic converts x into an element whose modulus is carried at runtime.
func (f Field) Dynamic(x Element) prime.Element {
	return prime.NewUint64(uint64(f.ToUint32(x)), uint64(f.modulus))
}
