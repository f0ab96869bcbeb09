package smallfield

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-primefield/pkg/field/prime"
	"github.com/consensys/go-primefield/pkg/util/assert"
)

func TestField_Mul(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, j, m big.Int

	m.SetUint64(uint64(f.modulus))

	for range 10000 {
		a := rand.Uint32N(f.modulus)
		b := rand.Uint32N(f.modulus)

		i.SetUint64(uint64(a)).
			Mul(&i, j.SetUint64(uint64(b))).
			Mod(&i, &m)

		x := f.NewElement(a)
		y := f.NewElement(b)

		x = f.Mul(x, y)

		assert.Equal(t, i.Uint64(), uint64(f.ToUint32(x)))
	}
}

func TestField_Montgomery(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, m big.Int

	m.SetUint64(uint64(f.modulus))

	for range 10000 {
		a := rand.Uint32N(f.modulus)

		i.SetUint64(uint64(a)).
			Lsh(&i, 32). // Montgomery form
			Mod(&i, &m)

		assert.Equal(t, i.Uint64(), uint64(f.NewElement(a)[0]), "encoding of %d", a)
		assert.Equal(t, a, f.ToUint32(f.NewElement(a)), "decoding of %d", a)
	}
}

func TestField_Inverse(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, m big.Int

	m.SetUint64(uint64(f.modulus))

	for range 10000 {
		a := rand.Uint32N(f.modulus-1) + 1

		i.SetUint64(uint64(a)).
			ModInverse(&i, &m).
			Lsh(&i, 32). // Montgomery form
			Mod(&i, &m)

		x := f.NewElement(a)
		x = f.Inverse(x)

		assert.Equal(t, i.Uint64(), uint64(x[0]), "inverse of %d", a)
	}
	// zero maps to zero
	assert.Equal(t, Element{}, f.Inverse(Element{}))
}

func TestField_Halve(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, j, m big.Int

	m.SetUint64(uint64(f.modulus))

	for range 100000 {
		a := rand.Uint32N(f.modulus)
		x := f.NewElement(a)
		x = f.Half(x)

		i.SetUint64(uint64(x[0])).Add(&i, &i).Mod(&i, &m) // (a/2) as computed, multiplied by 2
		j.SetUint64(uint64(a)).Lsh(&j, 32).Mod(&j, &m)    // Montgomery representation of a

		assert.Equal(t, j.Uint64(), i.Uint64(), "halving of %d", a)
	}
}

func TestField_rSq(t *testing.T) {
	for _, p := range []uint64{3, 5, 7, 11, 1<<31 - 1} {
		assert.Equal(t, (((1<<63)%p)*2)%p, uint64(New(uint32(p)).rSq()[0]), "modulus %d", p)
	}
}

func TestField_Sub(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, j, m big.Int

	m.SetUint64(uint64(f.modulus))

	for range 100000 {
		a := rand.Uint32N(f.modulus)
		b := rand.Uint32N(f.modulus)

		i.SetUint64(uint64(a)).
			Sub(&i, j.SetUint64(uint64(b))).
			Mod(&i, &m)

		x := f.NewElement(a)
		y := f.NewElement(b)

		assert.Equal(t, i.Uint64(), uint64(f.ToUint32(f.Sub(x, y))))
		assert.Equal(t, uint32(0), f.ToUint32(f.Add(f.Sub(x, y), y, f.Neg(x))))
	}
}

func TestField_Variadic(t *testing.T) {
	f := New(17)
	// 12 + 5 + 3 = 3, 2 * 3 * 4 = 7 (mod 17)
	assert.Equal(t, uint32(3), f.ToUint32(f.Add(f.NewElement(12), f.NewElement(5), f.NewElement(3))))
	assert.Equal(t, uint32(7), f.ToUint32(f.Mul(f.NewElement(2), f.NewElement(3), f.NewElement(4))))
	assert.Equal(t, uint32(13), f.ToUint32(f.Sub(f.NewElement(2), f.NewElement(3), f.NewElement(3))))
	assert.Equal(t, -1, f.Cmp(f.NewElement(2), f.NewElement(16)))
}

// Montgomery and plain arithmetic agree.
func TestField_Dynamic(t *testing.T) {
	for _, p := range []uint32{3, 5, 251, 8209, 2013265921, 2130706433} {
		f := New(p)

		for range 1000 {
			var (
				a = rand.Uint32N(p)
				b = rand.Uint32N(p)
				n = rand.Uint64()
				x = prime.NewUint64(uint64(a), uint64(p))
				y = prime.NewUint64(uint64(b), uint64(p))
			)

			z, err := x.Mul(y)
			assert.NoError(t, err)
			assert.Equal(t, z, f.Dynamic(f.Mul(f.NewElement(a), f.NewElement(b))))
			assert.Equal(t, x.Pow(n), f.Dynamic(f.Exp(f.NewElement(a), n)))

			if b != 0 {
				q, err := x.Div(y)
				assert.NoError(t, err)
				assert.Equal(t, q, f.Dynamic(f.Mul(f.NewElement(a), f.Inverse(f.NewElement(b)))))
			}
		}
	}
}

func TestField_New(t *testing.T) {
	assert.Panics(t, func() { New(1 << 31) })
	assert.Panics(t, func() { New(2) })
	assert.Panics(t, func() { New(1) })
	assert.Equal(t, uint32(17), New(17).Modulus())
}
