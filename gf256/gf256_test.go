package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowMul is the shift-and-add multiplication the tables must agree with.
func slowMul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= byte(Polynomial & 0xff)
		}
		b >>= 1
	}
	return p
}

func TestKnownProducts(t *testing.T) {
	// Values from FIPS-197 section 4.2.
	assert.Equal(t, byte(0xc1), Mul(0x57, 0x83))
	assert.Equal(t, byte(0xfe), Mul(0x57, 0x13))
	assert.Equal(t, byte(0xca), Inv(0x53))
}

func TestMulMatchesReference(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			want := slowMul(byte(a), byte(b))
			got := Mul(byte(a), byte(b))
			if want != got {
				t.Fatalf("Mul(%#x, %#x) = %#x, want %#x", a, b, got, want)
			}
		}
	}
}

func TestFieldAxioms(t *testing.T) {
	t.Run("identities", func(t *testing.T) {
		for a := 0; a < 256; a++ {
			x := byte(a)
			require.Equal(t, x, Mul(x, 1))
			require.Equal(t, byte(0), Mul(x, 0))
			require.Equal(t, x, Add(x, 0))
			require.Equal(t, byte(0), Sub(x, x))
		}
	})

	t.Run("inverse", func(t *testing.T) {
		for a := 1; a < 256; a++ {
			x := byte(a)
			require.Equal(t, byte(1), Mul(x, Inv(x)), "a=%#x", a)
			require.Equal(t, x, Div(1, Inv(x)), "a=%#x", a)
		}
	})

	t.Run("commutative and distributive", func(t *testing.T) {
		for _, c := range []byte{1, 2, 3, 0x1b, 0x80, 0xff} {
			for a := 0; a < 256; a++ {
				for b := 0; b < 256; b++ {
					x, y := byte(a), byte(b)
					require.Equal(t, Mul(x, y), Mul(y, x))
					require.Equal(t, Add(Mul(c, x), Mul(c, y)), Mul(c, Add(x, y)))
					require.Equal(t, Mul(Mul(x, y), c), Mul(x, Mul(y, c)))
				}
			}
		}
	})

	t.Run("division undoes multiplication", func(t *testing.T) {
		for a := 0; a < 256; a++ {
			for b := 1; b < 256; b++ {
				require.Equal(t, byte(a), Div(Mul(byte(a), byte(b)), byte(b)))
			}
		}
	})
}

func TestGeneratorIsPrimitive(t *testing.T) {
	seen := make(map[byte]bool, order)
	for i := 0; i < order; i++ {
		seen[pow(Generator, i)] = true
	}
	assert.Len(t, seen, order)
	assert.False(t, seen[0])
}

func TestPow(t *testing.T) {
	assert.Equal(t, byte(1), pow(0, 0))
	assert.Equal(t, byte(0), pow(0, 5))
	for a := 1; a < 256; a++ {
		x := byte(a)
		assert.Equal(t, Mul(x, Mul(x, x)), pow(x, 3))
		assert.Equal(t, byte(1), pow(x, order))
	}
}

func TestZeroPanics(t *testing.T) {
	assert.Panics(t, func() { Inv(0) })
	assert.Panics(t, func() { Div(7, 0) })
	assert.Panics(t, func() { pow(7, -1) })
}
