// Package gf256 implements arithmetic in GF(2^8), the field of 256 elements
// reduced by the Rijndael polynomial x^8 + x^4 + x^3 + x + 1.
//
// Every byte is a field element. Addition and subtraction are XOR;
// multiplication and division go through log/exp tables built for the
// generator 3.
package gf256

import "crypto/subtle"

const (
	// Polynomial is the reduction polynomial (0x11b).
	Polynomial = 0x11b

	// Generator is the primitive element the tables are built from.
	Generator = 3

	// order of the multiplicative group
	order = 255
)

var (
	expTable [order]byte
	logTable [256]byte
)

func init() {
	var x uint16 = 1
	for i := 0; i < order; i++ {
		expTable[i] = byte(x)
		logTable[x] = byte(i)

		// x *= 3, i.e. x*2 + x with reduction on overflow.
		x2 := x << 1
		if x2&0x100 != 0 {
			x2 ^= Polynomial
		}
		x = x2 ^ x
	}
}

// Add returns a + b.
func Add(a, b byte) byte {
	return a ^ b
}

// Sub returns a - b, which in characteristic 2 is the same as Add.
func Sub(a, b byte) byte {
	return a ^ b
}

// Mul returns a * b.
func Mul(a, b byte) byte {
	sum := (int(logTable[a]) + int(logTable[b])) % order
	ret := expTable[sum]

	// log(0) is undefined, so a zero operand is patched in afterwards
	// without branching on the secret-dependent value.
	ret = byte(subtle.ConstantTimeSelect(subtle.ConstantTimeByteEq(a, 0), 0, int(ret)))
	ret = byte(subtle.ConstantTimeSelect(subtle.ConstantTimeByteEq(b, 0), 0, int(ret)))
	return ret
}

// Inv returns the multiplicative inverse of a. It panics if a is zero.
func Inv(a byte) byte {
	if a == 0 {
		panic("gf256: inverse of zero")
	}
	return expTable[(order-int(logTable[a]))%order]
}

// Div returns a / b. It panics if b is zero.
func Div(a, b byte) byte {
	if b == 0 {
		panic("gf256: division by zero")
	}
	diff := (int(logTable[a]) - int(logTable[b]) + order) % order
	ret := expTable[diff]
	return byte(subtle.ConstantTimeSelect(subtle.ConstantTimeByteEq(a, 0), 0, int(ret)))
}

// pow returns a raised to the n-th power. pow(a, 0) is 1 for every a.
func pow(a byte, n int) byte {
	if n < 0 {
		panic("gf256: negative exponent")
	}
	if n == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	return expTable[(int(logTable[a])*(n%order))%order]
}
