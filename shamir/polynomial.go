package shamir

import "github.com/izouxv/goShamir/gf256"

// polynomial holds coefficients in ascending order of degree;
// coefficients[0] is the intercept.
type polynomial struct {
	coefficients []byte
}

// evaluate returns the value of the polynomial at x using Horner's rule.
func (p *polynomial) evaluate(x byte) byte {
	degree := len(p.coefficients) - 1
	out := p.coefficients[degree]
	for i := degree - 1; i >= 0; i-- {
		out = gf256.Add(gf256.Mul(out, x), p.coefficients[i])
	}
	return out
}

func (p *polynomial) wipe() {
	clear(p.coefficients)
}

// lagrangeBasisAtZero returns l_i(0) = Π_{m≠i} x_m / (x_m - x_i) for every
// sample point. The xs must be distinct and non-zero.
func lagrangeBasisAtZero(xs []byte) []byte {
	basis := make([]byte, len(xs))
	for i, xi := range xs {
		num, den := byte(1), byte(1)
		for m, xm := range xs {
			if m == i {
				continue
			}
			num = gf256.Mul(num, xm)
			den = gf256.Mul(den, gf256.Sub(xm, xi))
		}
		basis[i] = gf256.Div(num, den)
	}
	return basis
}
