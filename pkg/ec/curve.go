// Package ec implements the group law of elliptic curves
// y^2 = x^3 + a*x + b over a prime field F_p, together with brute-force
// analysis of the resulting group (order, cyclic subgroups, decomposition).
//
// All arithmetic is on int64 with naive algorithms; it is meant for the
// small primes used in teaching and verification.
package ec

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/smallyu/go-ecgroup/pkg/numtheory"
)

// Curve is the curve y^2 = x^3 + a*x + b (mod p). It is immutable after
// construction and safe for concurrent use.
type Curve struct {
	a, b, p int64

	logger  *zap.Logger
	workers int
}

// NewCurve validates p and (a, b) and returns the curve with the
// coefficients reduced into [0, p).
//
// The primality test of p fails first: a non-positive p yields
// numtheory.ErrNotPositive and a composite one numtheory.ErrNotAPrime.
// (a, b) = (0, 0) yields ErrNotNonSingular.
func NewCurve(a, b, p int64, opts ...Option) (*Curve, error) {
	prime, err := numtheory.IsPrime(p)
	if err != nil {
		return nil, err
	}
	if !prime {
		return nil, numtheory.ErrNotAPrime
	}
	if a == 0 && b == 0 {
		return nil, ErrNotNonSingular
	}

	c := &Curve{
		a:       numtheory.Mod(a, p),
		b:       numtheory.Mod(b, p),
		p:       p,
		logger:  zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// A returns the reduced coefficient of x.
func (c *Curve) A() int64 { return c.a }

// B returns the reduced constant coefficient.
func (c *Curve) B() int64 { return c.b }

// P returns the prime modulus.
func (c *Curve) P() int64 { return c.p }

func (c *Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %d * x + %d (mod %d)", c.a, c.b, c.p)
}

// IsSingular reports whether the discriminant 4a^3 + 27b^2 vanishes mod p.
// Construction only rejects a = b = 0, so singular curves can exist; their
// chord and tangent law is not a group law.
func (c *Curve) IsSingular() bool {
	a3, _ := numtheory.ModPow(c.a, 3, c.p)
	b2, _ := numtheory.ModPow(c.b, 2, c.p)
	return c.mod(4*a3+27*b2) == 0
}

func (c *Curve) mod(v int64) int64 {
	return numtheory.Mod(v, c.p)
}

// inverse of v modulo p by Fermat's little theorem; p is prime.
func (c *Curve) inverse(v int64) (int64, error) {
	return numtheory.ModPow(v, c.p-2, c.p)
}

// LHS evaluates y^2 mod p.
func (c *Curve) LHS(y int64) (int64, error) {
	return numtheory.ModPow(y, 2, c.p)
}

// RHS evaluates x^3 + a*x + b mod p.
func (c *Curve) RHS(x int64) (int64, error) {
	x = c.mod(x)
	cube, err := numtheory.ModPow(x, 3, c.p)
	if err != nil {
		return 0, err
	}
	return c.mod(cube + c.mod(c.a*x) + c.b), nil
}

// IsOn reports whether pt satisfies the curve equation. Infinity is always
// on the curve; affine coordinates may be any representative of their
// residue class.
func (c *Curve) IsOn(pt Point) bool {
	x, y, ok := pt.XY()
	if !ok {
		return true
	}
	lhs, err := c.LHS(y)
	if err != nil {
		return false
	}
	rhs, err := c.RHS(x)
	if err != nil {
		return false
	}
	return lhs == rhs
}

// Represent returns the canonical form of pt, with coordinates in [0, p).
func (c *Curve) Represent(pt Point) (Point, error) {
	if !c.IsOn(pt) {
		return Point{}, ErrNotOnCurve
	}
	x, y, ok := pt.XY()
	if !ok {
		return Inf(), nil
	}
	return Affine(c.mod(x), c.mod(y)), nil
}

// Inv returns the additive inverse of pt in canonical form.
func (c *Curve) Inv(pt Point) (Point, error) {
	if !c.IsOn(pt) {
		return Point{}, ErrNotOnCurve
	}
	x, y, ok := pt.XY()
	if !ok {
		return Inf(), nil
	}
	return c.Represent(Affine(x, -y))
}

// Sum adds p0 and p1 with the chord and tangent construction.
//
// The line through p0 and p1 (the tangent when they coincide) meets the
// curve in a third point R = (x2, y2) with
//
//	x2 = s^2 - x0 - x1
//	y2 = s*(x2 - x0) + y0
//
// where s is the slope of the line. R is -(p0 + p1), so the result is the
// negation of R. Equal x with y0 + y1 = 0 mod p is a vertical line and
// gives infinity.
func (c *Curve) Sum(p0, p1 Point) (Point, error) {
	if !c.IsOn(p0) || !c.IsOn(p1) {
		return Point{}, ErrNotOnCurve
	}
	if p0.IsInf() {
		return c.Represent(p1)
	}
	if p1.IsInf() {
		return c.Represent(p0)
	}

	x0, y0, _ := p0.XY()
	x1, y1, _ := p1.XY()
	x0, y0, x1, y1 = c.mod(x0), c.mod(y0), c.mod(x1), c.mod(y1)

	var slope int64
	switch {
	case x0 != x1:
		inv, err := c.inverse(c.mod(x1 - x0))
		if err != nil {
			return Point{}, err
		}
		slope = c.mod(c.mod(y1-y0) * inv)
	case c.mod(y0+y1) == 0:
		return Inf(), nil
	default:
		sq, err := numtheory.ModPow(x0, 2, c.p)
		if err != nil {
			return Point{}, err
		}
		inv, err := c.inverse(c.mod(2 * y0))
		if err != nil {
			return Point{}, err
		}
		slope = c.mod(c.mod(3*sq+c.a) * inv)
	}

	s2, err := numtheory.ModPow(slope, 2, c.p)
	if err != nil {
		return Point{}, err
	}
	// x1 == x0 on the tangent, so this covers both s^2 - x0 - x1 and s^2 - 2*x0
	x2 := c.mod(s2 - x0 - x1)
	y2 := c.mod(slope*c.mod(x2-x0) + y0)
	return c.Inv(Affine(x2, y2))
}
