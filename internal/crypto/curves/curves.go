// Package curves holds the coefficient shapes of standard short Weierstrass
// curves. A shape reduced modulo a small prime gives a toy curve with the
// same equation, which is how the survey command studies them.
package curves

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"sort"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecgroup/pkg/ec"
)

// Shape is the pair of coefficients (a, b) of y^2 = x^3 + a*x + b.
type Shape struct {
	Name string
	A    *big.Int
	B    *big.Int
}

// Curve reduces the shape's coefficients modulo p and builds the curve.
func (s Shape) Curve(p int64, opts ...ec.Option) (*ec.Curve, error) {
	if p <= 0 {
		return ec.NewCurve(0, 0, p, opts...)
	}
	m := big.NewInt(p)
	a := new(big.Int).Mod(s.A, m)
	b := new(big.Int).Mod(s.B, m)
	return ec.NewCurve(a.Int64(), b.Int64(), p, opts...)
}

// Secp256k1 returns y^2 = x^3 + 7. Koblitz curves have a = 0, which
// elliptic.CurveParams does not carry.
func Secp256k1() Shape {
	return Shape{
		Name: "secp256k1",
		A:    big.NewInt(0),
		B:    new(big.Int).Set(secp256k1.S256().Params().B),
	}
}

// P256 returns the NIST P-256 coefficients (a = -3).
func P256() Shape {
	return nist("p256", elliptic.P256())
}

// P384 returns the NIST P-384 coefficients (a = -3).
func P384() Shape {
	return nist("p384", elliptic.P384())
}

func nist(name string, c elliptic.Curve) Shape {
	return Shape{
		Name: name,
		A:    big.NewInt(-3),
		B:    new(big.Int).Set(c.Params().B),
	}
}

var registry = map[string]func() Shape{
	"secp256k1": Secp256k1,
	"p256":      P256,
	"p384":      P384,
}

// Lookup returns the shape registered under name.
func Lookup(name string) (Shape, error) {
	f, ok := registry[name]
	if !ok {
		return Shape{}, fmt.Errorf("curves: unknown shape %q (known: %v)", name, Names())
	}
	return f(), nil
}

// Names lists the registered shapes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
