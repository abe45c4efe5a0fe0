package ec

import (
	"encoding/json"
	"fmt"
)

// Point is either the point at infinity or an affine pair (x, y).
// The zero value is the point at infinity.
//
// A Point carries no reference to a curve; whether it lies on one is
// checked by the curve operations.
type Point struct {
	x, y   int64
	affine bool
}

// Inf returns the point at infinity, the identity of the group law.
func Inf() Point {
	return Point{}
}

// Affine returns the affine point (x, y). Any integers are accepted.
func Affine(x, y int64) Point {
	return Point{x: x, y: y, affine: true}
}

// IsInf reports whether p is the point at infinity.
func (p Point) IsInf() bool {
	return !p.affine
}

// XY returns the coordinates of an affine point. ok is false for infinity.
func (p Point) XY() (x, y int64, ok bool) {
	return p.x, p.y, p.affine
}

func (p Point) String() string {
	if !p.affine {
		return "Inf"
	}
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}

type pointJSON struct {
	Inf bool   `json:"inf,omitempty"`
	X   *int64 `json:"x,omitempty"`
	Y   *int64 `json:"y,omitempty"`
}

// MarshalJSON encodes infinity as {"inf":true} and affine points as {"x":X,"y":Y}.
func (p Point) MarshalJSON() ([]byte, error) {
	if !p.affine {
		return json.Marshal(pointJSON{Inf: true})
	}
	x, y := p.x, p.y
	return json.Marshal(pointJSON{X: &x, Y: &y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var v pointJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v.Inf && v.X == nil && v.Y == nil:
		*p = Inf()
	case !v.Inf && v.X != nil && v.Y != nil:
		*p = Affine(*v.X, *v.Y)
	default:
		return fmt.Errorf("ec: invalid point encoding %s", data)
	}
	return nil
}
