package ec

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-ecgroup/pkg/numtheory"
)

// Order returns the number of points on the curve, infinity included,
// computed as 1 + p + sum of (rhs(x) | p) over x in [0, p).
func (c *Curve) Order() (int64, error) {
	ord := 1 + c.p
	for x := int64(0); x < c.p; x++ {
		rhs, err := c.RHS(x)
		if err != nil {
			return 0, err
		}
		l, err := numtheory.Legendre(rhs, c.p)
		if err != nil {
			return 0, err
		}
		ord += l
	}
	return ord, nil
}

// CyclicGroup returns the multiples g, 2g, 3g, ... of g in canonical form,
// ending with the first occurrence of infinity. Its length is the order of g.
func (c *Curve) CyclicGroup(g Point) ([]Point, error) {
	if !c.IsOn(g) {
		return nil, ErrNotOnCurve
	}
	if g.IsInf() {
		return []Point{Inf()}, nil
	}

	first, err := c.Represent(g)
	if err != nil {
		return nil, err
	}
	cycle := []Point{first}
	for last := first; !last.IsInf(); {
		last, err = c.Sum(g, last)
		if err != nil {
			return nil, err
		}
		cycle = append(cycle, last)
	}
	return cycle, nil
}

// Solutions enumerates every point on the curve: infinity first, then the
// affine solutions ordered by x and then y.
func (c *Curve) Solutions() ([]Point, error) {
	points := []Point{Inf()}
	for x := int64(0); x < c.p; x++ {
		rhs, err := c.RHS(x)
		if err != nil {
			return nil, err
		}
		for y := int64(0); y < c.p; y++ {
			lhs, err := c.LHS(y)
			if err != nil {
				return nil, err
			}
			if lhs == rhs {
				points = append(points, Affine(x, y))
			}
		}
	}
	c.logger.Debug("enumerated curve points",
		zap.Stringer("curve", c),
		zap.Int("points", len(points)))
	return points, nil
}

// Decomposition splits the group order as cofactor * maxOrder, where
// maxOrder is the largest order of any point on the curve.
func (c *Curve) Decomposition() (cofactor, maxOrder int64, err error) {
	points, err := c.Solutions()
	if err != nil {
		return 0, 0, err
	}

	lengths := make([]int, len(points))
	var g errgroup.Group
	g.SetLimit(c.workers)
	for i, pt := range points {
		i, pt := i, pt
		g.Go(func() error {
			cycle, err := c.CyclicGroup(pt)
			if err != nil {
				return err
			}
			lengths[i] = len(cycle)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	for _, l := range lengths {
		maxOrder = max(maxOrder, int64(l))
	}
	ord, err := c.Order()
	if err != nil {
		return 0, 0, err
	}
	c.logger.Debug("decomposed group order",
		zap.Stringer("curve", c),
		zap.Int64("order", ord),
		zap.Int64("max_subgroup_order", maxOrder))
	return ord / maxOrder, maxOrder, nil
}
