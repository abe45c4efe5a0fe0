package ec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecgroup/pkg/numtheory"
)

func mustCurve(t testing.TB, a, b, p int64) *Curve {
	t.Helper()
	c, err := NewCurve(a, b, p)
	require.NoError(t, err)
	return c
}

func TestNewCurve(t *testing.T) {
	c := mustCurve(t, -1, 0, 71)
	assert.Equal(t, int64(70), c.A())
	assert.Equal(t, int64(0), c.B())
	assert.Equal(t, int64(71), c.P())
	assert.Equal(t, "y^2 = x^3 + 70 * x + 0 (mod 71)", c.String())

	c = mustCurve(t, 1+5*7, -6, 7)
	assert.Equal(t, int64(1), c.A())
	assert.Equal(t, int64(1), c.B())

	_, err := NewCurve(1, 1, 0)
	assert.ErrorIs(t, err, numtheory.ErrNotPositive)
	_, err = NewCurve(1, 1, -7)
	assert.ErrorIs(t, err, numtheory.ErrNotPositive)
	_, err = NewCurve(1, 1, 9)
	assert.ErrorIs(t, err, numtheory.ErrNotAPrime)
	_, err = NewCurve(1, 1, 1)
	assert.ErrorIs(t, err, numtheory.ErrNotAPrime)
	_, err = NewCurve(0, 0, 7)
	assert.ErrorIs(t, err, ErrNotNonSingular)

	// primality is checked before singularity
	_, err = NewCurve(0, 0, 8)
	assert.ErrorIs(t, err, numtheory.ErrNotAPrime)
}

func TestIsSingular(t *testing.T) {
	assert.False(t, mustCurve(t, 1, 6, 11).IsSingular())
	assert.False(t, mustCurve(t, -1, 0, 71).IsSingular())
	// 4 + 27 = 31
	assert.True(t, mustCurve(t, 1, 1, 31).IsSingular())
	// node at (1, 0): x^3 - 3x + 2 = (x - 1)^2 (x + 2)
	assert.True(t, mustCurve(t, -3, 2, 97).IsSingular())
}

func TestLHSRHS(t *testing.T) {
	c := mustCurve(t, 9, 20, 7)

	lhs, err := c.LHS(2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), lhs)

	rhs, err := c.RHS(2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rhs)

	rhs, err = c.RHS(2 - 7*3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rhs)
}

func TestIsOn(t *testing.T) {
	c := mustCurve(t, 7, 5, 13)
	assert.True(t, c.IsOn(Inf()))
	assert.True(t, c.IsOn(Affine(5, 10)))
	assert.True(t, c.IsOn(Affine(9, 2)))
	assert.True(t, c.IsOn(Affine(8, 1)))
	assert.True(t, c.IsOn(Affine(8+13, 1+13)))
	assert.True(t, c.IsOn(Affine(8-13*4, 1-13*9)))
	assert.False(t, c.IsOn(Affine(9, 1)))

	c = mustCurve(t, 77, 42, 97)
	assert.True(t, c.IsOn(Inf()))
	assert.True(t, c.IsOn(Affine(22, 68)))
	assert.True(t, c.IsOn(Affine(64, 48)))
	assert.False(t, c.IsOn(Affine(35, 54)))
	assert.False(t, c.IsOn(Affine(35, 65)))
	assert.False(t, c.IsOn(Affine(10, 10)))
}

func TestRepresent(t *testing.T) {
	c := mustCurve(t, 7, 5, 13)
	want := Affine(3, 1)

	for _, pt := range []Point{
		Affine(3, 1),
		Affine(3+13, 1+13),
		Affine(3+13*2, 1+13*2),
		Affine(3+13*-72, 1+13*-25),
	} {
		got, err := c.Represent(pt)
		require.NoError(t, err)
		assert.Equal(t, want, got, "represent %s", pt)
	}

	got, err := c.Represent(Inf())
	require.NoError(t, err)
	assert.Equal(t, Inf(), got)

	_, err = c.Represent(Affine(9, 1))
	assert.ErrorIs(t, err, ErrNotOnCurve)
}

func TestInv(t *testing.T) {
	c := mustCurve(t, 11, 3, 67)

	tests := []struct {
		in, want Point
	}{
		{Inf(), Inf()},
		{Affine(22, 21), Affine(22, 46)},
		{Affine(55, 35), Affine(55, 32)},
		{Affine(2, 57), Affine(2, 10)},
		{Affine(-65, -10), Affine(2, 10)},
	}
	for _, tt := range tests {
		got, err := c.Inv(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "inv %s", tt.in)
	}

	_, err := c.Inv(Affine(1, 1))
	assert.ErrorIs(t, err, ErrNotOnCurve)
}

func TestSum(t *testing.T) {
	t.Run("chord", func(t *testing.T) {
		c := mustCurve(t, 23, 9, 47)
		got, err := c.Sum(Affine(13, 22), Affine(6, 38))
		require.NoError(t, err)
		assert.Equal(t, Affine(15, 43), got)

		got, err = c.Sum(Affine(6+47, 38-47), Affine(13-47*3, 22+47))
		require.NoError(t, err)
		assert.Equal(t, Affine(15, 43), got)
	})

	t.Run("textbook multiples", func(t *testing.T) {
		c := mustCurve(t, 1, 6, 11)
		alpha := Affine(2, 7)

		double, err := c.Sum(alpha, alpha)
		require.NoError(t, err)
		assert.Equal(t, Affine(5, 2), double)

		triple, err := c.Sum(alpha, double)
		require.NoError(t, err)
		assert.Equal(t, Affine(8, 3), triple)
	})

	t.Run("identity", func(t *testing.T) {
		c := mustCurve(t, 7, 5, 13)
		got, err := c.Sum(Inf(), Affine(8+13, 1+13))
		require.NoError(t, err)
		assert.Equal(t, Affine(8, 1), got)

		got, err = c.Sum(Affine(8+13, 1+13), Inf())
		require.NoError(t, err)
		assert.Equal(t, Affine(8, 1), got)

		got, err = c.Sum(Inf(), Inf())
		require.NoError(t, err)
		assert.Equal(t, Inf(), got)
	})

	t.Run("vertical line", func(t *testing.T) {
		c := mustCurve(t, 11, 3, 67)
		got, err := c.Sum(Affine(22, 21), Affine(22, 46))
		require.NoError(t, err)
		assert.Equal(t, Inf(), got)
	})

	t.Run("vertical tangent", func(t *testing.T) {
		// (0, 0) has order two on y^2 = x^3 - x
		c := mustCurve(t, -1, 0, 71)
		got, err := c.Sum(Affine(0, 0), Affine(0, 0))
		require.NoError(t, err)
		assert.Equal(t, Inf(), got)
	})

	t.Run("not on curve", func(t *testing.T) {
		c := mustCurve(t, 7, 5, 13)
		_, err := c.Sum(Affine(9, 1), Affine(5, 10))
		assert.ErrorIs(t, err, ErrNotOnCurve)
		_, err = c.Sum(Affine(5, 10), Affine(9, 1))
		assert.ErrorIs(t, err, ErrNotOnCurve)
		_, err = c.Sum(Inf(), Affine(9, 1))
		assert.ErrorIs(t, err, ErrNotOnCurve)
	})

	t.Run("wrong curve", func(t *testing.T) {
		c := mustCurve(t, 23, 9, 47)
		_, err := c.Sum(Affine(2, 7), Affine(2, 7))
		assert.ErrorIs(t, err, ErrNotOnCurve)
	})
}
