package univariate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type quadratic struct {
	b float64
	c float64
}

func (q quadratic) Func() Func[float64] {
	return func(x float64) float64 {
		return (x-q.b)*(x-q.b) + q.c
	}
}

func (q quadratic) OptVal() float64 {
	return q.c
}

func (q quadratic) OptLoc() float64 {
	return q.b
}

func TestEps(t *testing.T) {
	if eps := Eps[float64](); eps != math.Nextafter(1, 2)-1 {
		t.Errorf("float64 epsilon doesn't match. Expected: %v, Found %v", math.Nextafter(1, 2)-1, eps)
	}
	if eps := Eps[float32](); eps != math.Nextafter32(1, 2)-1 {
		t.Errorf("float32 epsilon doesn't match. Expected: %v, Found %v", math.Nextafter32(1, 2)-1, eps)
	}
}

func TestNewInterval(t *testing.T) {
	iv := NewInterval(4.0, 2.0)
	require.Equal(t, 2.0, iv.Min)
	require.Equal(t, 4.0, iv.Max)
	require.Equal(t, NewInterval(2.0, 4.0), iv)

	require.Equal(t, 2.0, iv.Width())
	require.Equal(t, 3.0, iv.Mid())
}

func TestIntervalMidExtreme(t *testing.T) {
	// The naive (a+b)/2 overflows here.
	iv := NewInterval(math.MaxFloat64, math.MaxFloat64/2)
	mid := iv.Mid()
	if math.IsInf(mid, 0) || math.IsNaN(mid) {
		t.Errorf("midpoint of an extreme interval overflowed: %v", mid)
	}
	require.Equal(t, 0.0, NewInterval(-math.MaxFloat64, math.MaxFloat64).Mid())
}

func TestSign(t *testing.T) {
	require.Equal(t, -1, sign(-0.5))
	require.Equal(t, 1, sign(3.0))
	require.Equal(t, 0, sign(0.0))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings[float64]()
	require.Equal(t, Eps[float64](), s.Tolerance)
	require.Nil(t, s.Writers)
}

func TestSolveNilSolverPanics(t *testing.T) {
	q := quadratic{b: 2}
	require.Panics(t, func() {
		Solve[float64](q.Func(), NewInterval(-4.0, 4.0), nil, nil)
	})
}

func TestSolveBadTolerance(t *testing.T) {
	for _, tol := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := BisectTol(math.Sin, 2.0, 4.0, tol)
		require.ErrorIs(t, err, ErrTolerance, "tolerance %v", tol)

		q := quadratic{b: 2}
		_, err = MinimizeTol(q.Func(), -4.0, 4.0, tol)
		require.ErrorIs(t, err, ErrTolerance, "tolerance %v", tol)
	}
}
