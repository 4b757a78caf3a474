package univariate

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Bisection finds a zero crossing of the objective by repeatedly halving a
// bracket whose endpoints evaluate to opposite signs. The zero value is
// ready for use with Solve.
type Bisection[F constraints.Float] struct {
	f Func[F]

	// Oriented so that f(a) < 0 < f(b); a and b need not be ordered.
	a F
	b F

	maxIter int
}

func (s *Bisection[F]) Init(f Func[F], iv Interval[F], tol F) (int, error) {
	a, b := iv.Min, iv.Max
	sa := sign(f(a))
	sb := sign(f(b))
	if sa*sb >= 0 {
		return 2, ErrBracket
	}
	if sa > 0 {
		a, b = b, a
	}

	s.f = f
	s.a = a
	s.b = b
	s.maxIter = iterCount(math.Log2(float64(iv.Width())) - math.Log2(float64(tol)))
	return 2, nil
}

// MaxIter is the analytic iteration count: halving the bracket this many
// times brings its width to the tolerance or below.
func (s *Bisection[F]) MaxIter() int {
	return s.maxIter
}

func (s *Bisection[F]) Iterate() (loc, obj F, nFunEvals int, err error) {
	c := s.a/2 + s.b/2
	fc := s.f(c)
	if fc < 0 {
		s.a = c
	} else {
		s.b = c
	}
	return c, fc, 1, nil
}

// Best returns the midpoint of the current bracket.
func (s *Bisection[F]) Best() F {
	return s.a/2 + s.b/2
}

// iterCount rounds the analytic iteration count up to an int. Degenerate
// brackets and oversized tolerances produce non-positive or NaN counts;
// those clamp to zero so the search returns its initial estimate
// immediately instead of looping.
func iterCount(n float64) int {
	n = math.Ceil(n)
	if !(n > 0) {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
