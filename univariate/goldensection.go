package univariate

import (
	"math"

	"golang.org/x/exp/constraints"
)

// resphi is the golden ratio complement (3 - sqrt(5))/2. Interior probes
// placed a fraction resphi from either end of the bracket partition it so
// that one probe survives each shrink, costing a single new objective
// evaluation per iteration.
const resphi = 2 - math.Phi

// GoldenSection estimates the minimizer of a unimodal objective by
// golden-section search. The zero value is ready for use with Solve.
// Unimodality is assumed throughout and never checked.
type GoldenSection[F constraints.Float] struct {
	f Func[F]

	// Bracket endpoints. Orientation flips when the bracket shrinks away
	// from b, so a and b are not kept ordered.
	a F
	b F

	alpha  F // surviving interior probe
	falpha F

	maxIter int
}

func (s *GoldenSection[F]) Init(f Func[F], iv Interval[F], tol F) (int, error) {
	r := F(resphi)
	s.f = f
	s.a = iv.Min
	s.b = iv.Max
	s.alpha = (1-r)*s.a + r*s.b
	s.falpha = f(s.alpha)
	s.maxIter = iterCount((math.Log(float64(tol)) - math.Log(float64(iv.Width()))) / math.Log(1-resphi))
	return 1, nil
}

// MaxIter is the analytic iteration count: the bracket width shrinks by the
// factor 1-resphi each iteration, so this many iterations bring it to the
// tolerance or below.
func (s *GoldenSection[F]) MaxIter() int {
	return s.maxIter
}

func (s *GoldenSection[F]) Iterate() (loc, obj F, nFunEvals int, err error) {
	r := F(resphi)
	beta := (1-r)*s.b + r*s.a
	fbeta := s.f(beta)
	if s.falpha < fbeta {
		// Minimum lies between beta and the old a; alpha stays interior
		// and its value is reused.
		s.b = s.a
		s.a = beta
	} else {
		// Minimum lies toward beta; it becomes the surviving probe.
		s.a = s.alpha
		s.alpha = beta
		s.falpha = fbeta
	}
	return beta, fbeta, 1, nil
}

// Best returns the surviving interior probe, the current minimizer
// estimate.
func (s *GoldenSection[F]) Best() F {
	return s.alpha
}
