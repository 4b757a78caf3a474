package univariate

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/btracey/bracket/common"
)

// Solver is a bracketing search whose iteration count is fixed at
// initialization. Solve calls Iterate exactly MaxIter times; there is no
// per-iteration convergence check and no early exit.
type Solver[F constraints.Float] interface {
	// Init validates the bracket, performs any initial objective
	// evaluations and fixes the iteration count. It returns the number of
	// objective evaluations spent.
	Init(f Func[F], iv Interval[F], tol F) (nFunEvals int, err error)
	// MaxIter reports the iteration count fixed by Init.
	MaxIter() int
	// Iterate shrinks the bracket once, returning the probe location, the
	// objective there, and the number of objective evaluations spent.
	Iterate() (loc, obj F, nFunEvals int, err error)
	// Best returns the current estimate of the root or minimizer.
	Best() F
}

// Solve runs a fixed-count bracketing search of f over the interval.
// Settings may be nil, in which case DefaultSettings is used. The interval
// endpoints may be supplied in either order.
//
// Multiple calls to Solve are independent; concurrent calls are safe as
// long as f is, though a Solver value must not be shared between them.
func Solve[F constraints.Float](f Func[F], iv Interval[F], settings *Settings[F], solver Solver[F]) (*Result[F], error) {
	if solver == nil {
		panic("univariate: no solver provided")
	}
	if settings == nil {
		settings = DefaultSettings[F]()
	}
	tol := settings.Tolerance
	if tol == 0 {
		tol = Eps[F]()
	}
	if !(tol > 0) || math.IsInf(float64(tol), 0) {
		return nil, ErrTolerance
	}

	iv = NewInterval(iv.Min, iv.Max)

	nInit, err := solver.Init(f, iv, tol)
	if err != nil {
		return nil, err
	}

	helper := NewHelper[F](settings.Writers)
	if err := helper.Init(nInit); err != nil {
		return nil, errors.New("univariate: error writing trace: " + err.Error())
	}

	for i, n := 0, solver.MaxIter(); i < n; i++ {
		loc, obj, nFunEvals, err := solver.Iterate()
		if err != nil {
			return nil, errors.New("univariate: error iterating solver: " + err.Error())
		}
		if err := helper.Iterate(loc, obj, nFunEvals); err != nil {
			return nil, errors.New("univariate: error writing trace: " + err.Error())
		}
	}
	return helper.Result(solver.Best(), common.BracketConverged), nil
}

// Bisect returns x with f(x) approximately zero, given a bracket (a, b) on
// which f changes sign. The endpoints may be supplied in either order. The
// tolerance is the machine epsilon of F; use BisectTol to control it.
func Bisect[F constraints.Float](f Func[F], a, b F) (F, error) {
	return BisectTol(f, a, b, Eps[F]())
}

// BisectTol is Bisect with an explicit tolerance, which bounds the width of
// the final bracket around the returned estimate.
func BisectTol[F constraints.Float](f Func[F], a, b, tol F) (F, error) {
	result, err := Solve(f, NewInterval(a, b), &Settings[F]{Tolerance: tol}, &Bisection[F]{})
	if err != nil {
		return 0, err
	}
	return result.Loc, nil
}

// Root finds a zero crossing of f inside the bracket (a, b). It is
// bisection under its traditional name and is identical to Bisect.
func Root[F constraints.Float](f Func[F], a, b F) (F, error) {
	return Bisect(f, a, b)
}

// Minimize returns an estimate of the minimizer of f over the bracket
// (a, b), assuming f is unimodal there. The endpoints may be supplied in
// either order. The tolerance is the machine epsilon of F; use MinimizeTol
// to control it.
//
// Unimodality is assumed, not checked: if f has several local minima on the
// bracket the result is some point of the bracket with no further meaning.
func Minimize[F constraints.Float](f Func[F], a, b F) (F, error) {
	return MinimizeTol(f, a, b, Eps[F]())
}

// MinimizeTol is Minimize with an explicit tolerance, which bounds the
// width of the final bracket around the returned estimate.
func MinimizeTol[F constraints.Float](f Func[F], a, b, tol F) (F, error) {
	result, err := Solve(f, NewInterval(a, b), &Settings[F]{Tolerance: tol}, &GoldenSection[F]{})
	if err != nil {
		return 0, err
	}
	return result.Loc, nil
}
