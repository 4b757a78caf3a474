// Package univariate provides bracketing searches on the real line:
// bisection root finding for a function with a sign change on an interval,
// and golden-section search for the minimizer of a unimodal function.
//
// Both searches run an iteration count fixed up front from the bracket
// width and the tolerance, so their cost is deterministic and they cannot
// loop indefinitely. The convenience entry points (Bisect, Root, Minimize)
// cover the common case; Solve gives access to the per-iteration trace and
// run statistics.
package univariate

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/btracey/bracket/common"
	"github.com/btracey/bracket/write"
)

var (
	// ErrBracket is returned by the root finders when the objective does not
	// have strictly opposite signs at the two bracket endpoints. A zero value
	// at an endpoint also fails the check.
	ErrBracket = errors.New("univariate: objective must have opposite signs at the bracket endpoints")

	// ErrTolerance is returned when the tolerance is not a positive finite
	// number.
	ErrTolerance = errors.New("univariate: tolerance must be positive and finite")
)

// Func is a scalar objective. It must be free of side effects and cheap
// enough to call O(log(width/tol)) times; the searches never guard against a
// non-terminating objective.
type Func[F constraints.Float] func(F) F

// Eps returns the machine epsilon of the floating-point type F. It is the
// default tolerance of the searches.
func Eps[F constraints.Float]() F {
	var e F = 1
	for 1+e/2 > 1 {
		e /= 2
	}
	return e
}

// Interval is a bracket on the real line, with Min <= Max.
type Interval[F constraints.Float] struct {
	Min F
	Max F
}

// NewInterval builds an Interval from two endpoints supplied in either
// order.
func NewInterval[F constraints.Float](a, b F) Interval[F] {
	if b < a {
		a, b = b, a
	}
	return Interval[F]{Min: a, Max: b}
}

// Width returns the length of the interval.
func (iv Interval[F]) Width() F {
	return iv.Max - iv.Min
}

// Mid returns the midpoint of the interval. It is computed as a sum of
// halves so that it cannot overflow for extreme endpoint magnitudes.
func (iv Interval[F]) Mid() F {
	return iv.Min/2 + iv.Max/2
}

// sign maps v to -1, 0 or +1.
func sign[F constraints.Float](v F) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Settings is a structure containing settings for the searches.
type Settings[F constraints.Float] struct {
	// Tolerance bounds the width of the final bracket. If it is zero the
	// machine epsilon of F is used. Non-positive or non-finite values are
	// rejected with ErrTolerance.
	Tolerance F

	// Writers receive one trace row per iteration. If it is nil the search
	// produces no output.
	Writers []write.Writer
}

// DefaultSettings returns the default settings for the searches: machine
// epsilon tolerance and no trace output.
func DefaultSettings[F constraints.Float]() *Settings[F] {
	return &Settings[F]{
		Tolerance: Eps[F](),
	}
}

// Result is the outcome of a search.
type Result[F constraints.Float] struct {
	*common.Stats
	Loc F // Final estimate of the root or minimizer
	Obj F // Objective at the most recent probe; NaN if no iterations ran
}

// Helper combines the counter and the trace display for a running search.
// Not intended for use by callers of the search functions, but exported to
// aid others who are building solvers.
//
// Solver implementers should call Init at the start of a run and Iterate at
// the end of every iteration.
type Helper[F constraints.Float] struct {
	*common.Counter

	display *write.Display

	locCurr F
	objCurr F
}

// NewHelper creates a new helper writing to the given writers and adds
// itself and its counter to the data adders.
func NewHelper[F constraints.Float](writers []write.Writer) *Helper[F] {
	h := &Helper[F]{
		Counter: common.NewCounter(),
		display: write.NewDisplay(writers),
	}
	h.display.AddDataAdder(h.Counter, h)
	return h
}

func (h *Helper[F]) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: float64(h.locCurr)})
	v = append(v, &write.Value{Heading: "Obj", Value: float64(h.objCurr)})
	return v
}

func (h *Helper[F]) Init(nFunEvals int) error {
	h.Counter.Init(nFunEvals)
	h.locCurr = F(math.NaN())
	h.objCurr = F(math.NaN())
	return h.display.Init()
}

func (h *Helper[F]) Iterate(loc, obj F, nFunEvals int) error {
	h.Counter.Iterate(nFunEvals)
	h.locCurr = loc
	h.objCurr = obj
	return h.display.Iterate()
}

func (h *Helper[F]) Result(loc F, status common.Status) *Result[F] {
	return &Result[F]{
		Stats: h.Counter.Result(status),
		Loc:   loc,
		Obj:   h.objCurr,
	}
}
