package common

import (
	"time"

	"github.com/btracey/bracket/write"
)

// Stats is the bookkeeping shared by every search result.
type Stats struct {
	Iterations          int           // Total number of iterations taken by the search
	FunctionEvaluations int           // Total number of objective evaluations taken by the search
	Runtime             time.Duration // Total runtime elapsed during the search
	Status              Status        // How did the search end
}

// Counter tracks the iteration and objective-evaluation counts of a running
// search. It writes its counts to the trace display as a write.DataAdder.
type Counter struct {
	iter      int
	funEvals  int
	startTime time.Time
}

func NewCounter() *Counter {
	return &Counter{}
}

// Init resets the counter at the start of a search. nFunEvals is the number
// of objective evaluations spent during solver initialization (endpoint sign
// checks, initial probes).
func (c *Counter) Init(nFunEvals int) {
	c.iter = 0
	c.funEvals = nFunEvals
	c.startTime = time.Now()
}

func (c *Counter) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Iterate records one completed iteration and the objective evaluations it
// spent.
func (c *Counter) Iterate(nFunEvals int) {
	c.iter++
	c.funEvals += nFunEvals
}

// Result returns the accumulated statistics.
func (c *Counter) Result(status Status) *Stats {
	return &Stats{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
}
