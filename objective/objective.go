// Package objective builds scalar objectives from textual expressions in
// the variable x, such as "sin(x)" or "(x-2)**2", for use with the
// univariate searches.
package objective

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Knetic/govaluate"

	"github.com/btracey/bracket/univariate"
)

// functions are the math helpers available inside expressions.
var functions = map[string]govaluate.ExpressionFunction{
	"sin":  func(args ...interface{}) (interface{}, error) { return math.Sin(toFloat(args[0])), nil },
	"cos":  func(args ...interface{}) (interface{}, error) { return math.Cos(toFloat(args[0])), nil },
	"tan":  func(args ...interface{}) (interface{}, error) { return math.Tan(toFloat(args[0])), nil },
	"exp":  func(args ...interface{}) (interface{}, error) { return math.Exp(toFloat(args[0])), nil },
	"log":  func(args ...interface{}) (interface{}, error) { return math.Log(toFloat(args[0])), nil },
	"sqrt": func(args ...interface{}) (interface{}, error) { return math.Sqrt(toFloat(args[0])), nil },
	"abs":  func(args ...interface{}) (interface{}, error) { return math.Abs(toFloat(args[0])), nil },
	"pow": func(args ...interface{}) (interface{}, error) {
		return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
	},
}

// Expr is a scalar objective parsed from a textual expression. A parsed
// Expr is immutable; Eval builds its parameters per call, so one Expr may
// be evaluated from several goroutines at once.
type Expr struct {
	expr *govaluate.EvaluableExpression
}

// Parse compiles an expression in the variable x.
func Parse(expression string) (*Expr, error) {
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expression, functions)
	if err != nil {
		return nil, err
	}
	return &Expr{expr: parsed}, nil
}

// Eval evaluates the expression at x.
func (e *Expr) Eval(x float64) (float64, error) {
	v, err := e.expr.Evaluate(map[string]interface{}{"x": x})
	if err != nil {
		return math.NaN(), err
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	default:
		return math.NaN(), fmt.Errorf("objective: expression returned %T, not a number", v)
	}
}

// Func adapts the expression to the callable form used by the univariate
// searches. Evaluation errors surface as NaN.
func (e *Expr) Func() univariate.Func[float64] {
	return func(x float64) float64 {
		v, err := e.Eval(x)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	default:
		return math.NaN()
	}
}
