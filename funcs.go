package calc

import "math"

// Func is a function from reals to reals. Every function takes exactly one
// argument and checks its own domain.
type Func func(x float64) (float64, error)

// funcNames lists the known functions in help and error-message order.
const funcNames = "sin, cos, tan, asin, acos, atan, ln, log2, log10, exp, sqrt, round, floor, ceil, abs"

var funcs = map[string]Func{
	"sin":  func(x float64) (float64, error) { return math.Sin(x), nil },
	"cos":  func(x float64) (float64, error) { return math.Cos(x), nil },
	"tan":  func(x float64) (float64, error) { return math.Tan(x), nil },
	"atan": func(x float64) (float64, error) { return math.Atan(x), nil },
	"exp":  func(x float64) (float64, error) { return math.Exp(x), nil },

	"asin": func(x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, &DomainError{Func: "asin"}
		}
		return math.Asin(x), nil
	},
	"acos": func(x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, &DomainError{Func: "acos"}
		}
		return math.Acos(x), nil
	},
	"ln": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{Func: "ln"}
		}
		return math.Log(x), nil
	},
	"log2": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{Func: "log2"}
		}
		return math.Log2(x), nil
	},
	"log10": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{Func: "log10"}
		}
		return math.Log10(x), nil
	},
	"sqrt": func(x float64) (float64, error) {
		if x < 0 {
			return 0, &DomainError{Func: "sqrt"}
		}
		return math.Sqrt(x), nil
	},

	"round": func(x float64) (float64, error) { return math.Round(x), nil },
	"floor": func(x float64) (float64, error) { return math.Floor(x), nil },
	"ceil":  func(x float64) (float64, error) { return math.Ceil(x), nil },
	"abs":   func(x float64) (float64, error) { return math.Abs(x), nil },
}

var consts = map[string]float64{
	"pi":    math.Pi,
	"e":     math.E,
	"phi":   math.Phi,
	"tau":   2 * math.Pi,
	"sqrt2": math.Sqrt2,
	"sqrt3": math.Sqrt(3),
}

// isConst reports whether word names a constant. The tokenizer uses this to
// classify identifiers before the memory and function checks.
func isConst(word string) bool {
	_, ok := consts[word]
	return ok
}
