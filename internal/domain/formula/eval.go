package formula

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmptyFormula signals that there is nothing to evaluate. Callers
	// keep the record's last known price and do not treat this as a failure.
	ErrEmptyFormula = errors.New("empty formula")

	// ErrNotFinite signals that evaluation produced NaN or an infinity.
	// Callers fall back to the last known price and flag the record.
	ErrNotFinite = errors.New("formula result is not finite")
)

// arity: -1 means variadic with at least one argument.
var functions = map[string]int{
	"SQRT":  1,
	"ROUND": -2, // 1 or 2 args
	"MAX":   -1,
	"MIN":   -1,
	"ABS":   1,
	"POWER": 2,
	"CEIL":  1,
	"FLOOR": 1,
	"IF":    3,
	"AND":   -1,
	"OR":    -1,
}

func checkArity(name string, n int) error {
	want := functions[name]
	switch {
	case want == -1:
		if n < 1 {
			return fmt.Errorf("%s requires at least one argument", name)
		}
	case want == -2:
		if n != 1 && n != 2 {
			return fmt.Errorf("%s requires one or two arguments, got %d", name, n)
		}
	case n != want:
		return fmt.Errorf("%s requires %d argument(s), got %d", name, want, n)
	}
	return nil
}

// Evaluate substitutes parameter values into an internal-id formula,
// parses it against the whitelist grammar and interprets the AST.
//
// The result is clamped to be non-negative. A NaN or infinite result
// returns ErrNotFinite; the empty formula returns ErrEmptyFormula.
func Evaluate(internalFormula string, values map[string]float64) (float64, error) {
	substituted := Substitute(internalFormula, values)
	if substituted == "" {
		return 0, ErrEmptyFormula
	}

	root, err := parseFormula(substituted)
	if err != nil {
		return 0, err
	}
	result, err := root.eval()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ErrNotFinite
	}
	if result < 0 {
		return 0, nil
	}
	return result, nil
}

// Substitute replaces every parameter id token with its numeric value and
// strips one leading "=" (spreadsheet-style authoring). Replacement is
// whole-token, so ids that prefix other ids can never partially collide.
// Identifiers without a value are left in place for the parser to reject.
func Substitute(internalFormula string, values map[string]float64) string {
	s := strings.TrimSpace(internalFormula)
	s = strings.TrimPrefix(s, "=")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	return identPattern.ReplaceAllStringFunc(s, func(tok string) string {
		if v, ok := values[tok]; ok {
			return formatValue(v)
		}
		return tok
	})
}

func formatValue(v float64) string {
	// Negative substitutions are parenthesized so "2-A" with A=-5 stays a
	// well-formed subtraction of a negative literal.
	if v < 0 {
		return "(0" + strconv.FormatFloat(v, 'f', -1, 64) + ")"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (n numberNode) eval() (float64, error) {
	return float64(n), nil
}

func (n unaryNode) eval() (float64, error) {
	v, err := n.operand.eval()
	if err != nil {
		return 0, err
	}
	if n.negate {
		return -v, nil
	}
	return v, nil
}

func (n binaryNode) eval() (float64, error) {
	left, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	right, err := n.right.eval()
	if err != nil {
		return 0, err
	}
	switch n.op {
	case tokPlus:
		return left + right, nil
	case tokMinus:
		return left - right, nil
	case tokStar:
		return left * right, nil
	case tokSlash:
		if right == 0 {
			return 0, errors.New("division by zero")
		}
		return left / right, nil
	case tokLT:
		return boolValue(left < right), nil
	case tokGT:
		return boolValue(left > right), nil
	case tokLE:
		return boolValue(left <= right), nil
	case tokGE:
		return boolValue(left >= right), nil
	case tokEQ:
		return boolValue(left == right), nil
	case tokNE:
		return boolValue(left != right), nil
	}
	return 0, fmt.Errorf("unsupported operator")
}

func (n callNode) eval() (float64, error) {
	args := make([]float64, len(n.args))
	for i, a := range n.args {
		v, err := a.eval()
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	switch n.name {
	case "SQRT":
		if args[0] < 0 {
			return 0, fmt.Errorf("SQRT of negative value %v", args[0])
		}
		return math.Sqrt(args[0]), nil
	case "ROUND":
		if len(args) == 1 {
			return math.Round(args[0]), nil
		}
		shift := math.Pow(10, math.Trunc(args[1]))
		return math.Round(args[0]*shift) / shift, nil
	case "MAX":
		v := args[0]
		for _, a := range args[1:] {
			v = math.Max(v, a)
		}
		return v, nil
	case "MIN":
		v := args[0]
		for _, a := range args[1:] {
			v = math.Min(v, a)
		}
		return v, nil
	case "ABS":
		return math.Abs(args[0]), nil
	case "POWER":
		return math.Pow(args[0], args[1]), nil
	case "CEIL":
		return math.Ceil(args[0]), nil
	case "FLOOR":
		return math.Floor(args[0]), nil
	case "IF":
		if args[0] != 0 {
			return args[1], nil
		}
		return args[2], nil
	case "AND":
		for _, a := range args {
			if a == 0 {
				return 0, nil
			}
		}
		return 1, nil
	case "OR":
		for _, a := range args {
			if a != 0 {
				return 1, nil
			}
		}
		return 0, nil
	}
	return 0, fmt.Errorf("unknown function %q", n.name)
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
