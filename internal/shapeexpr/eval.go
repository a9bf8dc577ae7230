package shapeexpr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/funvibe/symshape/internal/symnode"
)

// ErrUnbacked marks a forcing failure: the expression contains a variable
// with no hint, so no concrete value exists for it yet.
var ErrUnbacked = errors.New("unbacked symbolic value")

type valueKind int

const (
	intValue valueKind = iota
	floatValue
	boolValue
)

type value struct {
	kind valueKind
	i    int64
	f    float64
	b    bool
}

func (v value) String() string {
	switch v.kind {
	case intValue:
		return strconv.FormatInt(v.i, 10)
	case floatValue:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return strconv.FormatBool(v.b)
	}
}

// GuardInt resolves the expression against the Env's hints and records the
// decision. All errors surface; nothing is defaulted.
func (e *Expr) GuardInt(loc symnode.Location) (int64, error) {
	v, err := e.eval()
	if err != nil {
		return 0, err
	}
	if v.kind != intValue {
		return 0, fmt.Errorf("shapeexpr: guard_int on non-integer expression %s", e)
	}
	e.env.record("int", e.String(), v.String(), loc)
	return v.i, nil
}

// Bool resolves a boolean expression and records the decision. Like
// GuardInt this is a forcing point with observable side effects.
func (e *Expr) Bool() (bool, error) {
	v, err := e.eval()
	if err != nil {
		return false, err
	}
	if v.kind != boolValue {
		return false, fmt.Errorf("shapeexpr: bool on non-boolean expression %s", e)
	}
	e.env.record("bool", e.String(), v.String(), symnode.Location{})
	return v.b, nil
}

func (e *Expr) eval() (value, error) {
	switch e.kind {
	case kindIntLit:
		return value{kind: intValue, i: e.ival}, nil
	case kindVar:
		v, ok := e.env.hint(e.name)
		if !ok {
			return value{}, fmt.Errorf("%w: variable %q has no hint", ErrUnbacked, e.name)
		}
		return value{kind: intValue, i: v}, nil
	case kindUnary:
		l, err := e.lhs.eval()
		if err != nil {
			return value{}, err
		}
		switch l.kind {
		case intValue:
			return value{kind: intValue, i: -l.i}, nil
		case floatValue:
			return value{kind: floatValue, f: -l.f}, nil
		default:
			return value{}, fmt.Errorf("shapeexpr: cannot negate boolean %s", e.lhs)
		}
	case kindToFloat:
		l, err := e.lhs.eval()
		if err != nil {
			return value{}, err
		}
		if l.kind == boolValue {
			return value{}, fmt.Errorf("shapeexpr: cannot convert boolean %s to float", e.lhs)
		}
		if l.kind == floatValue {
			return l, nil
		}
		return value{kind: floatValue, f: float64(l.i)}, nil
	case kindBinary:
		return e.evalBinary()
	default:
		panic(fmt.Sprintf("shapeexpr: unknown expr kind %d", e.kind))
	}
}

func (e *Expr) evalBinary() (value, error) {
	l, err := e.lhs.eval()
	if err != nil {
		return value{}, err
	}
	r, err := e.rhs.eval()
	if err != nil {
		return value{}, err
	}
	if l.kind == boolValue || r.kind == boolValue {
		return value{}, fmt.Errorf("shapeexpr: boolean operand in %s", e)
	}

	// Mixed int/float promotes to float, as does true division.
	if l.kind == floatValue || r.kind == floatValue || e.op == "/" {
		return evalFloatBinary(e.op, toF(l), toF(r), e)
	}
	return evalIntBinary(e.op, l.i, r.i, e)
}

func toF(v value) float64 {
	if v.kind == floatValue {
		return v.f
	}
	return float64(v.i)
}

func evalIntBinary(op string, a, b int64, e *Expr) (value, error) {
	switch op {
	case "+":
		return value{kind: intValue, i: a + b}, nil
	case "-":
		return value{kind: intValue, i: a - b}, nil
	case "*":
		return value{kind: intValue, i: a * b}, nil
	case "//":
		if b == 0 {
			return value{}, fmt.Errorf("shapeexpr: division by zero in %s", e)
		}
		q := a / b
		if a%b != 0 && (a < 0) != (b < 0) {
			q--
		}
		return value{kind: intValue, i: q}, nil
	case "%":
		if b == 0 {
			return value{}, fmt.Errorf("shapeexpr: modulo by zero in %s", e)
		}
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return value{kind: intValue, i: m}, nil
	case "min":
		return value{kind: intValue, i: min(a, b)}, nil
	case "max":
		return value{kind: intValue, i: max(a, b)}, nil
	case "==":
		return value{kind: boolValue, b: a == b}, nil
	case "!=":
		return value{kind: boolValue, b: a != b}, nil
	case "<":
		return value{kind: boolValue, b: a < b}, nil
	case "<=":
		return value{kind: boolValue, b: a <= b}, nil
	case ">":
		return value{kind: boolValue, b: a > b}, nil
	case ">=":
		return value{kind: boolValue, b: a >= b}, nil
	default:
		panic(fmt.Sprintf("shapeexpr: unknown operator %q", op))
	}
}

func evalFloatBinary(op string, a, b float64, e *Expr) (value, error) {
	switch op {
	case "+":
		return value{kind: floatValue, f: a + b}, nil
	case "-":
		return value{kind: floatValue, f: a - b}, nil
	case "*":
		return value{kind: floatValue, f: a * b}, nil
	case "/":
		if b == 0 {
			return value{}, fmt.Errorf("shapeexpr: division by zero in %s", e)
		}
		return value{kind: floatValue, f: a / b}, nil
	case "min":
		return value{kind: floatValue, f: min(a, b)}, nil
	case "max":
		return value{kind: floatValue, f: max(a, b)}, nil
	case "==":
		return value{kind: boolValue, b: a == b}, nil
	case "!=":
		return value{kind: boolValue, b: a != b}, nil
	case "<":
		return value{kind: boolValue, b: a < b}, nil
	case "<=":
		return value{kind: boolValue, b: a <= b}, nil
	case ">":
		return value{kind: boolValue, b: a > b}, nil
	case ">=":
		return value{kind: boolValue, b: a >= b}, nil
	case "//", "%":
		return value{}, fmt.Errorf("shapeexpr: %s not defined on floats in %s", op, e)
	default:
		panic(fmt.Sprintf("shapeexpr: unknown operator %q", op))
	}
}
