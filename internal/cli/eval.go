// Package cli implements the symshape command line interface.
package cli

import (
	"fmt"

	"github.com/funvibe/symshape/internal/ast"
	"github.com/funvibe/symshape/internal/shapeexpr"
	"github.com/funvibe/symshape/internal/symint"
)

func isComparison(op string) bool {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=":
		return true
	}
	return false
}

// evalArith evaluates an arithmetic expression to a SymInt over env.
// Identifiers become symbolic variables; their hints only matter once a
// guard forces the result. The caller owns the returned scalar.
func evalArith(env *shapeexpr.Env, node ast.Expression) (symint.SymInt, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return symint.New(n.Value), nil

	case *ast.Identifier:
		return symint.FromNode(env.Var(n.Value)), nil

	case *ast.PrefixExpression:
		right, err := evalArith(env, n.Right)
		if err != nil {
			return symint.SymInt{}, err
		}
		defer right.Release()
		return right.Neg(), nil

	case *ast.InfixExpression:
		if isComparison(n.Operator) {
			return symint.SymInt{}, fmt.Errorf("comparison %q cannot be nested in arithmetic", n.Operator)
		}
		left, err := evalArith(env, n.Left)
		if err != nil {
			return symint.SymInt{}, err
		}
		defer left.Release()
		right, err := evalArith(env, n.Right)
		if err != nil {
			return symint.SymInt{}, err
		}
		defer right.Release()

		switch n.Operator {
		case "+":
			return left.Add(right), nil
		case "-":
			return left.Sub(right), nil
		case "*":
			return left.Mul(right), nil
		case "/":
			return left.FloorDiv(right), nil
		case "%":
			return left.Mod(right), nil
		default:
			return symint.SymInt{}, fmt.Errorf("unknown operator %q", n.Operator)
		}

	case *ast.CallExpression:
		left, err := evalArith(env, n.Args[0])
		if err != nil {
			return symint.SymInt{}, err
		}
		defer left.Release()
		right, err := evalArith(env, n.Args[1])
		if err != nil {
			return symint.SymInt{}, err
		}
		defer right.Release()

		switch n.Function {
		case "min":
			return left.Min(right), nil
		case "max":
			return left.Max(right), nil
		default:
			return symint.SymInt{}, fmt.Errorf("unknown function %q", n.Function)
		}

	default:
		return symint.SymInt{}, fmt.Errorf("unsupported expression %T", node)
	}
}

// evalCompare evaluates a top-level comparison. This is a forcing point:
// the symbolic comparison is resolved to a concrete boolean immediately.
func evalCompare(env *shapeexpr.Env, n *ast.InfixExpression) (bool, error) {
	left, err := evalArith(env, n.Left)
	if err != nil {
		return false, err
	}
	defer left.Release()
	right, err := evalArith(env, n.Right)
	if err != nil {
		return false, err
	}
	defer right.Release()

	switch n.Operator {
	case "==":
		return left.Eq(right)
	case "!=":
		return left.Ne(right)
	case "<":
		return left.Lt(right)
	case "<=":
		return left.Le(right)
	case ">":
		return left.Gt(right)
	case ">=":
		return left.Ge(right)
	default:
		return false, fmt.Errorf("unknown comparison %q", n.Operator)
	}
}
