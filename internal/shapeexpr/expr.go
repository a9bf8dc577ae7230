package shapeexpr

import (
	"fmt"
	"strconv"

	"github.com/funvibe/symshape/internal/symnode"
)

type exprKind int

const (
	kindIntLit exprKind = iota
	kindVar
	kindUnary  // op "-"
	kindBinary // arithmetic and comparisons
	kindToFloat
)

// Expr is one node of an expression tree. Trees are immutable: every
// operation builds a new node over its operands.
type Expr struct {
	env  *Env
	kind exprKind
	op   string // kindUnary/kindBinary
	ival int64
	name string
	lhs  *Expr
	rhs  *Expr
}

var _ symnode.NodeImpl = (*Expr)(nil)
var _ symnode.TrueDivver = (*Expr)(nil)
var _ symnode.Destroyer = (*Expr)(nil)

// peer checks the family invariant: combining nodes from different Envs
// (or foreign backends) is a defect.
func (e *Expr) peer(other symnode.NodeImpl) *Expr {
	o, ok := other.(*Expr)
	if !ok {
		panic(fmt.Sprintf("shapeexpr: cannot combine with foreign backend node %T", other))
	}
	if o.env != e.env {
		panic("shapeexpr: cannot combine nodes from different environments")
	}
	return o
}

func (e *Expr) binary(op string, other symnode.NodeImpl) symnode.NodeImpl {
	o := e.peer(other)
	return e.env.newExpr(&Expr{kind: kindBinary, op: op, lhs: e, rhs: o})
}

func (e *Expr) Add(other symnode.NodeImpl) symnode.NodeImpl      { return e.binary("+", other) }
func (e *Expr) Sub(other symnode.NodeImpl) symnode.NodeImpl      { return e.binary("-", other) }
func (e *Expr) Mul(other symnode.NodeImpl) symnode.NodeImpl      { return e.binary("*", other) }
func (e *Expr) FloorDiv(other symnode.NodeImpl) symnode.NodeImpl { return e.binary("//", other) }
func (e *Expr) Mod(other symnode.NodeImpl) symnode.NodeImpl      { return e.binary("%", other) }
func (e *Expr) Min(other symnode.NodeImpl) symnode.NodeImpl      { return e.binary("min", other) }
func (e *Expr) Max(other symnode.NodeImpl) symnode.NodeImpl      { return e.binary("max", other) }
func (e *Expr) TrueDiv(other symnode.NodeImpl) symnode.NodeImpl  { return e.binary("/", other) }

func (e *Expr) Eq(other symnode.NodeImpl) symnode.NodeImpl { return e.binary("==", other) }
func (e *Expr) Ne(other symnode.NodeImpl) symnode.NodeImpl { return e.binary("!=", other) }
func (e *Expr) Lt(other symnode.NodeImpl) symnode.NodeImpl { return e.binary("<", other) }
func (e *Expr) Le(other symnode.NodeImpl) symnode.NodeImpl { return e.binary("<=", other) }
func (e *Expr) Gt(other symnode.NodeImpl) symnode.NodeImpl { return e.binary(">", other) }
func (e *Expr) Ge(other symnode.NodeImpl) symnode.NodeImpl { return e.binary(">=", other) }

func (e *Expr) Neg() symnode.NodeImpl {
	return e.env.newExpr(&Expr{kind: kindUnary, op: "-", lhs: e})
}

func (e *Expr) SymFloat() symnode.NodeImpl {
	return e.env.newExpr(&Expr{kind: kindToFloat, lhs: e})
}

// Wrap embeds a literal into this family. Counted so tests can assert that
// concrete-only code paths never reach the factory.
func (e *Expr) Wrap(v int64) symnode.NodeImpl {
	e.env.wraps.Add(1)
	return e.env.newExpr(&Expr{kind: kindIntLit, ival: v})
}

// Destroy is the handle's last-reference hook; it keeps the Env's live
// counter honest.
func (e *Expr) Destroy() {
	e.env.live.Add(-1)
}

func (e *Expr) String() string {
	switch e.kind {
	case kindIntLit:
		return strconv.FormatInt(e.ival, 10)
	case kindVar:
		return e.name
	case kindUnary:
		return "(-" + e.lhs.String() + ")"
	case kindToFloat:
		return "float(" + e.lhs.String() + ")"
	case kindBinary:
		if e.op == "min" || e.op == "max" {
			return e.op + "(" + e.lhs.String() + ", " + e.rhs.String() + ")"
		}
		return "(" + e.lhs.String() + " " + e.op + " " + e.rhs.String() + ")"
	default:
		panic(fmt.Sprintf("shapeexpr: unknown expr kind %d", e.kind))
	}
}
