package symint

import (
	"fmt"
	"strconv"

	"github.com/funvibe/symshape/internal/symnode"
)

// SymFloat is the floating-point companion of SymInt: the same tagged
// representation over a float64 literal. It is produced either directly
// from a literal or by SymInt's float conversion; its symbolic side uses
// the same node contract.
type SymFloat struct {
	data float64
	node *symnode.Node
}

// NewFloat constructs a concrete float scalar.
func NewFloat(v float64) SymFloat {
	return SymFloat{data: v}
}

// FromNodeFloat packs an owned node reference into a symbolic float
// scalar, consuming the caller's ownership.
func FromNodeFloat(n *symnode.Node) SymFloat {
	if n == nil {
		panic("symint: FromNodeFloat called with nil node")
	}
	return SymFloat{node: n}
}

// IsSymbolic reports whether the scalar currently holds a node reference.
func (s SymFloat) IsSymbolic() bool {
	return s.node != nil
}

// AsConcrete returns the literal value. Calling it on a symbolic scalar is
// a programming error.
func (s SymFloat) AsConcrete() float64 {
	if s.IsSymbolic() {
		panic("symint: AsConcrete on a symbolic SymFloat")
	}
	return s.data
}

// ToNode returns a new owned reference to the stored node without touching
// the scalar's own ownership.
func (s SymFloat) ToNode() *symnode.Node {
	if !s.IsSymbolic() {
		panic("symint: ToNode on a concrete SymFloat")
	}
	return s.node.Retain()
}

// Clone returns an independently owned copy of the scalar.
func (s SymFloat) Clone() SymFloat {
	if s.IsSymbolic() {
		return FromNodeFloat(s.node.Retain())
	}
	return s
}

// Release consumes the scalar's ownership of its node reference, if any.
func (s SymFloat) Release() {
	if s.node != nil {
		s.node.Release()
	}
}

// normalizeFloat mirrors normalize for float scalars: concrete siblings
// are wrapped through the symbolic side's family and lifted to floats.
func normalizeFloat(a, b SymFloat) (*symnode.Node, *symnode.Node) {
	var an, bn *symnode.Node
	if a.IsSymbolic() {
		an = a.ToNode()
	}
	if b.IsSymbolic() {
		bn = b.ToNode()
	}

	common := an
	if common == nil {
		common = bn
	}
	if common == nil {
		panic("symint: normalizeFloat called with two concrete operands")
	}

	// The wrap factory takes integer literals; non-integral concrete
	// floats cannot be promoted losslessly through it.
	if an == nil {
		an = symnode.NewNode(wrapFloat(common.Impl(), a.data))
	}
	if bn == nil {
		bn = symnode.NewNode(wrapFloat(common.Impl(), b.data))
	}
	return an, bn
}

func wrapFloat(family symnode.NodeImpl, v float64) symnode.NodeImpl {
	i := int64(v)
	if float64(i) != v {
		panic(fmt.Sprintf("symint: cannot wrap non-integral float %v into a symbolic family", v))
	}
	return family.Wrap(i).SymFloat()
}

func binaryFloat(a, b SymFloat, op func(x, y symnode.NodeImpl) symnode.NodeImpl) SymFloat {
	an, bn := normalizeFloat(a, b)
	defer an.Release()
	defer bn.Release()
	return FromNodeFloat(symnode.NewNode(op(an.Impl(), bn.Impl())))
}

// Add returns s + o.
func (s SymFloat) Add(o SymFloat) SymFloat {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return NewFloat(s.data + o.data)
	}
	return binaryFloat(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Add(y) })
}

// Sub returns s - o.
func (s SymFloat) Sub(o SymFloat) SymFloat {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return NewFloat(s.data - o.data)
	}
	return binaryFloat(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Sub(y) })
}

// Mul returns s * o.
func (s SymFloat) Mul(o SymFloat) SymFloat {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return NewFloat(s.data * o.data)
	}
	return binaryFloat(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Mul(y) })
}

// TrueDiv returns s / o as float division. Symbolic dispatch requires the
// backend to implement the TrueDivver capability.
func (s SymFloat) TrueDiv(o SymFloat) SymFloat {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return NewFloat(s.data / o.data)
	}
	return binaryFloat(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl {
		td, ok := x.(symnode.TrueDivver)
		if !ok {
			panic(fmt.Sprintf("symint: backend %T does not support true division", x))
		}
		return td.TrueDiv(y)
	})
}

func (s SymFloat) String() string {
	if s.IsSymbolic() {
		return s.node.Impl().String()
	}
	return strconv.FormatFloat(s.data, 'g', -1, 64)
}
