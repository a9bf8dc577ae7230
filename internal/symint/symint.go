// Package symint implements the tagged symbolic scalars SymInt and
// SymFloat.
//
// A SymInt is either a concrete int64 or an owning reference to a backend
// node representing a deferred expression. Arithmetic on two concrete
// scalars is plain integer arithmetic and never touches a backend; as soon
// as one operand is symbolic, both are promoted to nodes of the symbolic
// side's family and the operation is dispatched through the node contract.
package symint

import (
	"strconv"

	"github.com/funvibe/symshape/internal/symnode"
)

// SymInt is a polymorphic integer scalar. The zero value is concrete 0.
//
// Exactly one interpretation is active at a time: when node is nil the
// scalar is the literal in data, otherwise the scalar owns one reference
// count unit of node and data is meaningless.
//
// Ownership of the stored reference is explicit. A plain struct copy
// aliases the stored reference without adjusting the count; use Clone for
// an independently owned copy and Release exactly once per owned copy.
type SymInt struct {
	data int64
	node *symnode.Node
}

// New constructs a concrete scalar. No backend is involved.
func New(v int64) SymInt {
	return SymInt{data: v}
}

// FromNode packs an owned node reference into a symbolic scalar. The
// caller's ownership transfers to the scalar; the caller must not Release
// or reuse the handle afterward.
func FromNode(n *symnode.Node) SymInt {
	if n == nil {
		panic("symint: FromNode called with nil node")
	}
	return SymInt{node: n}
}

// IsSymbolic reports whether the scalar currently holds a node reference.
func (s SymInt) IsSymbolic() bool {
	return s.node != nil
}

// AsConcrete returns the literal value. Calling it on a symbolic scalar is
// a programming error.
func (s SymInt) AsConcrete() int64 {
	if s.IsSymbolic() {
		panic("symint: AsConcrete on a symbolic SymInt")
	}
	return s.data
}

// ToNode returns a new owned reference to the stored node. The scalar's own
// ownership is untouched, so the scalar stays valid and independently
// releasable. Calling it on a concrete scalar is a programming error.
func (s SymInt) ToNode() *symnode.Node {
	if !s.IsSymbolic() {
		panic("symint: ToNode on a concrete SymInt")
	}
	return s.node.Retain()
}

// Clone returns an independently owned copy of the scalar.
func (s SymInt) Clone() SymInt {
	if s.IsSymbolic() {
		return FromNode(s.node.Retain())
	}
	return s
}

// Release consumes the scalar's ownership of its node reference, if any.
// The scalar must not be used afterward. Safe on concrete scalars.
func (s SymInt) Release() {
	if s.node != nil {
		s.node.Release()
	}
}

// GuardInt forces the scalar to a concrete integer. Concrete scalars return
// their literal immediately; symbolic scalars delegate to the backend,
// which may record a guard attributed to loc. Fails if the backend cannot
// resolve a concrete value.
func (s SymInt) GuardInt(loc symnode.Location) (int64, error) {
	if !s.IsSymbolic() {
		return s.data, nil
	}
	n := s.ToNode()
	defer n.Release()
	return n.Impl().GuardInt(loc)
}

// SymFloat converts the scalar to its floating counterpart. Concrete
// scalars become literal floats; symbolic scalars delegate to the node's
// float conversion.
func (s SymInt) SymFloat() SymFloat {
	if !s.IsSymbolic() {
		return NewFloat(float64(s.data))
	}
	n := s.ToNode()
	defer n.Release()
	return FromNodeFloat(symnode.NewNode(n.Impl().SymFloat()))
}

func (s SymInt) String() string {
	if s.IsSymbolic() {
		return s.node.Impl().String()
	}
	return strconv.FormatInt(s.data, 10)
}
