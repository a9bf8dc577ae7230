// Package symnode defines the contract between the tagged symbolic scalar
// and the expression backends that implement deferred arithmetic.
//
// The package has two halves:
//   - NodeImpl, the polymorphic backend contract: one implementation per
//     symbolic-expression family. A backend builds new nodes for every
//     operation; it never mutates an existing node in place.
//   - Node, a reference-counted owning handle around a NodeImpl. Scalars
//     store Nodes, backends never see them.
package symnode

import (
	"fmt"
	"sync/atomic"
)

// Location identifies the call site that forced a symbolic value to a
// concrete one. It is attribution only and never affects the result.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// NodeImpl is the backend family contract. Binary operations require both
// operands to belong to the same family; detecting a mismatch is the
// backend's responsibility and is a defect, so implementations panic on it
// rather than coerce.
//
// Arithmetic and comparison operations return new nodes. Comparisons return
// a node representing a boolean, which stays symbolic until Bool is called.
type NodeImpl interface {
	Add(other NodeImpl) NodeImpl
	Sub(other NodeImpl) NodeImpl
	Mul(other NodeImpl) NodeImpl
	FloorDiv(other NodeImpl) NodeImpl
	Mod(other NodeImpl) NodeImpl
	Neg() NodeImpl
	Min(other NodeImpl) NodeImpl
	Max(other NodeImpl) NodeImpl

	Eq(other NodeImpl) NodeImpl
	Ne(other NodeImpl) NodeImpl
	Lt(other NodeImpl) NodeImpl
	Le(other NodeImpl) NodeImpl
	Gt(other NodeImpl) NodeImpl
	Ge(other NodeImpl) NodeImpl

	// Bool forces a boolean node to a concrete boolean. This is a guard
	// point: the backend may record that a decision was made.
	Bool() (bool, error)

	// GuardInt forces the node to a concrete integer, attributing the
	// guard to loc. Fails if the expression is unconstrained.
	GuardInt(loc Location) (int64, error)

	// SymFloat produces the float-typed counterpart of this node.
	SymFloat() NodeImpl

	// Wrap embeds a literal into this node's backend family.
	Wrap(v int64) NodeImpl

	String() string
}

// Destroyer is an optional hook invoked by Node when the last reference is
// released. Instrumented backends use it to track node lifetimes.
type Destroyer interface {
	Destroy()
}

// TrueDivver is an optional capability for backends that support true
// (float) division, used by the float scalar.
type TrueDivver interface {
	TrueDiv(other NodeImpl) NodeImpl
}

// Node is a reference-counted owning handle for a backend node.
//
// Ownership is explicit: NewNode hands the caller one count unit, Retain
// produces an additional owned reference (borrow-and-clone), and Release
// consumes one. Holding a Node value without owning a count unit is a
// programming error. The count is atomic, so independent owners may
// Retain/Release concurrently.
type Node struct {
	impl NodeImpl
	refs atomic.Int64
}

// NewNode wraps impl into a fresh handle with a count of one, owned by the
// caller.
func NewNode(impl NodeImpl) *Node {
	if impl == nil {
		panic("symnode: NewNode called with nil impl")
	}
	n := &Node{impl: impl}
	n.refs.Store(1)
	return n
}

// Retain produces a new owned reference to the same underlying node. The
// receiver's own ownership is untouched.
func (n *Node) Retain() *Node {
	if n.refs.Add(1) <= 1 {
		panic("symnode: Retain on a released node")
	}
	return n
}

// Release consumes one count unit. When the count reaches zero the
// underlying impl's Destroy hook runs, if it has one. Releasing more
// references than were ever owned is a programming error.
func (n *Node) Release() {
	c := n.refs.Add(-1)
	if c < 0 {
		panic("symnode: Release below zero")
	}
	if c == 0 {
		if d, ok := n.impl.(Destroyer); ok {
			d.Destroy()
		}
	}
}

// Impl exposes the underlying backend node. The caller must own at least
// one count unit for the duration of use.
func (n *Node) Impl() NodeImpl {
	return n.impl
}

// Refs reports the current reference count. Diagnostic only.
func (n *Node) Refs() int64 {
	return n.refs.Load()
}
