package symint

import "github.com/funvibe/symshape/internal/symnode"

// normalize promotes two scalars, at least one of which is symbolic, to a
// pair of owned node handles ready for a binary backend operation.
//
// Whichever operand already has a node determines the backend family; a
// concrete sibling is wrapped into that family through the node's factory.
// When both operands are symbolic no wrapping occurs and the two existing
// handles are used unchanged — if they belong to different families the
// backend rejects the combination during dispatch.
//
// Both returned handles are owned by the caller and must be released after
// the dispatch.
func normalize(a, b SymInt) (*symnode.Node, *symnode.Node) {
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
		panic("symint: normalize called with two concrete operands")
	}

	if an == nil {
		an = symnode.NewNode(common.Impl().Wrap(a.data))
	}
	if bn == nil {
		bn = symnode.NewNode(common.Impl().Wrap(b.data))
	}
	return an, bn
}

// floorDiv is integer division rounding toward negative infinity, matching
// the division semantics the symbolic backends implement.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod pairs with floorDiv: the result has the sign of the divisor and
// a == floorDiv(a,b)*b + floorMod(a,b) holds for all b != 0.
func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
