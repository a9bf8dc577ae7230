package symint

import "github.com/funvibe/symshape/internal/symnode"

// binary dispatches a symbolic binary operation: normalize both operands,
// run the backend op, pack the result.
func binary(a, b SymInt, op func(x, y symnode.NodeImpl) symnode.NodeImpl) SymInt {
	an, bn := normalize(a, b)
	defer an.Release()
	defer bn.Release()
	return FromNode(symnode.NewNode(op(an.Impl(), bn.Impl())))
}

// compare dispatches a symbolic comparison and forces the boolean result.
// Forcing is a guard point and may fail if the backend cannot resolve a
// truth value.
func compare(a, b SymInt, op func(x, y symnode.NodeImpl) symnode.NodeImpl) (bool, error) {
	an, bn := normalize(a, b)
	defer an.Release()
	defer bn.Release()
	rn := symnode.NewNode(op(an.Impl(), bn.Impl()))
	defer rn.Release()
	return rn.Impl().Bool()
}

// Add returns s + o. Wraparound int64 semantics when both sides are
// concrete.
func (s SymInt) Add(o SymInt) SymInt {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return New(s.data + o.data)
	}
	return binary(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Add(y) })
}

// Sub returns s - o.
func (s SymInt) Sub(o SymInt) SymInt {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return New(s.data - o.data)
	}
	return binary(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Sub(y) })
}

// Mul returns s * o.
func (s SymInt) Mul(o SymInt) SymInt {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return New(s.data * o.data)
	}
	return binary(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Mul(y) })
}

// FloorDiv returns s / o rounded toward negative infinity. Division by a
// concrete zero panics like ordinary integer division.
func (s SymInt) FloorDiv(o SymInt) SymInt {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return New(floorDiv(s.data, o.data))
	}
	return binary(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.FloorDiv(y) })
}

// Mod returns s mod o with the divisor's sign, pairing with FloorDiv.
func (s SymInt) Mod(o SymInt) SymInt {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return New(floorMod(s.data, o.data))
	}
	return binary(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Mod(y) })
}

// Min returns the smaller of s and o.
func (s SymInt) Min(o SymInt) SymInt {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return New(min(s.data, o.data))
	}
	return binary(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Min(y) })
}

// Max returns the larger of s and o.
func (s SymInt) Max(o SymInt) SymInt {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return New(max(s.data, o.data))
	}
	return binary(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Max(y) })
}

// Neg returns -s.
func (s SymInt) Neg() SymInt {
	if !s.IsSymbolic() {
		return New(-s.data)
	}
	n := s.ToNode()
	defer n.Release()
	return FromNode(symnode.NewNode(n.Impl().Neg()))
}

// Eq reports whether s == o. With a symbolic operand this forces the
// backend comparison to a concrete boolean, which can fail.
func (s SymInt) Eq(o SymInt) (bool, error) {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return s.data == o.data, nil
	}
	return compare(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Eq(y) })
}

// Ne reports whether s != o.
func (s SymInt) Ne(o SymInt) (bool, error) {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return s.data != o.data, nil
	}
	return compare(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Ne(y) })
}

// Lt reports whether s < o.
func (s SymInt) Lt(o SymInt) (bool, error) {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return s.data < o.data, nil
	}
	return compare(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Lt(y) })
}

// Le reports whether s <= o.
func (s SymInt) Le(o SymInt) (bool, error) {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return s.data <= o.data, nil
	}
	return compare(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Le(y) })
}

// Gt reports whether s > o.
func (s SymInt) Gt(o SymInt) (bool, error) {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return s.data > o.data, nil
	}
	return compare(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Gt(y) })
}

// Ge reports whether s >= o.
func (s SymInt) Ge(o SymInt) (bool, error) {
	if !s.IsSymbolic() && !o.IsSymbolic() {
		return s.data >= o.data, nil
	}
	return compare(s, o, func(x, y symnode.NodeImpl) symnode.NodeImpl { return x.Ge(y) })
}
