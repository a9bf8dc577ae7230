package symint

// Literal right-hand-side conveniences. Pure forwarding: each wraps the
// literal into a concrete scalar and delegates to the scalar-scalar
// operation.

func (s SymInt) AddInt(v int64) SymInt { return s.Add(New(v)) }
func (s SymInt) SubInt(v int64) SymInt { return s.Sub(New(v)) }
func (s SymInt) MulInt(v int64) SymInt { return s.Mul(New(v)) }

func (s SymInt) EqInt(v int64) (bool, error) { return s.Eq(New(v)) }
func (s SymInt) NeInt(v int64) (bool, error) { return s.Ne(New(v)) }
func (s SymInt) LtInt(v int64) (bool, error) { return s.Lt(New(v)) }
func (s SymInt) LeInt(v int64) (bool, error) { return s.Le(New(v)) }
func (s SymInt) GtInt(v int64) (bool, error) { return s.Gt(New(v)) }
func (s SymInt) GeInt(v int64) (bool, error) { return s.Ge(New(v)) }

// Compound-assignment sugar: recompute and overwrite. The old stored
// reference is released before the overwrite, so the count stays balanced.

func (s *SymInt) AddAssign(o SymInt) {
	res := s.Add(o)
	s.Release()
	*s = res
}

func (s *SymInt) MulAssign(o SymInt) {
	res := s.Mul(o)
	s.Release()
	*s = res
}
