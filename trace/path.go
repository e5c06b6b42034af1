package trace

// Start returns the start lane, or -1 for an empty path.
func (p Path) Start() int {
	if len(p) == 0 {
		return -1
	}
	return int(p[0].Lane)
}

// End returns the result lane, or -1 for an empty path.
func (p Path) End() int {
	if len(p) == 0 {
		return -1
	}
	return int(p[len(p)-1].Lane)
}

// Rows returns the number of ladder rows the path spans.
func (p Path) Rows() int {
	if len(p) == 0 {
		return 0
	}
	return int(p[len(p)-1].Row)
}

// Lanes returns the lane index of every point, in order.
func (p Path) Lanes() []int {
	out := make([]int, len(p))
	for i, pt := range p {
		out[i] = int(pt.Lane)
	}
	return out
}

// Crossings counts the rungs actually crossed.
func (p Path) Crossings() int {
	n := 0
	for i := 1; i < len(p); i++ {
		if p[i].Lane != p[i-1].Lane {
			n++
		}
	}
	return n
}

// LaneAt returns the lane occupied at the end of row r (r in [0, Rows()]),
// with LaneAt(0) being the start lane. ok is false when r is out of range.
func (p Path) LaneAt(r int) (lane int, ok bool) {
	i := 2 * r
	if r < 0 || i >= len(p) {
		return 0, false
	}
	return int(p[i].Lane), true
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}
