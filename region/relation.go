package region

// SameLabel reports whether the labels are identical.
func (r Region) SameLabel(other Region) bool { return r.label == other.label }

// SharesLabel reports whether the regions can be compared positionally: both
// are non-empty and either the labels match or one of them is pure.
func (r Region) SharesLabel(other Region) bool {
	return !r.IsEmpty() && !other.IsEmpty() &&
		(r.IsPure() || other.IsPure() || r.SameLabel(other))
}

// SameRange reports whether the bounds are identical.
func (r Region) SameRange(other Region) bool {
	return r.first == other.first && r.last == other.last
}

// SharesRange reports whether the ranges overlap, ignoring labels.
func (r Region) SharesRange(other Region) bool {
	return !(r.first > other.last || r.last < other.first)
}

// SharesPos reports whether pos lies within the range.
func (r Region) SharesPos(pos int) bool {
	return !(r.first > pos || r.last < pos)
}

// SameStrand reports whether the strands are identical.
func (r Region) SameStrand(other Region) bool { return r.strand == other.strand }

// SharesStrand reports whether the strands are compatible: equal, or exactly
// one of them unset.
func (r Region) SharesStrand(other Region) bool { return r.strand.shares(other.strand) }

// Shares reports whether the regions overlap on a shared label.
func (r Region) Shares(other Region) bool {
	return r.SharesLabel(other) && r.SharesRange(other)
}

// Around reports whether the regions are on a shared label but disjoint.
func (r Region) Around(other Region) bool {
	return r.SharesLabel(other) && !r.SharesRange(other)
}

// Inside reports whether r lies entirely within other, bounds included.
func (r Region) Inside(other Region) bool {
	return r.SharesLabel(other) && !(r.first < other.first || r.last > other.last)
}

// Covers reports whether other lies entirely within r.
func (r Region) Covers(other Region) bool { return other.Inside(r) }

// Next reports whether the regions are adjacent: disjoint with no position
// between them.
func (r Region) Next(other Region) bool {
	d, ok := r.Dist(other, false)
	return ok && (d == 1 || d == -1)
}

// Upstream reports whether r lies before other, as seen from other (and from
// other's strand if orient is set).
func (r Region) Upstream(other Region, orient bool) bool {
	d, ok := other.Dist(r, orient)
	return ok && d < 0
}

// Downstream reports whether r lies after other, as seen from other (and from
// other's strand if orient is set).
func (r Region) Downstream(other Region, orient bool) bool {
	d, ok := other.Dist(r, orient)
	return ok && d > 0
}

// Dist returns the signed distance from r to other.  It is 0 if the ranges
// overlap, other.Last()-r.First() (negative) if other lies before r, and
// other.First()-r.Last() (positive) if other lies after r.  With orient set
// and r on the reverse strand the sign is flipped.  ok is false if the labels
// are not shared.
func (r Region) Dist(other Region, orient bool) (dist int, ok bool) {
	if !r.SharesLabel(other) {
		return 0, false
	}
	switch {
	case r.SharesRange(other):
		dist = 0
	case r.first > other.last:
		dist = other.last - r.first
	default:
		dist = other.first - r.last
	}
	if orient && r.strand == Reverse {
		dist = -dist
	}
	return dist, true
}
