package region

// sharedLabel is the label a region derived from r and other takes: their
// label if it is the same, "" if one of them is label-less.
func (r Region) sharedLabel(other Region) string {
	if r.label == other.label {
		return r.label
	}
	return ""
}

// marker returns the label-and-strand-only region used where a derived
// region has no positions.
func (r Region) marker(other Region) Region {
	return newRegion(r.sharedLabel(other), 0, 0, r.strand.shared(other.strand))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Shared returns the intersection of r and other.  ok is false unless
// r.Shares(other).
func (r Region) Shared(other Region) (Region, bool) {
	if !r.Shares(other) {
		return Region{}, false
	}
	return newRegion(r.sharedLabel(other),
		maxInt(r.first, other.first), minInt(r.last, other.last),
		r.strand.shared(other.strand)), true
}

// Diff returns the parts of r and other outside their intersection: the
// stretch between the two firsts and the stretch between the two lasts.  A
// side whose bounds coincide is returned as an empty marker region carrying
// only the label and strand.  ok is false unless r.Shares(other).
func (r Region) Diff(other Region) (before, after Region, ok bool) {
	if !r.Shares(other) {
		return Region{}, Region{}, false
	}
	label, strand := r.sharedLabel(other), r.strand.shared(other.strand)
	if r.first == other.first {
		before = r.marker(other)
	} else {
		before = newRegion(label, minInt(r.first, other.first), maxInt(r.first, other.first)-1, strand)
	}
	if r.last == other.last {
		after = r.marker(other)
	} else {
		after = newRegion(label, minInt(r.last, other.last)+1, maxInt(r.last, other.last), strand)
	}
	return before, after, true
}

// Union returns the smallest region spanning r and other.  ok is false unless
// they share a label and overlap or touch.
func (r Region) Union(other Region) (Region, bool) {
	d, ok := r.Dist(other, false)
	if !ok || d > 1 || d < -1 {
		return Region{}, false
	}
	return newRegion(r.sharedLabel(other),
		minInt(r.first, other.first), maxInt(r.last, other.last),
		r.strand.shared(other.strand)), true
}

// Gap returns the region strictly between r and other.  Adjacent regions
// yield an empty marker region.  ok is false if the labels are not shared or
// the ranges overlap.
func (r Region) Gap(other Region) (Region, bool) {
	d, ok := r.Dist(other, false)
	if !ok || d == 0 {
		return Region{}, false
	}
	if d == 1 || d == -1 {
		return r.marker(other), true
	}
	label, strand := r.sharedLabel(other), r.strand.shared(other.strand)
	if r.first < other.first {
		return newRegion(label, r.last+1, other.first-1, strand), true
	}
	return newRegion(label, other.last+1, r.first-1, strand), true
}

// SharedLen returns the number of positions r and other have in common.  ok
// is false if the labels are not shared.
func (r Region) SharedLen(other Region) (int, bool) {
	if !r.SharesLabel(other) {
		return 0, false
	}
	if !r.SharesRange(other) {
		return 0, true
	}
	return minInt(r.last, other.last) - maxInt(r.first, other.first) + 1, true
}

// CoveredRate returns the fraction of r covered by other.
func (r Region) CoveredRate(other Region) (float64, bool) {
	n, ok := r.SharedLen(other)
	if !ok {
		return 0, false
	}
	return float64(n) / float64(r.Len()), true
}

// CapturedRate returns the fraction of other covered by r.
func (r Region) CapturedRate(other Region) (float64, bool) {
	n, ok := r.SharedLen(other)
	if !ok {
		return 0, false
	}
	return float64(n) / float64(other.Len()), true
}
