package region

// At maps a 0-based offset into the region to an absolute position.  Negative
// offsets count from the end, so At(-1) == Last().  It returns 0 if the
// position falls outside the region.
func (r Region) At(offset int) int {
	var pos int
	if offset < 0 {
		pos = r.last + offset + 1
	} else {
		pos = r.first + offset
	}
	if !r.SharesPos(pos) {
		return 0
	}
	return pos
}

// RelPos maps the absolute position pos to its offset from First().  With
// orient set on a reverse-stranded region the offset is taken from Last()
// instead, counting towards the start.  The result may be negative or exceed
// the region when pos lies outside it.  ok is false for pos <= 0.
func (r Region) RelPos(pos int, orient bool) (int, bool) {
	if pos <= 0 {
		return 0, false
	}
	if orient && r.strand == Reverse {
		return r.last - pos, true
	}
	return pos - r.first, true
}

// RelPosLast is like RelPos but measures from Last() (from First() with
// orient set on a reverse-stranded region).
func (r Region) RelPosLast(pos int, orient bool) (int, bool) {
	if pos <= 0 {
		return 0, false
	}
	if orient && r.strand == Reverse {
		return r.first - pos, true
	}
	return pos - r.last, true
}

// RelPosOf returns RelPos(other.First(), orient).  ok is false if the labels
// are not shared.
func (r Region) RelPosOf(other Region, orient bool) (int, bool) {
	if !r.SharesLabel(other) {
		return 0, false
	}
	return r.RelPos(other.first, orient)
}

// RelPosLastOf returns RelPosLast(other.First(), orient).  ok is false if the
// labels are not shared.
func (r Region) RelPosLastOf(other Region, orient bool) (int, bool) {
	if !r.SharesLabel(other) {
		return 0, false
	}
	return r.RelPosLast(other.first, orient)
}

// RelPosRatio returns RelPos scaled to [0, 1], where 0 is the start and 1 the
// end of the region.  ok is false if pos lies outside the region.  A single
// position region maps its only position to 0.
func (r Region) RelPosRatio(pos int, orient bool) (float64, bool) {
	rel, ok := r.RelPos(pos, orient)
	if !ok || rel < 0 || rel >= r.Len() {
		return 0, false
	}
	if r.Len() == 1 {
		return 0, true
	}
	return float64(rel) / float64(r.Len()-1), true
}

// RelPosRatioOf returns RelPosOf(other, orient) divided by other.Len()-1,
// the offset of other measured in other's own length.  For a single
// position other, which has no length to scale by, it returns the offset
// itself.  ok is false if the labels are not shared or other is empty.
func (r Region) RelPosRatioOf(other Region, orient bool) (float64, bool) {
	if other.IsEmpty() {
		return 0, false
	}
	rel, ok := r.RelPosOf(other, orient)
	if !ok {
		return 0, false
	}
	if other.Len() == 1 {
		return float64(rel), true
	}
	return float64(rel) / float64(other.Len()-1), true
}

// Slice returns the sub-region starting at At(offset) and spanning length
// positions, truncated at Last().  length <= 0 means "to the end".  ok is false
// if At(offset) is outside the region.
func (r Region) Slice(offset, length int) (Region, bool) {
	first := r.At(offset)
	if first == 0 {
		return Region{}, false
	}
	if length <= 0 {
		length = r.Len()
	}
	last := first + length - 1
	if last > r.last {
		last = r.last
	}
	return newRegion(r.label, first, last, r.strand), true
}

// Slices partitions the region into consecutive regions of at most length
// positions, in increasing order.  length <= 0 yields the whole region as one
// slice, and an empty region yields no slices.
func (r Region) Slices(length int) []Region {
	if r.IsEmpty() {
		return nil
	}
	if length <= 0 {
		length = r.Len()
	}
	n := r.Len()
	slices := make([]Region, 0, (n+length-1)/length)
	for offset := 0; offset < n; offset += length {
		if s, ok := r.Slice(offset, length); ok {
			slices = append(slices, s)
		}
	}
	return slices
}
