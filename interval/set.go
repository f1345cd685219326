package interval

import (
	"fmt"
	"math"
	"sort"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/genomic/region"
)

// PosType is Set's coordinate type.
type PosType int32

const posTypeMax = math.MaxInt32

// searchPosType returns the index of x in a[], or the position where x would
// be inserted if x isn't in a (this could be len(a)).  It's exactly the same
// as sort.SearchInts(), except for PosType.
func searchPosType(a []PosType, x PosType) int {
	return sort.Search(len(a), func(i int) bool { return a[i] >= x })
}

// fwdsearchPosType checks a[idx], then a[idx + 1], then a[idx + 3], then
// a[idx + 7], etc., and then uses binary search to finish the job.  It's
// usually a better choice than searchPosType when iterating.
func fwdsearchPosType(a []PosType, x PosType, idx int) int {
	nextIncr := 1
	startIdx := idx
	endIdx := len(a)
	for idx < endIdx {
		if a[idx] >= x {
			endIdx = idx
			break
		}
		startIdx = idx + 1
		idx += nextIncr
		nextIncr *= 2
	}
	for startIdx < endIdx {
		midIdx := int(uint(startIdx+endIdx) >> 1)
		if a[midIdx] >= x {
			endIdx = midIdx
		} else {
			startIdx = midIdx + 1
		}
	}
	return startIdx
}

// Set is a union of regions, kept per label as a length-2N sequence of
// endpoints: the 0-based start of interval #k is in element [2k], its
// (exclusive) end in element [2k+1], and the intervals are stored in
// increasing order.  A label can be present with no intervals at all; it was
// mentioned by an empty region or BED line.
//
// Contains caches its search position, so a Set must not be queried
// concurrently.  Use Clone to get an independent cursor on the same data.
type Set struct {
	// labelMap is a label-keyed map with disjoint-interval-set values.  Always
	// initialized.
	labelMap map[string][]PosType
	// bases is the number of positions covered.
	bases int

	// lastEndpoints points to the disjoint-interval-set for the most recently
	// queried label.
	lastEndpoints []PosType
	// lastLabel is the last queried label.  lastValid is false until the first
	// query, since "" is a valid (if never present) key.
	lastLabel string
	lastValid bool
	// lastPos is the last queried 1-based position.
	lastPos PosType
	// lastIdx is searchPosType(lastEndpoints, lastPos).  Cached to accelerate
	// sequential queries.
	lastIdx int
	// isSequential is true if all queries since the last label change have
	// been in order of nondecreasing position.
	isSequential bool
}

// setBuilder merges intervals arriving in sorted order into a Set.
type setBuilder struct {
	set                *Set
	label              string
	started            bool
	prevStart, prevEnd PosType
	endpoints          []PosType
}

func newSetBuilder() *setBuilder {
	return &setBuilder{set: &Set{labelMap: make(map[string][]PosType)}}
}

// add appends the 0-based half-open interval [start, end) on label.  Labels
// must arrive in contiguous groups, and starts in nondecreasing order within
// a group.  An empty interval only records the label.
func (b *setBuilder) add(label string, start, end PosType) error {
	if start < 0 {
		return fmt.Errorf("interval: negative start coordinate %d", start)
	}
	if end < start || end >= posTypeMax {
		return fmt.Errorf("interval: invalid coordinate pair [%d, %d)", start, end)
	}
	if !b.started || label != b.label {
		b.flush()
		if _, found := b.set.labelMap[label]; found {
			return fmt.Errorf("interval: unsorted input (split label %v)", label)
		}
		// Distinguish between mentioned labels without any covered positions
		// and unmentioned ones.
		b.set.labelMap[label] = []PosType{}
		b.label, b.started = label, true
		b.endpoints = []PosType{}
		b.prevStart, b.prevEnd = -1, -1
	}
	if end == start {
		return nil
	}
	switch {
	case b.prevEnd == -1:
		b.prevStart, b.prevEnd = start, end
	case start > b.prevEnd:
		// New interval doesn't touch the previous one, so we can save the
		// previous one.
		b.endpoints = append(b.endpoints, b.prevStart, b.prevEnd)
		b.set.bases += int(b.prevEnd - b.prevStart)
		b.prevStart, b.prevEnd = start, end
	case start < b.prevStart:
		return fmt.Errorf("interval: unsorted input on label %v at %d", label, start)
	case end > b.prevEnd:
		b.prevEnd = end
	}
	return nil
}

func (b *setBuilder) flush() {
	if !b.started {
		return
	}
	if b.prevEnd != -1 {
		b.endpoints = append(b.endpoints, b.prevStart, b.prevEnd)
		b.set.bases += int(b.prevEnd - b.prevStart)
	}
	b.set.labelMap[b.label] = b.endpoints
}

func (b *setBuilder) finish() *Set {
	b.flush()
	b.started = false
	return b.set
}

// NewSet returns the union of regions, which may arrive in any order.  Every
// region needs a label; a label-only region records the label without
// covering any position.  Strands are ignored.
func NewSet(regions []region.Region) (*Set, error) {
	sorted := make([]region.Region, len(regions))
	copy(sorted, regions)
	sort.SliceStable(sorted, func(i, j int) bool { return region.Compare(sorted[i], sorted[j]) < 0 })
	b := newSetBuilder()
	for _, r := range sorted {
		if r.Label() == "" {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("interval: region %v has no label", r))
		}
		if r.Last() >= posTypeMax {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("interval: region %v out of range", r))
		}
		start := PosType(r.First() - 1)
		if r.IsEmpty() {
			start = 0
		}
		if err := b.add(r.Label(), start, PosType(r.Last())); err != nil {
			return nil, errors.E(errors.Invalid, err)
		}
	}
	return b.finish(), nil
}

// Contains checks whether the 1-based position pos on label is covered.
func (s *Set) Contains(label string, pos int) bool {
	if pos <= 0 || pos >= posTypeMax {
		return false
	}
	// The interval holding 0-based pos-1 is the one whose end is the first
	// endpoint >= pos.
	x := PosType(pos)
	if !s.lastValid || label != s.lastLabel {
		s.lastLabel, s.lastValid = label, true
		s.lastEndpoints = s.labelMap[label]
		if s.lastEndpoints == nil {
			return false
		}
		s.lastIdx = searchPosType(s.lastEndpoints, x)
		s.lastPos = x
		s.isSequential = true
		return s.lastIdx&1 == 1
	}
	if s.lastEndpoints == nil {
		return false
	}
	if s.isSequential {
		if x >= s.lastPos {
			s.lastIdx = fwdsearchPosType(s.lastEndpoints, x, s.lastIdx)
			s.lastPos = x
			return s.lastIdx&1 == 1
		}
		s.isSequential = false
	}
	return searchPosType(s.lastEndpoints, x)&1 == 1
}

// Covers checks whether every position of r is covered.  Empty and
// label-less regions are never covered.
func (s *Set) Covers(r region.Region) bool {
	if r.IsEmpty() || r.Last() >= posTypeMax {
		return false
	}
	endpoints := s.labelMap[r.Label()]
	idx := searchPosType(endpoints, PosType(r.First()))
	return idx&1 == 1 && endpoints[idx] >= PosType(r.Last())
}

// Intersect returns the covered parts of r, in order, each carrying r's
// label and strand.
func (s *Set) Intersect(r region.Region) []region.Region {
	if r.IsEmpty() {
		return nil
	}
	endpoints := s.labelMap[r.Label()]
	first, last := PosType(r.First()-1), PosType(minInt(r.Last(), posTypeMax-1))
	var out []region.Region
	for i := searchPosType(endpoints, first+1) &^ 1; i < len(endpoints) && endpoints[i] < last; i += 2 {
		start, end := endpoints[i], endpoints[i+1]
		if start < first {
			start = first
		}
		if end > last {
			end = last
		}
		piece, err := region.New(r.Label(), int(start)+1, int(end), r.Strand().String())
		if err != nil {
			panic(err)
		}
		out = append(out, piece)
	}
	return out
}

// Regions returns the merged regions on label, in order.
func (s *Set) Regions(label string) []region.Region {
	endpoints := s.labelMap[label]
	out := make([]region.Region, 0, len(endpoints)/2)
	for i := 0; i < len(endpoints); i += 2 {
		r, err := region.New(label, int(endpoints[i])+1, int(endpoints[i+1]), "")
		if err != nil {
			panic(err)
		}
		out = append(out, r)
	}
	return out
}

// Labels returns every label in the set, including mentioned labels without
// covered positions, sorted.
func (s *Set) Labels() []string {
	labels := make([]string, 0, len(s.labelMap))
	for label := range s.labelMap {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Bases returns the number of positions covered.
func (s *Set) Bases() int { return s.bases }

// Clone returns a new Set which shares the interval data, but has its own
// search state.
func (s *Set) Clone() *Set {
	return &Set{labelMap: s.labelMap, bases: s.bases}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
