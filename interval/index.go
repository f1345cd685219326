package interval

import (
	"sort"

	"github.com/biogo/store/interval"
	"github.com/grailbio/genomic/region"
)

// indexEntry adapts a region to interval.IntInterface, using 0-based
// half-open coordinates.
type indexEntry struct {
	start, end int
	uid        uintptr
}

func newIndexEntry(r region.Region, uid uintptr) indexEntry {
	return indexEntry{start: r.First() - 1, end: r.Last(), uid: uid}
}

func (e indexEntry) Overlap(b interval.IntRange) bool {
	return e.end > b.Start && e.start < b.End
}

func (e indexEntry) ID() uintptr { return e.uid }

func (e indexEntry) Range() interval.IntRange {
	return interval.IntRange{Start: e.start, End: e.end}
}

// Index answers overlap queries over a fixed collection of regions.  Unlike
// Set it keeps every region as given, duplicates included.  An Index is
// safe for concurrent queries once built.
type Index struct {
	regions []region.Region
	// trees holds one tree per label.  Label-less regions live under "".
	trees map[string]*interval.IntTree
}

// NewIndex builds an Index over regions.  Empty regions can never overlap
// anything and are dropped.
func NewIndex(regions []region.Region) (*Index, error) {
	idx := &Index{trees: make(map[string]*interval.IntTree)}
	for _, r := range regions {
		if r.IsEmpty() {
			continue
		}
		tree := idx.trees[r.Label()]
		if tree == nil {
			tree = &interval.IntTree{}
			idx.trees[r.Label()] = tree
		}
		uid := uintptr(len(idx.regions))
		idx.regions = append(idx.regions, r)
		if err := tree.Insert(newIndexEntry(r, uid), true); err != nil {
			return nil, err
		}
	}
	for _, tree := range idx.trees {
		tree.AdjustRanges()
	}
	return idx, nil
}

// Len returns the number of indexed regions.
func (idx *Index) Len() int { return len(idx.regions) }

// Overlapping returns the indexed regions r for which r.Shares(q), sorted by
// region.Compare.  A label-less q matches regions on every label, and
// label-less indexed regions match every q.
func (idx *Index) Overlapping(q region.Region) []region.Region {
	if q.IsEmpty() {
		return nil
	}
	query := newIndexEntry(q, 0)
	var out []region.Region
	collect := func(tree *interval.IntTree) {
		if tree == nil {
			return
		}
		for _, hit := range tree.Get(query) {
			out = append(out, idx.regions[hit.ID()])
		}
	}
	if q.Label() == "" {
		for _, tree := range idx.trees {
			collect(tree)
		}
	} else {
		collect(idx.trees[q.Label()])
		collect(idx.trees[""])
	}
	sort.SliceStable(out, func(i, j int) bool { return region.Compare(out[i], out[j]) < 0 })
	return out
}
