package region

import (
	"strconv"
	"strings"

	farm "github.com/dgryski/go-farm"
)

// Region is a label plus a 1-based closed range [first, last] and a strand.
//
// Invariants:
//   first == 0 iff last == 0 iff Len() == 0 (the empty region);
//   otherwise 1 <= first <= last;
//   label contains no ':'.
type Region struct {
	label  string
	first  int
	last   int
	strand Strand
}

// newRegion builds a Region from values already known to be valid.
func newRegion(label string, first, last int, strand Strand) Region {
	return Region{label: label, first: first, last: last, strand: strand}
}

// New returns the region label:first-last/strand.  last == 0 means the single
// position first, and first == 0 the empty region.  Any failure is reported
// against the whole (label, first, last, strand) tuple.
func New(label string, first, last int, strand string) (Region, error) {
	r, err := build(label, first, last, strand)
	if err != nil {
		return Region{}, newFieldsError(err.Kind, label, first, last, strand)
	}
	return r, nil
}

func build(label string, first, last int, strand string) (Region, *Error) {
	if err := checkLabel(label); err != nil {
		return Region{}, err
	}
	first, last, err := checkRange(first, last)
	if err != nil {
		return Region{}, err
	}
	s, err := parseStrand(strand)
	if err != nil {
		return Region{}, err
	}
	return newRegion(label, first, last, s), nil
}

// NewPos returns the single-position region label:pos/strand.
func NewPos(label string, pos int, strand string) (Region, error) {
	return New(label, pos, pos, strand)
}

// NewLabel returns the empty region carrying only a label and a strand, e.g.
// "chr1:0/+".
func NewLabel(label, strand string) (Region, error) {
	return New(label, 0, 0, strand)
}

// MustParse is like Parse but panics on error.  It is meant for literals.
func MustParse(query string) Region {
	r, err := Parse(query)
	if err != nil {
		panic(err)
	}
	return r
}

func checkLabel(label string) *Error {
	if strings.IndexByte(label, ':') >= 0 {
		return newError(ChrFormat, label)
	}
	return nil
}

// checkRange validates the bounds and returns them in canonical form.
func checkRange(first, last int) (int, int, *Error) {
	if first < 0 || last < 0 {
		return 0, 0, newBoundsError(PosFormat, first, last)
	}
	if last == 0 {
		return first, first, nil
	}
	if first == 0 || last < first {
		return 0, 0, newBoundsError(PosRange, first, last)
	}
	return first, last, nil
}

// parseRange parses "N" or "N-M".  The empty string is the empty range.
func parseRange(text string) (int, int, *Error) {
	if text == "" {
		return 0, 0, nil
	}
	switch strings.Count(text, "-") {
	case 0:
		pos, err := strconv.Atoi(text)
		if err != nil {
			return 0, 0, newError(PosFormat, text)
		}
		return checkRange(pos, pos)
	case 1:
		mark := strings.IndexByte(text, '-')
		if mark == 0 || mark == len(text)-1 {
			return 0, 0, newError(PosMissing, text)
		}
		first, ferr := strconv.Atoi(text[:mark])
		last, lerr := strconv.Atoi(text[mark+1:])
		if ferr != nil || lerr != nil {
			return 0, 0, newError(PosFormat, text)
		}
		return checkRange(first, last)
	}
	return 0, 0, newError(PosFormat, text)
}

// WithLabel returns r with its label replaced.
func (r Region) WithLabel(label string) (Region, error) {
	if err := checkLabel(label); err != nil {
		return r, err
	}
	r.label = label
	return r, nil
}

// WithRange returns r with its range replaced by [first, last].  last == 0
// means the single position first; first == last == 0 empties the region.
func (r Region) WithRange(first, last int) (Region, error) {
	first, last, err := checkRange(first, last)
	if err != nil {
		return r, err
	}
	r.first, r.last = first, last
	return r, nil
}

// WithRangeString returns r with its range replaced by the parsed "N" or
// "N-M" text.  The empty text empties the region.
func (r Region) WithRangeString(text string) (Region, error) {
	first, last, err := parseRange(text)
	if err != nil {
		return r, err
	}
	r.first, r.last = first, last
	return r, nil
}

// WithPos returns r reduced to the single position pos.
func (r Region) WithPos(pos int) (Region, error) {
	return r.WithRange(pos, pos)
}

// WithFirst returns r with a new first position.
func (r Region) WithFirst(first int) (Region, error) {
	return r.WithRange(first, r.last)
}

// WithLast returns r with a new last position.
func (r Region) WithLast(last int) (Region, error) {
	return r.WithRange(r.first, last)
}

// WithStrand returns r with its strand set from token (see ParseStrand).
func (r Region) WithStrand(token string) (Region, error) {
	s, err := parseStrand(token)
	if err != nil {
		return r, err
	}
	r.strand = s
	return r, nil
}

// WithStrandByte returns r with its strand set from c (see StrandOf).
func (r Region) WithStrandByte(c byte) (Region, error) {
	s, err := StrandOf(c)
	if err != nil {
		return r, err
	}
	r.strand = s
	return r, nil
}

// Resize extends the region by upstream bases before first and downstream
// bases after last; negative values shrink it.  If orient is set and the
// region is on the reverse strand the two extents are swapped.  first is
// clamped at 1; a region that shrinks past itself becomes empty, keeping its
// label and strand.  Resizing an empty region is a no-op.
func (r Region) Resize(upstream, downstream int, orient bool) Region {
	if r.IsEmpty() {
		return r
	}
	if orient && r.strand == Reverse {
		upstream, downstream = downstream, upstream
	}
	first := r.first - upstream
	last := r.last + downstream
	if first < 1 {
		first = 1
	}
	if last < 1 {
		last = 0
	}
	if first > last {
		first, last = 0, 0
	}
	r.first, r.last = first, last
	return r
}

// Label returns the label, "" for a pure region.
func (r Region) Label() string { return r.label }

// First returns the first position, 0 if empty.
func (r Region) First() int { return r.first }

// Last returns the last position, 0 if empty.
func (r Region) Last() int { return r.last }

// Range returns (First(), Last()).
func (r Region) Range() (int, int) { return r.first, r.last }

// Strand returns the strand.
func (r Region) Strand() Strand { return r.strand }

// Len returns the number of positions in the region.
func (r Region) Len() int {
	if r.first == 0 {
		return 0
	}
	return r.last - r.first + 1
}

// Center returns the midpoint of the range.
func (r Region) Center() float64 {
	return float64(r.first+r.last) / 2
}

// IsEmpty reports whether the region has no positions.
func (r Region) IsEmpty() bool { return r.first == 0 }

// IsPoint reports whether the region covers exactly one position.
func (r Region) IsPoint() bool { return r.Len() == 1 }

// IsRange reports whether the region covers more than one position.
func (r Region) IsRange() bool { return r.Len() > 1 }

// IsPure reports whether the region is non-empty and has no label.
func (r Region) IsPure() bool { return r.label == "" && !r.IsEmpty() }

// String renders the region as label:first[-last][/strand].  The empty region
// renders its range as "0".
func (r Region) String() string {
	var b strings.Builder
	b.Grow(len(r.label) + 24)
	b.WriteString(r.label)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(r.first))
	if r.IsRange() {
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(r.last))
	}
	if r.strand.IsSet() {
		b.WriteByte('/')
		b.WriteByte(byte(r.strand))
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  r is left unchanged on
// error.
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Hash returns a hash of the textual form, so equal regions hash equally.
func (r Region) Hash() uint64 {
	return farm.Hash64([]byte(r.String()))
}

// Compare orders regions by label, then first, then last, then strand.  It
// returns -1, 0 or +1.
func Compare(a, b Region) int {
	if c := strings.Compare(a.label, b.label); c != 0 {
		return c
	}
	switch {
	case a.first < b.first:
		return -1
	case a.first > b.first:
		return 1
	case a.last < b.last:
		return -1
	case a.last > b.last:
		return 1
	case a.strand < b.strand:
		return -1
	case a.strand > b.strand:
		return 1
	}
	return 0
}

// Less reports whether r sorts before other.
func (r Region) Less(other Region) bool { return Compare(r, other) < 0 }
