// Package sequence binds nucleotide sequences to the genomic region they were
// read from.
package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/genomic/region"
)

// Seq is a named sequence together with its location.  The location always
// spans exactly len(seq) positions; an empty sequence has the empty location.
// Seq is immutable.
type Seq struct {
	name string
	seq  string
	loc  region.Region
}

// New returns a sequence located at loc.  An empty loc places the sequence at
// ":1-<len>".  It is an error for a non-empty loc to differ in length from seq,
// or to give a location to an empty sequence.
func New(name, seq string, loc region.Region) (Seq, error) {
	s := Seq{name: name}
	if seq == "" {
		if !loc.IsEmpty() {
			return Seq{}, errors.E(errors.Invalid,
				fmt.Sprintf("sequence %q: location %v given for an empty sequence", name, loc))
		}
		return s, nil
	}
	s.seq = seq
	return s.WithLoc(loc)
}

// Must is like New but panics on error.
func Must(name, seq string, loc region.Region) Seq {
	s, err := New(name, seq, loc)
	if err != nil {
		panic(err)
	}
	return s
}

// WithLoc returns s moved to loc.  See New for the rules on loc.
func (s Seq) WithLoc(loc region.Region) (Seq, error) {
	switch {
	case s.seq == "" && !loc.IsEmpty():
		return s, errors.E(errors.Invalid,
			fmt.Sprintf("sequence %q: location %v given for an empty sequence", s.name, loc))
	case s.seq == "":
		s.loc = region.Region{}
	case loc.IsEmpty():
		s.loc, _ = region.New("", 1, len(s.seq), "")
	case loc.Len() != len(s.seq):
		return s, errors.E(errors.Invalid,
			fmt.Sprintf("sequence %q: location %v spans %d positions, sequence has %d", s.name, loc, loc.Len(), len(s.seq)))
	default:
		s.loc = loc
	}
	return s, nil
}

// Name returns the sequence name.
func (s Seq) Name() string { return s.name }

// Seq returns the bases.
func (s Seq) Seq() string { return s.seq }

// Loc returns the location.
func (s Seq) Loc() region.Region { return s.loc }

// Len returns the number of bases.
func (s Seq) Len() int { return len(s.seq) }

// IsEmpty reports whether s has no bases.
func (s Seq) IsEmpty() bool { return s.seq == "" }

// At returns the base at 0-based index i.
func (s Seq) At(i int) (byte, error) {
	if i < 0 || i >= len(s.seq) {
		return 0, errors.E(errors.Invalid,
			fmt.Sprintf("sequence %q: index %d out of range [0, %d)", s.name, i, len(s.seq)))
	}
	return s.seq[i], nil
}

// AtRegion returns the base at the single position pos, which must lie inside
// Loc().
func (s Seq) AtRegion(pos region.Region) (byte, error) {
	if !pos.IsPoint() {
		return 0, errors.E(errors.Invalid,
			fmt.Sprintf("sequence %q: %v is not a single position", s.name, pos))
	}
	if !pos.Inside(s.loc) {
		return 0, errors.E(errors.NotExist,
			fmt.Sprintf("sequence %q: %v is outside %v", s.name, pos, s.loc))
	}
	return s.seq[pos.First()-s.loc.First()], nil
}

// SubSeq returns n bases starting at 0-based offset.  n <= 0 means "to the
// end".  The requested range must lie inside the sequence.
func (s Seq) SubSeq(offset, n int) (string, error) {
	if n <= 0 {
		n = len(s.seq) - offset
	}
	if offset < 0 || offset >= len(s.seq) || offset+n > len(s.seq) {
		return "", errors.E(errors.Invalid,
			fmt.Sprintf("sequence %q: range (%d, %d) out of range [0, %d)", s.name, offset, n, len(s.seq)))
	}
	return s.seq[offset : offset+n], nil
}

// Slice returns the part of s inside r.  The result keeps the label and
// strand of Loc(), narrowed to the positions shared with r.  ok is false if
// they do not overlap.
func (s Seq) Slice(r region.Region) (Seq, bool) {
	shared, ok := s.loc.Shared(r)
	if !ok {
		return Seq{}, false
	}
	loc, err := s.loc.WithRange(shared.First(), shared.Last())
	if err != nil {
		return Seq{}, false
	}
	offset := shared.First() - s.loc.First()
	return Seq{
		name: s.name,
		seq:  s.seq[offset : offset+shared.Len()],
		loc:  loc,
	}, true
}

// Oriented returns the bases as read along the strand of Loc(): the reverse
// complement for a reverse-stranded location, the bases unchanged otherwise.
func (s Seq) Oriented() string {
	if s.loc.Strand() == region.Reverse {
		return ReverseComplement(s.seq)
	}
	return s.seq
}

// CountGC returns the number of G and C bases, in either case.
func (s Seq) CountGC() int {
	n := 0
	for i := 0; i < len(s.seq); i++ {
		switch s.seq[i] {
		case 'G', 'g', 'C', 'c':
			n++
		}
	}
	return n
}

// GCRatio returns CountGC() / Len(), or 0 for an empty sequence.
func (s Seq) GCRatio() float64 {
	if s.seq == "" {
		return 0
	}
	return float64(s.CountGC()) / float64(len(s.seq))
}

// FASTA renders s as a FASTA record.  Sequence lines hold lineWidth bases
// (all on one line if lineWidth <= 0); with chunk > 0 each line is further
// split into space-separated groups of chunk bases.  withLoc appends the
// location to the header, separated by a space.
func (s Seq) FASTA(lineWidth, chunk int, withLoc bool) string {
	var b strings.Builder
	b.WriteByte('>')
	b.WriteString(s.name)
	if withLoc {
		b.WriteByte(' ')
		b.WriteString(s.loc.String())
	}
	if lineWidth <= 0 {
		lineWidth = len(s.seq)
	}
	for start := 0; start < len(s.seq); start += lineWidth {
		end := start + lineWidth
		if end > len(s.seq) {
			end = len(s.seq)
		}
		b.WriteByte('\n')
		writeChunked(&b, s.seq[start:end], chunk)
	}
	b.WriteByte('\n')
	return b.String()
}

func writeChunked(b *strings.Builder, line string, chunk int) {
	if chunk <= 0 {
		b.WriteString(line)
		return
	}
	for start := 0; start < len(line); start += chunk {
		if start > 0 {
			b.WriteByte(' ')
		}
		end := start + chunk
		if end > len(line) {
			end = len(line)
		}
		b.WriteString(line[start:end])
	}
}

// String returns "IDX=<name>;LEN=<len>;LOC=<loc>;SEQ=<bases>".
func (s Seq) String() string {
	return "IDX=" + s.name + ";LEN=" + strconv.Itoa(len(s.seq)) + ";LOC=" + s.loc.String() + ";SEQ=" + s.seq
}

// Less orders sequences by location, then name, then bases.
func (s Seq) Less(other Seq) bool {
	if c := region.Compare(s.loc, other.loc); c != 0 {
		return c < 0
	}
	if s.name != other.name {
		return s.name < other.name
	}
	return s.seq < other.seq
}
