package fasta

import (
	"github.com/grailbio/base/errors"
	"github.com/grailbio/genomic/region"
	"github.com/grailbio/genomic/sequence"
)

// Slice fetches the bases of r from fa.  The region label names the sequence;
// an empty range means the whole sequence.  The bases are returned in
// reference orientation and the strand travels with the location, so
// Seq.Oriented() yields the reverse complement for a reverse-stranded r.
func Slice(fa Fasta, r region.Region) (sequence.Seq, error) {
	name := r.Label()
	if name == "" {
		return sequence.Seq{}, errors.E(errors.Invalid, "fasta: region "+r.String()+" does not name a sequence")
	}
	n, err := fa.Len(name)
	if err != nil {
		return sequence.Seq{}, errors.E(errors.NotExist, err)
	}
	if n == 0 {
		return sequence.New(name, "", region.Region{})
	}
	loc := r
	if r.IsEmpty() {
		if loc, err = r.WithRange(1, int(n)); err != nil {
			return sequence.Seq{}, err
		}
	} else if uint64(r.Last()) > n {
		return sequence.Seq{}, errors.E(errors.Invalid, "fasta: region "+r.String()+" extends past the end of "+name)
	}
	bases, err := fa.Get(name, uint64(loc.First()-1), uint64(loc.Last()))
	if err != nil {
		return sequence.Seq{}, err
	}
	return sequence.New(name, bases, loc)
}
