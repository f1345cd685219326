// Package fasta contains code for parsing (optionally indexed) FASTA files.
// See http://www.htslib.org/doc/faidx.html.  Briefly, FASTA files consist of a
// number of named sequences that may be interrupted by newlines.  For example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Note: Sequence names are defined to be the stretch of characters excluding
// spaces immediately after '>'.  Any text appear after a space are ignored.
// For example, '>chr1 A viral sequence' becomes 'chr1'.
//
// Sequences can be fetched by 0-based coordinates with Fasta.Get, or by
// region.Region with Slice.
package fasta

import (
	"io"

	"github.com/pkg/errors"
)

const (
	bufferInitSize = 1024 * 1024 * 300 // 300 MB
)

// Fasta represents FASTA-formatted data, consisting of a set of named
// sequences.
type Fasta interface {
	// Get returns a substring of the given sequence name at the given
	// coordinates, which are treated as a 0-based half-open interval
	// [start, end). Get is thread-safe.
	Get(seqName string, start, end uint64) (string, error)

	// Len returns the length of the given sequence.
	Len(seqName string) (uint64, error)

	// SeqNames returns the names of all sequences, in the order of appearance in
	// the FASTA file.
	SeqNames() []string
}

// Opts controls how sequence lines are read.
type Opts struct {
	// Upper converts bases to upper case.
	Upper bool
}

// Opt sets an option.
type Opt func(*Opts)

// Upper is an Opt that converts bases to upper case.
func Upper(o *Opts) { o.Upper = true }

func parseOpts(opts []Opt) Opts {
	var o Opts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type fasta struct {
	seqs     map[string]string
	seqNames []string
}

// New creates a new Fasta that holds all the FASTA data from the given reader
// in memory.
func New(r io.Reader, opts ...Opt) (Fasta, error) {
	f := &fasta{seqs: make(map[string]string)}
	sc := NewScanner(r, opts...)
	for sc.Scan() {
		s := sc.Seq()
		if _, ok := f.seqs[s.Name()]; ok {
			return nil, errors.Errorf("duplicate sequence name: %s", s.Name())
		}
		f.seqs[s.Name()] = s.Seq()
		f.seqNames = append(f.seqNames, s.Name())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// Get implements Fasta.Get().
func (f *fasta) Get(seqName string, start, end uint64) (string, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return "", errors.Errorf("sequence not found: %s", seqName)
	}
	if end <= start {
		return "", errors.Errorf("start must be less than end")
	}
	if end > uint64(len(s)) {
		return "", errors.Errorf("invalid query range %d - %d for sequence %s with length %d",
			start, end, seqName, len(s))
	}
	return s[start:end], nil
}

// Len implements Fasta.Len().
func (f *fasta) Len(seq string) (uint64, error) {
	s, ok := f.seqs[seq]
	if !ok {
		return 0, errors.Errorf("sequence not found: %s", seq)
	}
	return uint64(len(s)), nil
}

// SeqNames implements Fasta.SeqNames().
func (f *fasta) SeqNames() []string {
	return f.seqNames
}
