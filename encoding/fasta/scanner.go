package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/grailbio/base/log"
	"github.com/grailbio/genomic/region"
	"github.com/grailbio/genomic/sequence"
	"github.com/pkg/errors"
)

// Scanner reads FASTA records one at a time.  Spaces inside sequence lines
// are dropped.  Each record is located at "<name>:1-<len>", or at ":1-<len>"
// if the name cannot be used as a region label, in which case the region error
// is logged.
//
//   sc := fasta.NewScanner(r, fasta.Upper)
//   for sc.Scan() {
//     s := sc.Seq()
//     ...
//   }
//   if err := sc.Err(); err != nil { ... }
type Scanner struct {
	sc   *bufio.Scanner
	opts Opts
	seq  sequence.Seq
	err  error
	// next is the name from a header already consumed.
	next     string
	haveNext bool
	done     bool
	buf      bytes.Buffer
}

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader, opts ...Opt) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, bufferInitSize)
	return &Scanner{sc: sc, opts: parseOpts(opts)}
}

// Scan reads the next record.  It returns false at end of input or on error.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.done {
		return false
	}
	name, open := s.next, s.haveNext
	s.haveNext = false
	s.buf.Reset()
	for s.sc.Scan() {
		line := bytes.TrimRight(s.sc.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if open {
				s.next, s.haveNext = seqName(line[1:]), true
				return s.emit(name)
			}
			name, open = seqName(line[1:]), true
			continue
		}
		if !open {
			s.err = errors.Errorf("malformed FASTA file: sequence before the first header")
			return false
		}
		s.appendBases(line)
	}
	if err := s.sc.Err(); err != nil {
		s.err = errors.Wrap(err, "couldn't read FASTA data")
		return false
	}
	s.done = true
	if !open {
		return false
	}
	return s.emit(name)
}

func (s *Scanner) appendBases(line []byte) {
	for _, c := range line {
		if c == ' ' {
			continue
		}
		if s.opts.Upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		s.buf.WriteByte(c)
	}
}

func (s *Scanner) emit(name string) bool {
	bases := s.buf.String()
	var loc region.Region
	if bases != "" {
		var err error
		if loc, err = region.New(name, 1, len(bases), ""); err != nil {
			log.Printf("fasta: record %s is not a region label, locating it at :1-%d: %v", name, len(bases), err)
			loc, _ = region.New("", 1, len(bases), "")
		}
	}
	seq, err := sequence.New(name, bases, loc)
	if err != nil {
		s.err = err
		return false
	}
	s.seq = seq
	return true
}

// Seq returns the record read by the last successful Scan.
func (s *Scanner) Seq() sequence.Seq { return s.seq }

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error { return s.err }
