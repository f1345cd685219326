package vcf

import (
	"bufio"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
)

const maxLineSize = 64 << 20

// Item is one parsed line: exactly one field is non-nil.
type Item struct {
	Meta   *Meta
	Header *Header
	Record *Record
}

// Reader reads a VCF file line by line.  Readers are not threadsafe.
type Reader struct {
	b      *bufio.Scanner
	item   Item
	header *Header
	picked []int
	line   int
	err    error
}

// NewReader creates a Reader on in.
func NewReader(in io.Reader) *Reader {
	b := bufio.NewScanner(in)
	b.Buffer(nil, maxLineSize)
	return &Reader{b: b}
}

// Scan reads the next line.  Once Scan returns false, it never returns true
// again; Err then tells whether reading stopped because of an error.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.b.Scan() {
		if r.err = r.b.Err(); r.err == nil {
			r.err = io.EOF
		}
		return false
	}
	r.line++
	line := r.b.Text()
	switch {
	case line == "":
		return r.fail(invalidf("empty line"))
	case len(line) >= 2 && line[:2] == "##":
		if r.header != nil {
			return r.fail(invalidf("meta line after the header"))
		}
		m, err := ParseMeta(line)
		if err != nil {
			return r.fail(err)
		}
		r.item = Item{Meta: &m}
	case line[0] == '#':
		if r.header != nil {
			return r.fail(invalidf("duplicate header line"))
		}
		h, err := ParseHeader(line)
		if err != nil {
			return r.fail(err)
		}
		r.header = &h
		r.item = Item{Header: &h}
	default:
		if r.header == nil {
			return r.fail(invalidf("record before the header line"))
		}
		rec, err := ParseRecord(line, *r.header)
		if err != nil {
			return r.fail(err)
		}
		rec.picked = r.picked
		r.item = Item{Record: &rec}
	}
	return true
}

func (r *Reader) fail(err error) bool {
	r.err = errors.E(errors.Invalid, fmt.Sprintf("vcf: line %d", r.line), err)
	return false
}

// Item returns the line read by the last successful Scan.
func (r *Reader) Item() Item { return r.item }

// Header returns the header line, or nil before it has been read.
func (r *Reader) Header() *Header { return r.header }

// SelectSamples restricts Record.Genotypes of subsequent records to the named
// samples, in the given order.  An empty list selects no sample.  It must be
// called after the header line has been read.
func (r *Reader) SelectSamples(names []string) error {
	if r.header == nil {
		return errors.E(errors.Invalid, "vcf: samples selected before the header line")
	}
	picked := make([]int, 0, len(names))
	for _, name := range names {
		i := r.header.SampleIndex(name)
		if i < 0 {
			return errors.E(errors.NotExist, fmt.Sprintf("vcf: sample %s not found in header", name))
		}
		picked = append(picked, i)
	}
	r.picked = picked
	return nil
}

// Err returns the reading error, if any.
func (r *Reader) Err() error {
	if r.err == io.EOF {
		return nil
	}
	return r.err
}
