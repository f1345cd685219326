package gff

import (
	"bufio"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
)

const maxLineSize = 64 << 20

// Item is one parsed line: exactly one of Record and Comment is non-nil.
type Item struct {
	Record  *Record
	Comment *Comment
}

// Reader reads GFF3 lines one at a time, skipping empty lines.  Readers are
// not threadsafe.
//
//   r := gff.NewReader(in)
//   for r.Scan() {
//     item := r.Item()
//     ...
//   }
//   if err := r.Err(); err != nil { ... }
type Reader struct {
	b    *bufio.Scanner
	item Item
	line int
	err  error
}

// NewReader creates a Reader on in.
func NewReader(in io.Reader) *Reader {
	b := bufio.NewScanner(in)
	b.Buffer(nil, maxLineSize)
	return &Reader{b: b}
}

// Scan reads the next non-empty line.  Once Scan returns false, it never
// returns true again; Err then tells whether reading stopped because of an
// error.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.b.Scan() {
		r.line++
		text := r.b.Text()
		if text == "" {
			continue
		}
		if text[0] == '#' {
			c, err := ParseComment(text)
			if err != nil {
				return r.fail(err)
			}
			r.item = Item{Comment: &c}
			return true
		}
		rec, err := ParseRecord(text)
		if err != nil {
			return r.fail(err)
		}
		r.item = Item{Record: &rec}
		return true
	}
	if r.err = r.b.Err(); r.err == nil {
		r.err = io.EOF
	}
	return false
}

func (r *Reader) fail(err error) bool {
	r.err = errors.E(errors.Invalid, fmt.Sprintf("gff: line %d", r.line), err)
	return false
}

// Item returns the line read by the last successful Scan.
func (r *Reader) Item() Item { return r.item }

// Line returns the 1-based number of the last line read.
func (r *Reader) Line() int { return r.line }

// Err returns the reading error, if any.
func (r *Reader) Err() error {
	if r.err == io.EOF {
		return nil
	}
	return r.err
}
