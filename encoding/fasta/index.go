package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
)

// faiBuilder accumulates the index row of the sequence being read.
type faiBuilder struct {
	w   *tsv.Writer
	row faiRow
	// open is set once a header line has been seen.
	open bool
}

func (b *faiBuilder) start(name string, offset int64) {
	b.row = faiRow{Name: name, Offset: offset}
	b.open = true
}

func (b *faiBuilder) addLine(fullLen, baseLen int) {
	if b.row.LineWidth == 0 {
		b.row.LineWidth = int64(fullLen)
		b.row.LineBases = int64(baseLen)
	}
	b.row.Length += int64(baseLen)
}

func (b *faiBuilder) flush() error {
	b.w.WriteString(b.row.Name)
	b.w.WriteInt64(b.row.Length)
	b.w.WriteInt64(b.row.Offset)
	b.w.WriteInt64(b.row.LineBases)
	b.w.WriteInt64(b.row.LineWidth)
	return b.w.EndLine()
}

// GenerateIndex generates an index (*.fai) from FASTA.  The index can be later
// passed to NewIndexed() to random-access the FASTA file quickly.
//
// The index format is defined by "samtool faidx"
// (http://www.htslib.org/doc/faidx.html).
func GenerateIndex(out io.Writer, in io.Reader) error {
	var (
		b       = faiBuilder{w: tsv.NewWriter(out)}
		r       = bufio.NewReader(in)
		cumByte int64
	)
	for {
		fullLine, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return err
		}
		cumByte += int64(len(fullLine))
		if line := bytes.TrimRight(fullLine, "\r\n"); len(line) > 0 {
			if line[0] == '>' {
				if b.open {
					if err := b.flush(); err != nil {
						return err
					}
				}
				b.start(seqName(line[1:]), cumByte)
			} else if !b.open {
				return errors.E(errors.Invalid, "malformed FASTA file: sequence before the first header")
			} else {
				b.addLine(len(fullLine), len(line))
			}
		}
		if err == io.EOF {
			break
		}
	}
	if cumByte == 0 {
		return errors.E(errors.Invalid, "empty FASTA file")
	}
	if b.open {
		if err := b.flush(); err != nil {
			return err
		}
	}
	return b.w.Flush()
}

// seqName returns the sequence name in a header line stripped of its '>'.
func seqName(header []byte) string {
	if i := bytes.IndexByte(header, ' '); i >= 0 {
		header = header[:i]
	}
	return string(header)
}
