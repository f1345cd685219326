package vcf

import "strings"

// fixedColumns are the mandatory leading columns of the header line.
var fixedColumns = []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}

const formatColumn = "FORMAT"

// Header is the "#CHROM ..." line.
type Header struct {
	Columns []string
	// Samples are the column names after FORMAT.
	Samples []string
}

// ParseHeader parses the "#CHROM" line.  It holds either the eight fixed
// columns, or those followed by FORMAT and at least one sample.
func ParseHeader(line string) (Header, error) {
	cols := strings.Split(line, "\t")
	n := len(cols)
	if n < len(fixedColumns) || n == len(fixedColumns)+1 {
		return Header{}, invalidf("wrong number of header columns (%d): %q", n, line)
	}
	for i, want := range fixedColumns {
		if cols[i] != want {
			return Header{}, invalidf("header column %d is %q, expected %q", i+1, cols[i], want)
		}
	}
	h := Header{Columns: cols}
	if n > len(fixedColumns) {
		if cols[len(fixedColumns)] != formatColumn {
			return Header{}, invalidf("header column 9 is %q, expected %q", cols[len(fixedColumns)], formatColumn)
		}
		h.Samples = cols[len(fixedColumns)+1:]
	}
	return h, nil
}

// HasSamples reports whether the file carries genotype columns.
func (h Header) HasSamples() bool { return len(h.Samples) > 0 }

// SampleIndex returns the position of name among the samples, or -1.
func (h Header) SampleIndex(name string) int {
	for i, s := range h.Samples {
		if s == name {
			return i
		}
	}
	return -1
}
