package interval

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
)

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		// These simple loops are better than any of the standard library
		// string-split functions when only the first few tokens are needed.
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

// BEDOpts defines behavior of this package's BED-loading function(s).
type BEDOpts struct {
	// OneBasedInput interprets the BED interval boundaries as one-based [start,
	// end] instead of the usual zero-based [start, end).
	OneBasedInput bool
}

var (
	trackPrefix   = []byte("track")
	browserPrefix = []byte("browser")
)

// isBEDHeader reports whether the line is a comment, track or browser line.
func isBEDHeader(chr []byte) bool {
	return chr[0] == '#' || bytes.Equal(chr, trackPrefix) || bytes.Equal(chr, browserPrefix)
}

func scanBED(scanner *bufio.Scanner, opts BEDOpts) (*Set, error) {
	var startSubtract int
	if opts.OneBasedInput {
		startSubtract++
	}
	b := newSetBuilder()
	var tokens [3][]byte
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		// gunsafe.BytesToString is only used for the strconv.Atoi calls, which
		// don't retain their argument.
		curLine := scanner.Bytes()
		nToken := getTokens(tokens[:], curLine)
		if nToken == 0 || isBEDHeader(tokens[0]) {
			continue
		}
		if nToken != 3 {
			return nil, fmt.Errorf("interval.scanBED: line %d has fewer tokens than expected", lineIdx)
		}
		parsedStart, err := strconv.Atoi(gunsafe.BytesToString(tokens[1]))
		if err != nil {
			return nil, fmt.Errorf("interval.scanBED: line %d: %v", lineIdx, err)
		}
		parsedStart -= startSubtract
		if parsedStart < 0 {
			return nil, fmt.Errorf("interval.scanBED: negative start coordinate %s on line %d", tokens[1], lineIdx)
		}
		parsedEnd, err := strconv.Atoi(gunsafe.BytesToString(tokens[2]))
		if err != nil {
			return nil, fmt.Errorf("interval.scanBED: line %d: %v", lineIdx, err)
		}
		if parsedEnd < parsedStart || parsedEnd >= posTypeMax {
			return nil, fmt.Errorf("interval.scanBED: invalid coordinate pair on line %d", lineIdx)
		}
		// The label must be copied, since tokens[0] refers to bytes on curLine
		// that will be overwritten soon, and it persists as a map key.
		if err := b.add(string(tokens[0]), PosType(parsedStart), PosType(parsedEnd)); err != nil {
			return nil, fmt.Errorf("interval.scanBED: line %d: %v", lineIdx, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	set := b.finish()
	log.Printf("BED loaded, %d base(s) covered.\n", set.Bases())
	return set, nil
}

// NewSetFromBED loads just the intervals from a sorted (by first coordinate)
// interval-BED, merging touching/overlapping intervals and eliminating empty
// ones in the process.
func NewSetFromBED(reader io.Reader, opts BEDOpts) (*Set, error) {
	// Scanner does not handle very long lines unless we specify an adequate
	// buffer size in advance.  Shouldn't matter for BED files, though.
	return scanBED(bufio.NewScanner(reader), opts)
}

// NewSetFromPath is a wrapper for NewSetFromBED that takes a path instead of
// an io.Reader.  Gzipped files are recognized by their extension.
func NewSetFromPath(path string, opts BEDOpts) (set *Set, err error) {
	ctx := vcontext.Background()
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return NewSetFromBED(reader, opts)
}
