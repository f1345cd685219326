package fasta

import (
	"io"
	"sort"
	"sync"

	"github.com/grailbio/base/tsv"
	"github.com/pkg/errors"
)

// faiRow is one line of a .fai index: "<sequence name>\t<length>\t<byte
// offset>\t<bases per line>\t<bytes per line>".  For example:
// "chr3\t12345\t9000\t80\t81".
type faiRow struct {
	Name      string
	Length    int64
	Offset    int64
	LineBases int64
	LineWidth int64
}

type indexEntry struct {
	length    uint64
	offset    uint64
	lineBase  uint64
	lineWidth uint64
}

type indexedFasta struct {
	seqs      map[string]indexEntry
	seqNames  []string // returned by SeqNames()
	reader    io.ReadSeeker
	bufOff    int64
	buf       []byte // caches file contents starting at bufOff.
	resultBuf []byte // temp for concatenating multi-line sequences.
	mutex     sync.Mutex
}

func readIndex(index io.Reader) (map[string]indexEntry, []string, error) {
	r := tsv.NewReader(index)
	seqs := make(map[string]indexEntry)
	var names []string
	for {
		var row faiRow
		if err := r.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, errors.Wrap(err, "invalid index line")
		}
		if row.Length < 0 || row.Offset < 0 || (row.Length > 0 && (row.LineBases <= 0 || row.LineWidth < row.LineBases)) {
			return nil, nil, errors.Errorf("invalid index line for sequence %s", row.Name)
		}
		seqs[row.Name] = indexEntry{
			length:    uint64(row.Length),
			offset:    uint64(row.Offset),
			lineBase:  uint64(row.LineBases),
			lineWidth: uint64(row.LineWidth),
		}
		names = append(names, row.Name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return seqs[names[i]].offset < seqs[names[j]].offset
	})
	return seqs, names, nil
}

// NewIndexed creates a new Fasta that can perform efficient random lookups
// using the provided index, without reading the data into memory.
func NewIndexed(fasta io.ReadSeeker, index io.Reader) (Fasta, error) {
	seqs, names, err := readIndex(index)
	if err != nil {
		return nil, err
	}
	return &indexedFasta{seqs: seqs, seqNames: names, reader: fasta}, nil
}

// FaiToReferenceLengths reads in a fasta fai file and returns a map of
// reference name to reference length. This doesn't require reading in the fasta
// itself.
func FaiToReferenceLengths(index io.Reader) (map[string]uint64, error) {
	seqs, _, err := readIndex(index)
	if err != nil {
		return nil, err
	}
	lengths := make(map[string]uint64, len(seqs))
	for name, ent := range seqs {
		lengths[name] = ent.length
	}
	return lengths, nil
}

// Len implements Fasta.Len().
func (f *indexedFasta) Len(seqName string) (uint64, error) {
	ent, ok := f.seqs[seqName]
	if !ok {
		return 0, errors.Errorf("sequence not found in index: %s", seqName)
	}
	return ent.length, nil
}

// read returns the bytes [off, off+n) of the underlying file, refilling the
// cache when they are not already in it.
func (f *indexedFasta) read(off int64, n int) ([]byte, error) {
	limit := off + int64(n)
	if off < f.bufOff || limit > f.bufOff+int64(len(f.buf)) {
		if newOffset, err := f.reader.Seek(off, io.SeekStart); err != nil || newOffset != off {
			return nil, errors.Errorf("failed to seek to offset %d: %d, %v", off, newOffset, err)
		}
		bufSize := 8192
		if bufSize < n {
			bufSize = n
		}
		resizeBuf(&f.buf, bufSize)
		bytesRead, err := io.ReadAtLeast(f.reader, f.buf, n)
		if err != nil {
			f.buf = f.buf[:0]
			return nil, errors.Wrap(err, "encountered unexpected end of file (bad index? file doesn't end in newline?)")
		}
		f.bufOff = off
		f.buf = f.buf[:bytesRead]
	}
	return f.buf[off-f.bufOff : limit-f.bufOff], nil
}

func resizeBuf(buf *[]byte, n int) {
	if cap(*buf) < n {
		*buf = make([]byte, n)
	} else {
		*buf = (*buf)[0:n]
	}
}

// Get implements Fasta.Get().
func (f *indexedFasta) Get(seqName string, start uint64, end uint64) (string, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if end <= start {
		return "", errors.Errorf("start must be less than end")
	}
	ent, ok := f.seqs[seqName]
	if !ok {
		return "", errors.Errorf("sequence not found in index: %s", seqName)
	}
	if end > ent.length {
		return "", errors.Errorf("end is past end of sequence %s: %d", seqName, ent.length)
	}

	// Byte offset of start, skipping the line terminators of the lines before
	// it.
	termLen := ent.lineWidth - ent.lineBase
	offset := ent.offset + start + termLen*(start/ent.lineBase)

	// Number of bytes spanning [start, end), terminators included.
	firstLineBases := ent.lineBase - (start % ent.lineBase)
	terms := uint64(0)
	if end-start > firstLineBases {
		terms = (end - start - firstLineBases + ent.lineBase - 1) / ent.lineBase
	}
	n := end - start + terms*termLen

	data, err := f.read(int64(offset), int(n))
	if err != nil {
		return "", err
	}

	resizeBuf(&f.resultBuf, int(end-start))
	col := (offset - ent.offset) % ent.lineWidth
	pos := 0
	for _, c := range data {
		if col < ent.lineBase {
			f.resultBuf[pos] = c
			pos++
		}
		if col++; col == ent.lineWidth {
			col = 0
		}
	}
	return string(f.resultBuf[:pos]), nil
}

// SeqNames implements Fasta.SeqNames().
func (f *indexedFasta) SeqNames() []string {
	return f.seqNames
}
