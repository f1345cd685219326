package vcf

import (
	"strconv"
	"strings"

	"github.com/grailbio/genomic/region"
)

const dot = "."

// Info is one entry of the INFO column.  HasValue is false for a flag.
type Info struct {
	Key, Value string
	HasValue   bool
}

// Record is one variant line.  List columns given as "." are nil.
type Record struct {
	Chrom string
	// Pos is the 1-based position of the first REF base.
	Pos     int
	IDs     []string
	Ref     string
	Alt     []string
	Qual    float64
	HasQual bool
	Filter  []string
	Info    []Info
	Format  []string
	// Samples holds the raw genotype columns, one per header sample.
	Samples []string

	// picked indexes the Samples returned by Genotypes; nil means all.
	picked []int
}

func splitList(field, sep string) []string {
	if field == dot || field == "" {
		return nil
	}
	return strings.Split(field, sep)
}

// ParseRecord parses a variant line.  The column count must match h; a zero
// Header accepts eight or more columns.
func ParseRecord(line string, h Header) (Record, error) {
	cols := strings.Split(line, "\t")
	switch {
	case len(h.Columns) > 0 && len(cols) != len(h.Columns):
		return Record{}, invalidf("found %d columns, header has %d: %q", len(cols), len(h.Columns), line)
	case len(cols) < len(fixedColumns):
		return Record{}, invalidf("found %d columns, expected at least %d: %q", len(cols), len(fixedColumns), line)
	}
	r := Record{
		Chrom:  cols[0],
		IDs:    splitList(cols[2], ";"),
		Ref:    cols[3],
		Alt:    splitList(cols[4], ","),
		Filter: splitList(cols[6], ";"),
	}
	var err error
	if r.Pos, err = strconv.Atoi(cols[1]); err != nil || r.Pos < 1 {
		return Record{}, invalidf("POS is malformed: %q", cols[1])
	}
	if r.Ref == "" || r.Ref == dot {
		return Record{}, invalidf("REF is missing: %q", line)
	}
	if cols[5] != dot {
		if r.Qual, err = strconv.ParseFloat(cols[5], 64); err != nil {
			return Record{}, invalidf("QUAL is malformed: %q", cols[5])
		}
		r.HasQual = true
	}
	for _, entry := range splitList(cols[7], ";") {
		if entry == "" {
			continue
		}
		info := Info{Key: entry}
		if i := strings.IndexByte(entry, '='); i >= 0 {
			info = Info{Key: entry[:i], Value: entry[i+1:], HasValue: true}
		}
		r.Info = append(r.Info, info)
	}
	if len(cols) > len(fixedColumns) {
		r.Format = splitList(cols[len(fixedColumns)], ":")
		r.Samples = cols[len(fixedColumns)+1:]
	}
	return r, nil
}

// Region returns the reference span of the variant: POS to
// POS+len(REF)-1.  Errors are *region.Error.
func (r Record) Region() (region.Region, error) {
	return region.New(r.Chrom, r.Pos, r.Pos+len(r.Ref)-1, "")
}

// InfoValue returns the value of the INFO entry key.  ok is false if there is
// no such entry.
func (r Record) InfoValue(key string) (value string, ok bool) {
	for _, info := range r.Info {
		if info.Key == key {
			return info.Value, true
		}
	}
	return "", false
}

// Genotype is one sample column split along the FORMAT keys.
type Genotype struct {
	Sample string
	Format []string
	Values []string
}

// Get returns the value for the FORMAT key.  Trailing keys a sample omits
// are reported as "." with ok set.
func (g Genotype) Get(key string) (value string, ok bool) {
	for i, k := range g.Format {
		if k != key {
			continue
		}
		if i < len(g.Values) {
			return g.Values[i], true
		}
		return dot, true
	}
	return "", false
}

// Genotypes returns the selected sample columns, named after the header
// samples if h is given.  Records from a Reader select the samples chosen by
// Reader.SelectSamples; otherwise all samples are returned.
func (r Record) Genotypes(h Header) []Genotype {
	idx := r.picked
	if idx == nil {
		idx = make([]int, len(r.Samples))
		for i := range idx {
			idx[i] = i
		}
	}
	gts := make([]Genotype, 0, len(idx))
	for _, i := range idx {
		if i >= len(r.Samples) {
			continue
		}
		gt := Genotype{Format: r.Format, Values: strings.Split(r.Samples[i], ":")}
		if i < len(h.Samples) {
			gt.Sample = h.Samples[i]
		}
		gts = append(gts, gt)
	}
	return gts
}
