// Package gff reads GFF3 annotation files.  See
// https://github.com/The-Sequence-Ontology/Specifications/blob/master/gff3.md.
//
// A GFF3 file holds one feature per line in nine tab-separated columns:
//
//   seqid source type start end score strand phase attributes
//
// where "." marks a missing value and the attributes are "key=value" pairs
// separated by ';'.  Lines starting with '#' are comments or directives.
package gff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/genomic/region"
)

// dot marks a missing column value.
const dot = "."

// NoPhase is the Phase of a record whose phase column is ".".
const NoPhase = -1

// Attr is one attribute of a record.  HasValue is false for a bare key with
// no '='.
type Attr struct {
	Key, Value string
	HasValue   bool
}

// Record is one feature line.  Missing text columns are "".
type Record struct {
	SeqID, Source, Type string
	// Start and End are 1-based and inclusive.
	Start, End int
	Score      float64
	HasScore   bool
	Strand     region.Strand
	// Phase is 0, 1, 2 or NoPhase.
	Phase int
	// Attrs are in file order.
	Attrs []Attr
}

func invalidf(format string, args ...interface{}) error {
	return errors.E(errors.Invalid, fmt.Sprintf("gff: "+format, args...))
}

func parseText(field string) (string, error) {
	if field == dot {
		return "", nil
	}
	return Unescape(field)
}

// ParseRecord parses a feature line.
func ParseRecord(line string) (Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 9 {
		return Record{}, invalidf("found %d columns, expected 9: %q", len(fields), line)
	}
	var (
		r   Record
		err error
	)
	if r.SeqID, err = parseText(fields[0]); err != nil {
		return Record{}, err
	}
	if r.Source, err = parseText(fields[1]); err != nil {
		return Record{}, err
	}
	if r.Type, err = parseText(fields[2]); err != nil {
		return Record{}, err
	}
	if r.Start, err = strconv.Atoi(fields[3]); err != nil {
		return Record{}, invalidf("start field, 4th column, is malformed: %q", fields[3])
	}
	if r.End, err = strconv.Atoi(fields[4]); err != nil {
		return Record{}, invalidf("end field, 5th column, is malformed: %q", fields[4])
	}
	if fields[5] != dot {
		if r.Score, err = strconv.ParseFloat(fields[5], 64); err != nil {
			return Record{}, invalidf("score field, 6th column, is malformed: %q", fields[5])
		}
		r.HasScore = true
	}
	switch fields[6] {
	case dot:
	case "+":
		r.Strand = region.Forward
	case "-":
		r.Strand = region.Reverse
	default:
		return Record{}, invalidf("strand field, 7th column, is malformed: %q", fields[6])
	}
	r.Phase = NoPhase
	if fields[7] != dot {
		if r.Phase, err = strconv.Atoi(fields[7]); err != nil || r.Phase < 0 || r.Phase > 2 {
			return Record{}, invalidf("phase field, 8th column, is malformed: %q", fields[7])
		}
	}
	if r.Attrs, err = parseAttrs(fields[8]); err != nil {
		return Record{}, err
	}
	return r, nil
}

// parseAttrs parses "k1=v1;k2;k3=v3".  Values holding a ',' are lists and are
// kept escaped, so that their items can still be split.
func parseAttrs(field string) ([]Attr, error) {
	if field == dot || field == "" {
		return nil, nil
	}
	var attrs []Attr
	for _, pair := range strings.Split(field, ";") {
		if pair == "" {
			continue
		}
		var attr Attr
		key := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key, attr.Value, attr.HasValue = pair[:i], pair[i+1:], true
		}
		var err error
		if attr.Key, err = Unescape(key); err != nil {
			return nil, err
		}
		if attr.HasValue && strings.IndexByte(attr.Value, ',') < 0 {
			if attr.Value, err = Unescape(attr.Value); err != nil {
				return nil, err
			}
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// Region returns the feature location seqid:start-end/strand.  Errors are
// *region.Error.
func (r Record) Region() (region.Region, error) {
	return region.New(r.SeqID, r.Start, r.End, r.Strand.String())
}

// Len returns the number of bases the feature spans.
func (r Record) Len() int { return r.End - r.Start + 1 }

// Attr returns the value of the first attribute named key.  ok is false if
// there is none.
func (r Record) Attr(key string) (value string, ok bool) {
	for _, a := range r.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Keys returns the attribute keys in file order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.Attrs))
	for i, a := range r.Attrs {
		keys[i] = a.Key
	}
	return keys
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}

func orMissing(s, missing string) string {
	if s == "" {
		return missing
	}
	return s
}

// Fields renders the first eight columns joined by sep, writing missing for
// absent values.
func (r Record) Fields(missing, sep string) string {
	return strings.Join(r.appendFields(nil, missing, identity), sep)
}

func (r Record) appendFields(cols []string, missing string, quote func(string) string) []string {
	cols = append(cols,
		orMissing(quote(r.SeqID), missing),
		orMissing(quote(r.Source), missing),
		orMissing(quote(r.Type), missing),
		strconv.Itoa(r.Start),
		strconv.Itoa(r.End))
	if r.HasScore {
		cols = append(cols, formatScore(r.Score))
	} else {
		cols = append(cols, missing)
	}
	cols = append(cols, orMissing(r.Strand.String(), missing))
	if r.Phase == NoPhase {
		cols = append(cols, missing)
	} else {
		cols = append(cols, strconv.Itoa(r.Phase))
	}
	return cols
}

// String renders the record as an escaped GFF3 line.
func (r Record) String() string {
	cols := r.appendFields(make([]string, 0, 9), dot, Escape)
	attrs := make([]string, len(r.Attrs))
	for i, a := range r.Attrs {
		attrs[i] = Escape(a.Key)
		if !a.HasValue {
			continue
		}
		if strings.IndexByte(a.Value, ',') >= 0 {
			attrs[i] += "=" + a.Value
		} else {
			attrs[i] += "=" + Escape(a.Value)
		}
	}
	cols = append(cols, orMissing(strings.Join(attrs, ";"), dot))
	return strings.Join(cols, "\t")
}
