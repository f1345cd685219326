// Package vcf reads VCF variant files.  See
// https://samtools.github.io/hts-specs/VCFv4.3.pdf.
//
// A VCF file starts with "##key=value" meta lines, then a single "#CHROM"
// header line naming the columns, then one tab-separated record per variant.
package vcf

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

func invalidf(format string, args ...interface{}) error {
	return errors.E(errors.Invalid, fmt.Sprintf("vcf: "+format, args...))
}

// Meta is a "##key=value" line.  When the value has the structured form
// "<ID=...,...>", Structured is set and Value holds the text between the
// angle brackets.
type Meta struct {
	Key, Value string
	Structured bool
}

// ParseMeta parses a "##key=value" line.
func ParseMeta(line string) (Meta, error) {
	if !strings.HasPrefix(line, "##") {
		return Meta{}, invalidf("not a meta line: %q", line)
	}
	body := line[2:]
	i := strings.IndexByte(body, '=')
	if i <= 0 || i == len(body)-1 {
		return Meta{}, invalidf("malformed meta line: %q", line)
	}
	m := Meta{Key: body[:i], Value: body[i+1:]}
	if strings.HasPrefix(m.Value, "<ID=") && strings.HasSuffix(m.Value, ">") {
		m.Structured = true
		m.Value = m.Value[1 : len(m.Value)-1]
	}
	return m, nil
}

// Attr returns the value of key in a structured meta line, with surrounding
// double quotes removed.  ok is false if the line is not structured or lacks
// key.
func (m Meta) Attr(key string) (value string, ok bool) {
	if !m.Structured {
		return "", false
	}
	rest := m.Value
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			return "", false
		}
		k := rest[:eq]
		rest = rest[eq+1:]
		var v string
		if strings.HasPrefix(rest, `"`) {
			end := strings.IndexByte(rest[1:], '"')
			if end < 0 {
				return "", false
			}
			v, rest = rest[1:end+1], rest[end+2:]
		} else if comma := strings.IndexByte(rest, ','); comma >= 0 {
			v, rest = rest[:comma], rest[comma:]
		} else {
			v, rest = rest, ""
		}
		if k == key {
			return v, true
		}
		rest = strings.TrimPrefix(rest, ",")
	}
	return "", false
}

// ID returns the ID attribute of a structured meta line.
func (m Meta) ID() string {
	id, _ := m.Attr("ID")
	return id
}

// String renders the meta line.
func (m Meta) String() string {
	if m.Structured {
		return "##" + m.Key + "=<" + m.Value + ">"
	}
	return "##" + m.Key + "=" + m.Value
}
