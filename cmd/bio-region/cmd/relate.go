package cmd

import (
	"io"
	"strconv"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/genomic/region"
)

const missing = "."

// parseRegions parses every query, reporting the first failure with the
// region error report attached.
func parseRegions(queries []string) ([]region.Region, error) {
	regions := make([]region.Region, len(queries))
	for i, q := range queries {
		r, err := region.Parse(q)
		if err != nil {
			return nil, reportable{err}
		}
		regions[i] = r
	}
	return regions, nil
}

// reportable prints a region error together with its diagnostic block.
type reportable struct{ err error }

func (e reportable) Error() string {
	if re, ok := e.err.(*region.Error); ok {
		return re.Error() + re.Diagnostic()
	}
	return e.err.Error()
}

func formatRegion(r region.Region, ok bool) string {
	if !ok {
		return missing
	}
	return r.String()
}

func formatInt(v int, ok bool) string {
	if !ok {
		return missing
	}
	return strconv.Itoa(v)
}

func formatRate(v float64, ok bool) string {
	if !ok {
		return missing
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// relate writes one "name<TAB>value" line per relation between a and b.
func relate(w io.Writer, a, b region.Region, orient bool) error {
	out := tsv.NewWriter(w)
	row := func(name, value string) error {
		out.WriteString(name)
		out.WriteString(value)
		return out.EndLine()
	}
	preds := []struct {
		name  string
		value bool
	}{
		{"same_label", a.SameLabel(b)},
		{"shares_label", a.SharesLabel(b)},
		{"same_range", a.SameRange(b)},
		{"shares_range", a.SharesRange(b)},
		{"same_strand", a.SameStrand(b)},
		{"shares_strand", a.SharesStrand(b)},
		{"shares", a.Shares(b)},
		{"around", a.Around(b)},
		{"inside", a.Inside(b)},
		{"covers", a.Covers(b)},
		{"next", a.Next(b)},
		{"upstream", a.Upstream(b, orient)},
		{"downstream", a.Downstream(b, orient)},
	}
	for _, p := range preds {
		if err := row(p.name, strconv.FormatBool(p.value)); err != nil {
			return err
		}
	}

	dist, ok := a.Dist(b, orient)
	shared, sharedOK := a.Shared(b)
	before, after, diffOK := a.Diff(b)
	union, unionOK := a.Union(b)
	gap, gapOK := a.Gap(b)
	sharedLen, lenOK := a.SharedLen(b)
	covered, coveredOK := a.CoveredRate(b)
	captured, capturedOK := a.CapturedRate(b)
	derived := []struct{ name, value string }{
		{"dist", formatInt(dist, ok)},
		{"shared", formatRegion(shared, sharedOK)},
		{"diff_before", formatRegion(before, diffOK)},
		{"diff_after", formatRegion(after, diffOK)},
		{"union", formatRegion(union, unionOK)},
		{"gap", formatRegion(gap, gapOK)},
		{"shared_len", formatInt(sharedLen, lenOK)},
		{"covered_rate", formatRate(covered, coveredOK)},
		{"captured_rate", formatRate(captured, capturedOK)},
	}
	for _, d := range derived {
		if err := row(d.name, d.value); err != nil {
			return err
		}
	}
	return out.Flush()
}

// chunks writes r cut into consecutive pieces of n positions, one per line.
func chunks(w io.Writer, r region.Region, n int) error {
	out := tsv.NewWriter(w)
	for _, piece := range r.Slices(n) {
		out.WriteString(piece.String())
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}
