package cmd

import (
	"io"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/genomic/encoding/vcf"
	"github.com/grailbio/genomic/interval"
)

// bedMerge writes the merged intervals of set as a 0-based BED file.
func bedMerge(w io.Writer, set *interval.Set) error {
	out := tsv.NewWriter(w)
	for _, label := range set.Labels() {
		for _, r := range set.Regions(label) {
			out.WriteString(label)
			out.WriteInt64(int64(r.First() - 1))
			out.WriteInt64(int64(r.Last()))
			if err := out.EndLine(); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}

// vcfRegions writes one line per VCF record: its region, REF, ALT and the GT
// value of each selected sample.  An empty samples list selects every sample
// in the header.
func vcfRegions(w io.Writer, r *vcf.Reader, samples []string) error {
	out := tsv.NewWriter(w)
	var (
		h       vcf.Header
		nRecord int
	)
	for r.Scan() {
		item := r.Item()
		switch {
		case item.Header != nil:
			h = *item.Header
			if len(samples) == 0 {
				samples = h.Samples
			}
			if err := r.SelectSamples(samples); err != nil {
				return err
			}
			out.WriteString("#region")
			out.WriteString("ref")
			out.WriteString("alt")
			for _, s := range samples {
				out.WriteString(s)
			}
			if err := out.EndLine(); err != nil {
				return err
			}
		case item.Record != nil:
			reg, err := item.Record.Region()
			if err != nil {
				return reportable{err}
			}
			out.WriteString(reg.String())
			out.WriteString(item.Record.Ref)
			if len(item.Record.Alt) == 0 {
				out.WriteString(missing)
			} else {
				out.WriteString(strings.Join(item.Record.Alt, ","))
			}
			for _, g := range item.Record.Genotypes(h) {
				gt, ok := g.Get("GT")
				if !ok {
					gt = missing
				}
				out.WriteString(gt)
			}
			if err := out.EndLine(); err != nil {
				return err
			}
			nRecord++
		}
	}
	if err := r.Err(); err != nil {
		return err
	}
	log.Printf("vcf: %d records, %d samples", nRecord, len(samples))
	return out.Flush()
}
