package gff

import (
	"io"
	"sort"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
)

// FlattenOpts controls Flatten.
type FlattenOpts struct {
	// Keys lists the attribute columns to emit.  If empty, every attribute key
	// found in the input is emitted, in sorted order.
	Keys []string
	// Missing is written for "." columns and for attributes a record lacks.
	Missing string
	// Empty is written for attributes present without a value.
	Empty string
	// Comments copies comment lines to the output ahead of the table.
	Comments bool
}

// DefaultFlattenOpts is the default FlattenOpts.
var DefaultFlattenOpts = FlattenOpts{Missing: ".", Empty: "true"}

// FlattenHeader is the fixed leading columns of the table Flatten writes.
var FlattenHeader = []string{"seqid", "source", "type", "start", "end", "score", "strand", "phase"}

const progressInterval = 1000000

// Flatten reads every record from r and writes them to w as a TSV table with
// one column per field and per attribute key.  Records are buffered so that
// the attribute columns can be collected before the header is written.
func Flatten(w io.Writer, r *Reader, opts FlattenOpts) error {
	out := tsv.NewWriter(w)
	var (
		records []Record
		keySet  = map[string]bool{}
	)
	for r.Scan() {
		item := r.Item()
		if item.Comment != nil {
			if opts.Comments {
				out.WriteString(item.Comment.String())
				if err := out.EndLine(); err != nil {
					return err
				}
			}
			continue
		}
		records = append(records, *item.Record)
		if len(opts.Keys) == 0 {
			for _, a := range item.Record.Attrs {
				keySet[a.Key] = true
			}
		}
		if len(records)%progressInterval == 0 {
			log.Debug.Printf("gff: %d records read", len(records))
		}
	}
	if err := r.Err(); err != nil {
		return err
	}
	keys := opts.Keys
	if len(keys) == 0 {
		for k := range keySet {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}

	for _, col := range FlattenHeader {
		out.WriteString(col)
	}
	for _, k := range keys {
		out.WriteString(k)
	}
	if err := out.EndLine(); err != nil {
		return err
	}
	for i, rec := range records {
		for _, col := range rec.appendFields(make([]string, 0, len(FlattenHeader)), opts.Missing, identity) {
			out.WriteString(col)
		}
		for _, k := range keys {
			out.WriteString(attrColumn(rec, k, opts))
		}
		if err := out.EndLine(); err != nil {
			return err
		}
		if (i+1)%progressInterval == 0 {
			log.Debug.Printf("gff: %d records written", i+1)
		}
	}
	log.Printf("gff: flattened %d records, %d attribute columns", len(records), len(keys))
	return out.Flush()
}

func identity(s string) string { return s }

func attrColumn(rec Record, key string, opts FlattenOpts) string {
	for _, a := range rec.Attrs {
		if a.Key != key {
			continue
		}
		if !a.HasValue || a.Value == "" {
			return opts.Empty
		}
		return a.Value
	}
	return opts.Missing
}
