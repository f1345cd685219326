package region

import "strings"

// Parse parses a region of the form
//   [label][:range][/strand]
// where range is "N" or "N-M" and strand is a token accepted by ParseStrand.
// The last '/' separates the strand and the last ':' before it separates the
// range.  "" and ":0" are the empty region; "chr1" is the empty region
// labeled chr1.  All failures report the whole query.  Since the last '/' is
// always taken as the strand separator, the text form of a region whose label
// contains '/' does not parse back.
func Parse(query string) (Region, error) {
	if query == "" {
		return Region{}, nil
	}
	strandMark := strings.LastIndexByte(query, '/')
	if strandMark == len(query)-1 {
		return Region{}, newError(StrandMissing, query)
	}
	end := len(query)
	if strandMark >= 0 {
		end = strandMark
	}
	labelMark := strings.LastIndexByte(query[:end], ':')
	if labelMark == len(query)-1 || (labelMark >= 0 && labelMark+1 == strandMark) {
		return Region{}, newError(PosMissing, query)
	}

	var r Region
	label := query[:end]
	if labelMark >= 0 {
		label = query[:labelMark]
	}
	if err := checkLabel(label); err != nil {
		return Region{}, err.Requery(query)
	}
	r.label = label

	if labelMark >= 0 {
		first, last, err := parseRange(query[labelMark+1 : end])
		if err != nil {
			return Region{}, err.Requery(query)
		}
		r.first, r.last = first, last
	}
	if strandMark >= 0 {
		s, err := parseStrand(query[strandMark+1:])
		if err != nil {
			return Region{}, err.Requery(query)
		}
		r.strand = s
	}
	return r, nil
}
