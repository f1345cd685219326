package sequence

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// upper maps ASCII letters to upper case so that soft-masked bases compare
// equal to their unmasked form.
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Mismatches returns the number of positions at which a and b differ,
// ignoring case.  a and b must have equal length.
func Mismatches(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, errors.E(errors.Invalid,
			fmt.Sprintf("sequence: mismatch count needs equal lengths, got %d and %d", len(a), len(b)))
	}
	n := 0
	for i := 0; i < len(a); i++ {
		if upper(a[i]) != upper(b[i]) {
			n++
		}
	}
	return n, nil
}

// EditDistance returns the Levenshtein distance between a and b: the number
// of single-base insertions, deletions and substitutions turning a into b.
// Case is significant.
func EditDistance(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	// Two rows of the dynamic-programming matrix, indexed by position in b.
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			best := prev[j-1] + cost
			if v := prev[j] + 1; v < best {
				best = v
			}
			if v := cur[j-1] + 1; v < best {
				best = v
			}
			cur[j] = best
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// Mismatches counts the differing bases over the positions where the
// locations of s and other overlap.  ok is false if they do not overlap.
func (s Seq) Mismatches(other Seq) (n int, ok bool) {
	shared, ok := s.loc.Shared(other.loc)
	if !ok {
		return 0, false
	}
	a, _ := s.Slice(shared)
	b, _ := other.Slice(shared)
	n, err := Mismatches(a.seq, b.seq)
	if err != nil {
		panic(err)
	}
	return n, true
}
