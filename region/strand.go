package region

// Strand is the orientation of a region.  The zero value, Unset, means the
// strand is not specified; it is a valid state, not an error.
type Strand byte

const (
	Unset   Strand = 0
	Forward Strand = '+'
	Reverse Strand = '-'
)

// StrandOf converts a one-character strand token.
//   0, '0'                       -> Unset
//   '+', '1', 'F', 'f', 'P', 'p' -> Forward
//   '-', 'R', 'r', 'N', 'n'      -> Reverse
// Any other byte is a StrandFormat error.
func StrandOf(c byte) (Strand, error) {
	s, ok := strandOf(c)
	if !ok {
		return Unset, newError(StrandFormat, string(c))
	}
	return s, nil
}

func strandOf(c byte) (Strand, bool) {
	switch c {
	case 0, '0':
		return Unset, true
	case '+', '1', 'F', 'f', 'P', 'p':
		return Forward, true
	case '-', 'R', 'r', 'N', 'n':
		return Reverse, true
	}
	return Unset, false
}

// ParseStrand converts a strand token using its first byte.  The empty string
// is Unset.
func ParseStrand(token string) (Strand, error) {
	s, err := parseStrand(token)
	if err != nil {
		return Unset, err
	}
	return s, nil
}

func parseStrand(token string) (Strand, *Error) {
	if token == "" {
		return Unset, nil
	}
	s, ok := strandOf(token[0])
	if !ok {
		return Unset, newError(StrandFormat, token)
	}
	return s, nil
}

// IsSet reports whether the strand is Forward or Reverse.
func (s Strand) IsSet() bool { return s != Unset }

// String returns "+", "-", or "" for Unset.
func (s Strand) String() string {
	if s == Unset {
		return ""
	}
	return string(byte(s))
}

// shares implements the strand wildcard rule: equal strands match, and an
// unset strand matches a set one.  Two different set strands do not.
func (s Strand) shares(o Strand) bool {
	return s == o || s.IsSet() != o.IsSet()
}

// shared returns the strand a derived region takes from s and o: s if they
// are equal, Unset otherwise.
func (s Strand) shared(o Strand) Strand {
	if s == o {
		return s
	}
	return Unset
}
