package gff

import (
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// escapeChars are the bytes GFF3 requires to be percent-encoded in column
// values.
const escapeChars = "\t\n\r%;=&,"

const hexDigits = "0123456789ABCDEF"

// Escape percent-encodes the GFF3 reserved characters in s, e.g. "a;b"
// becomes "a%3Bb".
func Escape(s string) string {
	if !strings.ContainsAny(s, escapeChars) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(escapeChars, c) < 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xf])
	}
	return b.String()
}

// Unescape decodes every "%XX" sequence in s.
func Unescape(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+3 > len(s) {
			return "", errors.E(errors.Invalid, "gff: truncated escape in "+strconv.Quote(s))
		}
		c, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
		if err != nil {
			return "", errors.E(errors.Invalid, "gff: malformed escape in "+strconv.Quote(s))
		}
		b.WriteByte(byte(c))
		i += 2
	}
	return b.String(), nil
}
