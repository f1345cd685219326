package region

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a malformed region specification.
type Kind int

const (
	// None is the Kind of a nil or non-region error.
	None Kind = iota
	// ChrFormat means the label contains a ':'.
	ChrFormat
	// PosMissing means a range separator was given without a position.
	PosMissing
	// PosFormat means a position is not a non-negative integer.
	PosFormat
	// PosRange means the bounds are inconsistent, e.g. last < first.
	PosRange
	// StrandMissing means the query ends with the strand separator.
	StrandMissing
	// StrandFormat means the strand token is not recognized.
	StrandFormat
)

var kindNames = [...]string{
	None:          "None",
	ChrFormat:     "ChrFormat",
	PosMissing:    "PosMissing",
	PosFormat:     "PosFormat",
	PosRange:      "PosRange",
	StrandMissing: "StrandMissing",
	StrandFormat:  "StrandFormat",
}

// String returns the name of the kind, e.g. "ChrFormat".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Error describes a region specification that failed validation.  Query holds
// the offending input verbatim: either the raw text passed to Parse, or the
// rendered (label, first, last, strand) tuple passed to New.
type Error struct {
	Kind  Kind
	Query string
	// Details is an optional extra line for the diagnostic.
	Details string
	// fields is set when Query is a rendered field tuple rather than raw text.
	fields bool
}

// newError returns an error for a raw text query.  A PosMissing failure on a
// query with more than one ':' is reported as ChrFormat: the extra colon is in
// the label, not a missing range.
func newError(kind Kind, query string) *Error {
	e := &Error{Kind: kind, Query: query}
	if kind == PosMissing && strings.Count(query, ":") > 1 {
		e.Kind = ChrFormat
		e.Details = "':' signs not allowed in names"
	}
	return e
}

func newFieldsError(kind Kind, label string, first, last int, strand string) *Error {
	return &Error{
		Kind:   kind,
		Query:  fmt.Sprintf("'%s', %d, %d, '%s'", label, first, last, strand),
		fields: true,
	}
}

func newBoundsError(kind Kind, first, last int) *Error {
	return &Error{
		Kind:   kind,
		Query:  strconv.Itoa(first) + ", " + strconv.Itoa(last),
		fields: true,
	}
}

// Requery returns a copy of e that reports query as the offending input,
// keeping its kind.  It is used to report a failure found in a substring of a
// larger query against the whole query.
func (e *Error) Requery(query string) *Error {
	return newError(e.Kind, query)
}

func (e *Error) quoted() string {
	if e.fields {
		return e.Query
	}
	return "'" + e.Query + "'"
}

// Error implements error.
func (e *Error) Error() string {
	msg := "region: " + e.Kind.String() + ": " + e.quoted()
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

// Diagnostic returns a multi-line, human-readable report of the failure.
func (e *Error) Diagnostic() string {
	var b strings.Builder
	b.WriteString("\n######### REGION ERROR #########\n")
	b.WriteString("    Name: " + e.Kind.String() + "\n")
	b.WriteString("   Query: " + e.quoted() + "\n")
	if e.Details != "" {
		b.WriteString(" Details: " + e.Details + "\n")
	}
	return b.String()
}

// Is reports whether target is a *Error of the same kind, so that
//   errors.Is(err, &region.Error{Kind: region.PosRange})
// matches regardless of the query.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or None.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return None
}
