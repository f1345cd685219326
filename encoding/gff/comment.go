package gff

import (
	"strings"

	"github.com/grailbio/genomic/region"
)

// CommentKind classifies lines starting with '#'.
type CommentKind int

const (
	// Remark is a free-text "# ..." line.
	Remark CommentKind = iota
	// Directive is a "##field value" line, e.g. "##gff-version 3".
	Directive
	// Meta is a "#!field value" line, e.g. "#!genome-build GRCh38".
	Meta
	// Resolution is the "###" line closing all open forward references.
	Resolution
)

// Comment is a line starting with '#'.  For a Remark, Value holds the text
// after the '#' verbatim and Field is empty.
type Comment struct {
	Kind         CommentKind
	Field, Value string
}

// ParseComment parses a line starting with '#'.
func ParseComment(line string) (Comment, error) {
	if !strings.HasPrefix(line, "#") {
		return Comment{}, invalidf("not a comment: %q", line)
	}
	if strings.Trim(line, "#") == "" && len(line) >= 3 {
		return Comment{Kind: Resolution}, nil
	}
	var c Comment
	var body string
	switch {
	case strings.HasPrefix(line, "##"):
		c.Kind, body = Directive, strings.TrimLeft(line, "#")
	case strings.HasPrefix(line, "#!"):
		c.Kind, body = Meta, line[2:]
	default:
		return Comment{Kind: Remark, Value: line[1:]}, nil
	}
	if i := strings.IndexByte(body, ' '); i >= 0 {
		c.Field, c.Value = body[:i], strings.TrimLeft(body[i+1:], " ")
	} else {
		c.Field = body
	}
	return c, nil
}

// String renders the comment line.
func (c Comment) String() string {
	var prefix string
	switch c.Kind {
	case Resolution:
		return "###"
	case Remark:
		return "#" + c.Value
	case Meta:
		prefix = "#!"
	default:
		prefix = "##"
	}
	if c.Value == "" {
		return prefix + c.Field
	}
	return prefix + c.Field + " " + c.Value
}

// IsSequenceRegion reports whether c is a "##sequence-region" directive.
func (c Comment) IsSequenceRegion() bool {
	return c.Kind == Directive && c.Field == "sequence-region"
}

// Region converts a "##sequence-region seqid start end" directive into
// the region seqid:start-end.  ok is false for any other comment, including
// a sequence-region directive without exactly three values.  Malformed
// coordinates are reported as *region.Error.
func (c Comment) Region() (r region.Region, ok bool, err error) {
	if !c.IsSequenceRegion() {
		return region.Region{}, false, nil
	}
	tokens := strings.Split(c.Value, " ")
	if len(tokens) != 3 {
		return region.Region{}, false, nil
	}
	r, err = region.Parse(tokens[0] + ":" + tokens[1] + "-" + tokens[2])
	if err != nil {
		return region.Region{}, false, err
	}
	return r, true, nil
}
