package region_test

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/grailbio/genomic/region"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func mustNew(t *testing.T, label string, first, last int, strand string) region.Region {
	r, err := region.New(label, first, last, strand)
	assert.NoError(t, err)
	return r
}

func TestString(t *testing.T) {
	tests := []struct {
		r    region.Region
		want string
	}{
		{region.Region{}, ":0"},
		{region.MustParse(""), ":0"},
		{region.MustParse(":0"), ":0"},
		{region.MustParse("A:1-2/+"), "A:1-2/+"},
		{mustNew(t, "", 0, 0, ""), ":0"},
		{mustNew(t, "A", 1, 2, "+"), "A:1-2/+"},
		{mustNew(t, "A", 1, 2, ""), "A:1-2"},
		{mustNew(t, "", 1, 2, ""), ":1-2"},
		{mustNew(t, "chr1", 5, 10, "+"), "chr1:5-10/+"},
		{mustNew(t, "chr1", 7, 7, "-"), "chr1:7/-"},
		{mustNew(t, "chr1", 7, 0, ""), "chr1:7"},
		{region.MustParse("A"), "A:0"},
	}
	for _, test := range tests {
		expect.EQ(t, test.r.String(), test.want)
	}

	r, err := region.NewLabel("", "+")
	assert.NoError(t, err)
	expect.EQ(t, r.String(), ":0/+")
	r, err = region.NewLabel("A", "+")
	assert.NoError(t, err)
	expect.EQ(t, r.String(), "A:0/+")
	r, err = region.NewPos("A", 3, "r")
	assert.NoError(t, err)
	expect.EQ(t, r.String(), "A:3/-")
}

func TestAccessors(t *testing.T) {
	r := mustNew(t, "chr1", 5, 10, "+")
	expect.EQ(t, r.Label(), "chr1")
	expect.EQ(t, r.First(), 5)
	expect.EQ(t, r.Last(), 10)
	first, last := r.Range()
	expect.EQ(t, first, 5)
	expect.EQ(t, last, 10)
	expect.EQ(t, r.Len(), 6)
	expect.EQ(t, r.Strand(), region.Forward)
	expect.EQ(t, r.Center(), 7.5)
}

func TestParse(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"chr1:5", "chr1:5"},
		{"chr1:5-5", "chr1:5"},
		{"chr1:5-10", "chr1:5-10"},
		{"chr1:5/f", "chr1:5/+"},
		{"chr1:5/P", "chr1:5/+"},
		{"chr1:5/1", "chr1:5/+"},
		{"chr1:5/N", "chr1:5/-"},
		{"chr1:5/r", "chr1:5/-"},
		{"chr1:5/0", "chr1:5"},
		{"chr1:5/+strand", "chr1:5/+"},
		{"chr1/+", "chr1:0/+"},
		{":1-10", ":1-10"},
		{":5/-", ":5/-"},
		{"chr1:0", "chr1:0"},
	}
	for _, test := range tests {
		r, err := region.Parse(test.query)
		assert.NoError(t, err, test.query)
		expect.EQ(t, r.String(), test.want, test.query)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		query string
		kind  region.Kind
	}{
		{"chr1::5", region.ChrFormat},
		{"a:b:5", region.ChrFormat},
		{"chr1:5:", region.ChrFormat},
		{"chr1:", region.PosMissing},
		{"chr1:/+", region.PosMissing},
		{"chr1:5-", region.PosMissing},
		{"chr1:-5", region.PosMissing},
		{"chr1:x", region.PosFormat},
		{"chr1:a-b", region.PosFormat},
		{"chr1:1-2-3", region.PosFormat},
		{"chr1:10-5", region.PosRange},
		{"chr1:5/", region.StrandMissing},
		{"chr1:5/x", region.StrandFormat},
	}
	for _, test := range tests {
		_, err := region.Parse(test.query)
		e, ok := err.(*region.Error)
		assert.True(t, ok, test.query)
		expect.EQ(t, e.Kind, test.kind, test.query)
		expect.EQ(t, e.Query, test.query)
		expect.EQ(t, region.KindOf(err), test.kind)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		label       string
		first, last int
		strand      string
		kind        region.Kind
		query       string
	}{
		{"chr1", 1, -1, "+", region.PosFormat, "'chr1', 1, -1, '+'"},
		{"chr1", -3, 0, "", region.PosFormat, "'chr1', -3, 0, ''"},
		{"chr:1", 1, 2, "", region.ChrFormat, "'chr:1', 1, 2, ''"},
		{"c", 5, 3, "", region.PosRange, "'c', 5, 3, ''"},
		{"c", 0, 3, "", region.PosRange, "'c', 0, 3, ''"},
		{"c", 1, 2, "x", region.StrandFormat, "'c', 1, 2, 'x'"},
	}
	for _, test := range tests {
		_, err := region.New(test.label, test.first, test.last, test.strand)
		e, ok := err.(*region.Error)
		assert.True(t, ok)
		expect.EQ(t, e.Kind, test.kind, test.query)
		expect.EQ(t, e.Query, test.query)
	}
}

func TestErrorReport(t *testing.T) {
	_, err := region.Parse("chr1:5:")
	e := err.(*region.Error)
	expect.EQ(t, e.Error(), "region: ChrFormat: 'chr1:5:': ':' signs not allowed in names")
	diag := e.Diagnostic()
	expect.True(t, strings.Contains(diag, "    Name: ChrFormat\n"), diag)
	expect.True(t, strings.Contains(diag, "   Query: 'chr1:5:'\n"), diag)
	expect.True(t, strings.Contains(diag, " Details: ':' signs not allowed in names\n"), diag)

	_, err = region.New("c", 5, 3, "")
	expect.EQ(t, err.Error(), "region: PosRange: 'c', 5, 3, ''")
	expect.True(t, errors.Is(err, &region.Error{Kind: region.PosRange}))
	expect.False(t, errors.Is(err, &region.Error{Kind: region.PosFormat}))

	expect.EQ(t, region.KindOf(errors.New("other")), region.None)
	expect.EQ(t, region.KindOf(nil), region.None)
	expect.EQ(t, region.StrandMissing.String(), "StrandMissing")
	expect.EQ(t, region.Kind(42).String(), "Kind(42)")
}

func TestRequery(t *testing.T) {
	_, err := region.Region{}.WithRangeString("5-")
	e := err.(*region.Error)
	expect.EQ(t, e.Kind, region.PosMissing)
	expect.EQ(t, e.Query, "5-")

	wrapped := e.Requery("chr1:5-")
	expect.EQ(t, wrapped.Kind, region.PosMissing)
	expect.EQ(t, wrapped.Query, "chr1:5-")
	// A second ':' means the label is at fault.
	expect.EQ(t, e.Requery("chr1:x:5-").Kind, region.ChrFormat)
	expect.EQ(t, e.Query, "5-")
}

func TestRoundTrip(t *testing.T) {
	for _, label := range []string{"", "chr1", "contig_7.2"} {
		for _, rng := range [][2]int{{0, 0}, {1, 1}, {5, 10}, {3, 0}} {
			for _, strand := range []string{"", "+", "-"} {
				r := mustNew(t, label, rng[0], rng[1], strand)
				parsed, err := region.Parse(r.String())
				assert.NoError(t, err)
				expect.EQ(t, parsed, r, r.String())

				text, err := r.MarshalText()
				assert.NoError(t, err)
				var un region.Region
				assert.NoError(t, un.UnmarshalText(text))
				expect.EQ(t, un, r)
			}
		}
	}

	// The last '/' is the strand separator, so such labels do not parse back.
	r := mustNew(t, "a/b", 3, 0, "")
	expect.EQ(t, r.String(), "a/b:3")
	_, err := region.Parse(r.String())
	expect.EQ(t, region.KindOf(err), region.StrandFormat)
}

func TestLengthPredicates(t *testing.T) {
	for _, query := range []string{":0", "c:0/+", "c:4", ":4", "c:4-5", ":1-100/-"} {
		r := region.MustParse(query)
		expect.EQ(t, r.Len() == 0, r.IsEmpty(), query)
		expect.EQ(t, r.Len() == 1, r.IsPoint(), query)
		expect.EQ(t, r.Len() > 1, r.IsRange(), query)
		expect.EQ(t, r.Label() == "" && r.Len() > 0, r.IsPure(), query)
	}
}

func TestSetters(t *testing.T) {
	base := region.MustParse("chr1:5-10/+")

	r, err := base.WithRange(7, 0)
	assert.NoError(t, err)
	expect.EQ(t, r.String(), "chr1:7/+")

	r, err = base.WithRange(0, 0)
	assert.NoError(t, err)
	expect.EQ(t, r.String(), "chr1:0/+")
	expect.True(t, r.IsEmpty())

	r, err = base.WithRange(3, 2)
	expect.EQ(t, region.KindOf(err), region.PosRange)
	expect.EQ(t, r, base)

	r, err = base.WithRangeString("")
	assert.NoError(t, err)
	expect.EQ(t, r.String(), "chr1:0/+")

	r, err = base.WithRangeString("20-30")
	assert.NoError(t, err)
	expect.EQ(t, r.String(), "chr1:20-30/+")

	_, err = base.WithRangeString("20--30")
	expect.EQ(t, region.KindOf(err), region.PosFormat)

	r, err = base.WithPos(8)
	assert.NoError(t, err)
	expect.EQ(t, r.String(), "chr1:8/+")

	r, err = base.WithFirst(2)
	assert.NoError(t, err)
	expect.EQ(t, r.String(), "chr1:2-10/+")

	r, err = base.WithLast(12)
	assert.NoError(t, err)
	expect.EQ(t, r.String(), "chr1:5-12/+")

	_, err = base.WithLast(4)
	expect.EQ(t, region.KindOf(err), region.PosRange)

	r, err = base.WithStrand("")
	assert.NoError(t, err)
	expect.EQ(t, r.String(), "chr1:5-10")

	r, err = base.WithStrandByte('r')
	assert.NoError(t, err)
	expect.EQ(t, r.Strand(), region.Reverse)

	_, err = base.WithStrandByte('?')
	expect.EQ(t, region.KindOf(err), region.StrandFormat)

	r, err = base.WithLabel("chr2")
	assert.NoError(t, err)
	expect.EQ(t, r.String(), "chr2:5-10/+")

	r, err = base.WithLabel("chr:2")
	expect.EQ(t, region.KindOf(err), region.ChrFormat)
	expect.EQ(t, r, base)

	// The receiver is never modified.
	expect.EQ(t, base.String(), "chr1:5-10/+")
}

func TestStrand(t *testing.T) {
	for _, c := range []byte{'+', '1', 'F', 'f', 'P', 'p'} {
		s, err := region.StrandOf(c)
		assert.NoError(t, err)
		expect.EQ(t, s, region.Forward, string(c))
	}
	for _, c := range []byte{'-', 'R', 'r', 'N', 'n'} {
		s, err := region.StrandOf(c)
		assert.NoError(t, err)
		expect.EQ(t, s, region.Reverse, string(c))
	}
	for _, c := range []byte{0, '0'} {
		s, err := region.StrandOf(c)
		assert.NoError(t, err)
		expect.EQ(t, s, region.Unset)
	}
	_, err := region.StrandOf('x')
	expect.EQ(t, region.KindOf(err), region.StrandFormat)

	s, err := region.ParseStrand("")
	assert.NoError(t, err)
	expect.EQ(t, s, region.Unset)
	expect.False(t, s.IsSet())
	_, err = region.ParseStrand("xyz")
	expect.EQ(t, err.(*region.Error).Query, "xyz")

	expect.EQ(t, region.Forward.String(), "+")
	expect.EQ(t, region.Reverse.String(), "-")
	expect.EQ(t, region.Unset.String(), "")
}

func TestResize(t *testing.T) {
	tests := []struct {
		query                string
		upstream, downstream int
		orient               bool
		want                 string
	}{
		{":0", 1, -1, false, ":0"},

		{":5", 0, 0, false, ":5"},
		{":5", 5, 5, false, ":1-10"},
		{":5", 0, 5, false, ":5-10"},
		{":5", 5, 0, false, ":1-5"},
		{":5", -5, -5, false, ":0"},
		{":5", 0, -5, false, ":0"},
		{":5", -5, 0, false, ":0"},

		{":5/-", 0, 0, true, ":5/-"},
		{":5/-", 5, 5, true, ":1-10/-"},
		{":5/-", 0, 5, true, ":1-5/-"},
		{":5/-", 5, 0, true, ":5-10/-"},
		{":5/-", -5, -5, true, ":0/-"},
		{":5/-", 0, -5, true, ":0/-"},
		{":5/-", -5, 0, true, ":0/-"},

		{":1-5", -4, 5, false, ":5-10"},
		{":5-10", 5, -5, false, ":1-5"},
		{":1-10", -4, -5, false, ":5"},

		{":5-10/-", -5, 4, true, ":1-5/-"},
		{":5-10/-", -5, 5, true, ":1-5/-"},
		{":1-10/-", -5, -4, true, ":5/-"},

		// Without orient the strand is ignored.
		{":5/-", 5, 0, false, ":1-5/-"},
	}
	for _, test := range tests {
		r := region.MustParse(test.query)
		got := r.Resize(test.upstream, test.downstream, test.orient)
		expect.EQ(t, got.String(), test.want, test)
		expect.EQ(t, r.String(), test.query)
	}
}

func TestCompare(t *testing.T) {
	queries := []string{"b:1-5", "a:2-3", "a:2-3/-", "a:2-3/+", "a:1-9", "a:2", ":5", "a:0"}
	var rs []region.Region
	for _, q := range queries {
		rs = append(rs, region.MustParse(q))
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Less(rs[j]) })
	var got []string
	for _, r := range rs {
		got = append(got, r.String())
	}
	expect.EQ(t, got, []string{":5", "a:0", "a:1-9", "a:2", "a:2-3", "a:2-3/+", "a:2-3/-", "b:1-5"})

	a := region.MustParse("a:2-3/+")
	expect.EQ(t, region.Compare(a, a), 0)
	expect.EQ(t, region.Compare(a, region.MustParse("a:2-3/-")), -1)
	expect.EQ(t, region.Compare(region.MustParse("a:3"), a), 1)
	expect.True(t, a == region.MustParse("a:2-3/p"))
	expect.False(t, a == region.MustParse("a:2-3"))
}

func TestHash(t *testing.T) {
	a := region.MustParse("chr1:5-10/+")
	b := mustNew(t, "chr1", 5, 10, "F")
	expect.EQ(t, a.Hash(), b.Hash())
	expect.True(t, a.Hash() != region.MustParse("chr1:5-10/-").Hash())

	byHash := map[uint64]region.Region{a.Hash(): a}
	expect.EQ(t, byHash[b.Hash()], b)
}

func TestJSONMapKeys(t *testing.T) {
	m := map[region.Region]int{region.MustParse("chr1:5-10/+"): 1, region.MustParse(":3"): 2}
	data, err := json.Marshal(m)
	assert.NoError(t, err)
	expect.EQ(t, string(data), `{":3":2,"chr1:5-10/+":1}`)

	var back map[region.Region]int
	assert.NoError(t, json.Unmarshal(data, &back))
	expect.EQ(t, back, m)
}
