package region_test

import (
	"testing"

	"github.com/grailbio/genomic/region"
	"github.com/grailbio/testutil/expect"
)

func TestRelations(t *testing.T) {
	tests := []struct {
		a, b string

		sharesLabel, shares, around, inside, covers, next bool
	}{
		{"chr1:5-10", "chr1:8-20", true, true, false, false, false, false},
		{"chr1:5-10", "chr1:11-15", true, false, true, false, false, true},
		{"chr1:5-10", "chr1:12-15", true, false, true, false, false, false},
		{"chr1:5-10", "chr2:5-10", false, false, false, false, false, false},
		{"chr1:5-10", ":7", true, true, false, false, true, false},
		{":7", "chr1:5-10", true, true, false, true, false, false},
		{"chr1:5-10", "chr1:5-10", true, true, false, true, true, false},
		{"chr1:5-10", "chr1:0", false, false, false, false, false, false},
		{"chr1:5-10/+", "chr1:1-20/-", true, true, false, true, false, false},
	}
	for _, test := range tests {
		a, b := region.MustParse(test.a), region.MustParse(test.b)
		expect.EQ(t, a.SharesLabel(b), test.sharesLabel, test)
		expect.EQ(t, a.Shares(b), test.shares, test)
		expect.EQ(t, a.Around(b), test.around, test)
		expect.EQ(t, a.Inside(b), test.inside, test)
		expect.EQ(t, a.Covers(b), test.covers, test)
		expect.EQ(t, a.Next(b), test.next, test)
		expect.EQ(t, b.Next(a), test.next, test)
	}
}

func TestSame(t *testing.T) {
	a := region.MustParse("chr1:5-10/+")
	expect.True(t, a.SameLabel(region.MustParse("chr1:1")))
	expect.False(t, a.SameLabel(region.MustParse(":5-10")))
	expect.True(t, a.SameRange(region.MustParse("x:5-10/-")))
	expect.False(t, a.SameRange(region.MustParse("chr1:5-11")))
	expect.True(t, a.SameStrand(region.MustParse(":1/f")))
	expect.False(t, a.SameStrand(region.MustParse("chr1:5-10")))
	expect.True(t, a.SharesPos(5))
	expect.True(t, a.SharesPos(10))
	expect.False(t, a.SharesPos(11))
	expect.False(t, a.SharesPos(0))
}

func TestSharesStrand(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"c:1/+", "c:1/+", true},
		{"c:1/+", "c:1", true},
		{"c:1", "c:1/-", true},
		{"c:1", "c:1", true},
		{"c:1/+", "c:1/-", false},
	}
	for _, test := range tests {
		a, b := region.MustParse(test.a), region.MustParse(test.b)
		expect.EQ(t, a.SharesStrand(b), test.want, test)
		expect.EQ(t, b.SharesStrand(a), test.want, test)
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		a, b   string
		orient bool
		dist   int
		ok     bool
	}{
		{"chr1:5-10", "chr1:8-20", false, 0, true},
		{"chr1:5-10", "chr1:11-15", false, 1, true},
		{"chr1:11-15", "chr1:5-10", false, -1, true},
		{"chr1:5-10", "chr1:20-30", false, 10, true},
		{"chr1:20-30", "chr1:5-10", false, -10, true},
		{"chr1:5-10/-", "chr1:11-15", false, 1, true},
		{"chr1:5-10/-", "chr1:11-15", true, -1, true},
		{"chr1:5-10/+", "chr1:11-15", true, 1, true},
		{"chr1:5-10", ":20", false, 10, true},
		{"chr1:5-10", "chr2:20", false, 0, false},
		{"chr1:5-10", ":0", false, 0, false},
	}
	for _, test := range tests {
		a, b := region.MustParse(test.a), region.MustParse(test.b)
		dist, ok := a.Dist(b, test.orient)
		expect.EQ(t, ok, test.ok, test)
		expect.EQ(t, dist, test.dist, test)
	}
}

func TestStream(t *testing.T) {
	a := region.MustParse("chr1:5-10")
	c := region.MustParse("chr1:11-15")
	expect.True(t, a.Upstream(c, false))
	expect.False(t, a.Downstream(c, false))
	expect.True(t, c.Downstream(a, false))
	expect.False(t, c.Upstream(a, false))

	// On the reverse strand higher coordinates come first.
	r := region.MustParse("chr1:5-10/-")
	expect.True(t, c.Downstream(r, false))
	expect.False(t, c.Downstream(r, true))
	expect.True(t, c.Upstream(r, true))

	// Overlapping and unrelated regions are neither.
	o := region.MustParse("chr1:8-12")
	expect.False(t, o.Upstream(a, false))
	expect.False(t, o.Downstream(a, false))
	x := region.MustParse("chrX:1-2")
	expect.False(t, x.Upstream(a, false))
	expect.False(t, x.Downstream(a, false))
}
