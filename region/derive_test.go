package region_test

import (
	"testing"

	"github.com/grailbio/genomic/region"
	"github.com/grailbio/testutil/expect"
)

func TestShared(t *testing.T) {
	tests := []struct {
		a, b string
		want string
		ok   bool
	}{
		{"chr1:5-10/+", "chr1:8-20/+", "chr1:8-10/+", true},
		{":1-10", "chr1:5-20/-", ":5-10", true},
		{"chr1:5-20/-", ":1-10", ":5-10", true},
		{":5-10", "chr1:8-20/+", ":8-10", true},
		{"chr1:5-10", "chr1:8-20/+", "chr1:8-10", true},
		{"c:1-10/+", "c:5-20/-", "c:5-10", true},
		{"c:1-10", "c:10-20", "c:10", true},
		{"c:1-10", "c:11-20", "", false},
		{"c:1-10", "d:1-10", "", false},
	}
	for _, test := range tests {
		a, b := region.MustParse(test.a), region.MustParse(test.b)
		got, ok := a.Shared(b)
		expect.EQ(t, ok, test.ok, test)
		if ok {
			expect.EQ(t, got.String(), test.want, test)
		}
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		a, b          string
		before, after string
	}{
		{"c:1-10", "c:5-20", "c:1-4", "c:11-20"},
		{"c:5-20", "c:1-10", "c:1-4", "c:11-20"},
		{"c:1-10", "c:1-20", "c:0", "c:11-20"},
		{"c:1-10/+", "c:1-10/+", "c:0/+", "c:0/+"},
		{"c:1-20", "c:5-10", "c:1-4", "c:11-20"},
		{":1-20/-", "c:5-10", ":1-4", ":11-20"},
		{":5-10", "chr1:8-20/+", ":5-7", ":11-20"},
		{"c:1-10/-", "c:1-20/-", "c:0/-", "c:11-20/-"},
	}
	for _, test := range tests {
		a, b := region.MustParse(test.a), region.MustParse(test.b)
		before, after, ok := a.Diff(b)
		expect.True(t, ok, test)
		expect.EQ(t, before.String(), test.before, test)
		expect.EQ(t, after.String(), test.after, test)
	}
	_, _, ok := region.MustParse("c:1-5").Diff(region.MustParse("c:6-9"))
	expect.False(t, ok)
}

func TestUnion(t *testing.T) {
	tests := []struct {
		a, b string
		want string
		ok   bool
	}{
		{"c:1-5", "c:6-10", "c:1-10", true},
		{"c:6-10", "c:1-5", "c:1-10", true},
		{"c:1-8", "c:5-10", "c:1-10", true},
		{"c:1-20", "c:5-10", "c:1-20", true},
		{"c:1-5/+", ":6-10", ":1-10", true},
		{":5-10", "chr1:8-20/+", ":5-20", true},
		{"c:1-5/+", "c:6-10/+", "c:1-10/+", true},
		{"c:1-5", "c:7-10", "", false},
		{"c:1-5", "d:6-10", "", false},
	}
	for _, test := range tests {
		a, b := region.MustParse(test.a), region.MustParse(test.b)
		got, ok := a.Union(b)
		expect.EQ(t, ok, test.ok, test)
		if ok {
			expect.EQ(t, got.String(), test.want, test)
		}
	}
}

func TestGap(t *testing.T) {
	tests := []struct {
		a, b string
		want string
		ok   bool
	}{
		{"c:1-5", "c:10-20", "c:6-9", true},
		{"c:10-20", "c:1-5", "c:6-9", true},
		{"c:1-5/+", "c:10-20", "c:6-9", true},
		{"c:1-3/+", "c:7-9", "c:4-6", true},
		{"c:1-3/-", "c:7-9/-", "c:4-6/-", true},
		{"c:1-5/+", "c:6-9", "c:0", true},
		{"c:1-5", "c:7", "c:6", true},
		{"c:1-5", "c:6-9", "c:0", true},
		{"c:1-5", "c:5-9", "", false},
		{"c:1-5", "d:10-20", "", false},
	}
	for _, test := range tests {
		a, b := region.MustParse(test.a), region.MustParse(test.b)
		got, ok := a.Gap(b)
		expect.EQ(t, ok, test.ok, test)
		if ok {
			expect.EQ(t, got.String(), test.want, test)
		}
	}
}

func TestCoverage(t *testing.T) {
	a, b := region.MustParse("c:1-10"), region.MustParse("c:6-20")
	n, ok := a.SharedLen(b)
	expect.True(t, ok)
	expect.EQ(t, n, 5)

	covered, ok := a.CoveredRate(b)
	expect.True(t, ok)
	expect.EQ(t, covered, 0.5)
	captured, ok := a.CapturedRate(b)
	expect.True(t, ok)
	expect.EQ(t, captured, float64(5)/float64(15))

	n, ok = a.SharedLen(region.MustParse("c:11-20"))
	expect.True(t, ok)
	expect.EQ(t, n, 0)

	_, ok = a.SharedLen(region.MustParse("d:1-10"))
	expect.False(t, ok)
	_, ok = a.CoveredRate(region.MustParse("d:1-10"))
	expect.False(t, ok)
}
