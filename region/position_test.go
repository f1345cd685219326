package region_test

import (
	"testing"

	"github.com/grailbio/genomic/region"
	"github.com/grailbio/testutil/expect"
)

func TestAt(t *testing.T) {
	r := region.MustParse("c:5-10")
	for offset, want := range map[int]int{0: 5, 5: 10, 6: 0, -1: 10, -6: 5, -7: 0} {
		expect.EQ(t, r.At(offset), want, offset)
	}
	expect.EQ(t, region.Region{}.At(0), 0)
}

func TestRelPos(t *testing.T) {
	r := region.MustParse("c:5-10")
	rev := region.MustParse("c:5-10/-")

	rel, ok := r.RelPos(7, false)
	expect.True(t, ok)
	expect.EQ(t, rel, 2)
	rel, _ = rev.RelPos(7, false)
	expect.EQ(t, rel, 2)
	rel, _ = rev.RelPos(7, true)
	expect.EQ(t, rel, 3)
	rel, ok = r.RelPos(3, false)
	expect.True(t, ok)
	expect.EQ(t, rel, -2)
	_, ok = r.RelPos(0, false)
	expect.False(t, ok)

	rel, _ = r.RelPosLast(7, false)
	expect.EQ(t, rel, -3)
	rel, _ = rev.RelPosLast(7, true)
	expect.EQ(t, rel, -2)

	rel, ok = r.RelPosOf(region.MustParse("c:7-9"), false)
	expect.True(t, ok)
	expect.EQ(t, rel, 2)
	rel, ok = r.RelPosLastOf(region.MustParse(":7-9"), false)
	expect.True(t, ok)
	expect.EQ(t, rel, -3)
	_, ok = r.RelPosOf(region.MustParse("d:7-9"), false)
	expect.False(t, ok)
}

func TestRelPosRatio(t *testing.T) {
	r := region.MustParse("c:5-10")
	for pos, want := range map[int]float64{5: 0, 10: 1, 7: 0.4} {
		got, ok := r.RelPosRatio(pos, false)
		expect.True(t, ok, pos)
		expect.EQ(t, got, want, pos)
	}
	_, ok := r.RelPosRatio(11, false)
	expect.False(t, ok)
	_, ok = r.RelPosRatio(4, false)
	expect.False(t, ok)

	got, ok := region.MustParse("c:5-10/-").RelPosRatio(10, true)
	expect.True(t, ok)
	expect.EQ(t, got, 0.0)

	got, ok = region.MustParse("c:5").RelPosRatio(5, false)
	expect.True(t, ok)
	expect.EQ(t, got, 0.0)
}

func TestRelPosRatioOf(t *testing.T) {
	r := region.MustParse("c:5-10")
	got, ok := r.RelPosRatioOf(region.MustParse("c:9-13"), false)
	expect.True(t, ok)
	expect.EQ(t, got, 1.0)
	got, ok = r.RelPosRatioOf(region.MustParse(":7-11"), false)
	expect.True(t, ok)
	expect.EQ(t, got, 0.5)
	got, ok = r.RelPosRatioOf(region.MustParse("c:8"), false)
	expect.True(t, ok)
	expect.EQ(t, got, 3.0)

	got, ok = region.MustParse("c:5-10/-").RelPosRatioOf(region.MustParse("c:6-10"), true)
	expect.True(t, ok)
	expect.EQ(t, got, 1.0)

	_, ok = r.RelPosRatioOf(region.MustParse("d:7-9"), false)
	expect.False(t, ok)
	_, ok = r.RelPosRatioOf(region.MustParse("c"), false)
	expect.False(t, ok)
}

func TestSlice(t *testing.T) {
	r := region.MustParse("c:1-10/-")
	tests := []struct {
		offset, length int
		want           string
		ok             bool
	}{
		{2, 3, "c:3-5/-", true},
		{8, 5, "c:9-10/-", true},
		{0, 0, "c:1-10/-", true},
		{-3, 0, "c:8-10/-", true},
		{9, 1, "c:10/-", true},
		{10, 1, "", false},
	}
	for _, test := range tests {
		got, ok := r.Slice(test.offset, test.length)
		expect.EQ(t, ok, test.ok, test)
		if ok {
			expect.EQ(t, got.String(), test.want, test)
		}
	}
}

func TestSlices(t *testing.T) {
	var got []string
	for _, s := range region.MustParse(":1-10").Slices(4) {
		got = append(got, s.String())
	}
	expect.EQ(t, got, []string{":1-4", ":5-8", ":9-10"})

	expect.EQ(t, len(region.MustParse("c:0").Slices(4)), 0)
	expect.EQ(t, region.MustParse("c:3-7").Slices(0), []region.Region{region.MustParse("c:3-7")})

	for n := 1; n <= 20; n++ {
		r, err := region.New("c", 3, 3+n-1, "+")
		expect.NoError(t, err)
		for length := 1; length <= 7; length++ {
			slices := r.Slices(length)
			expect.EQ(t, len(slices), (n+length-1)/length)
			next, total := r.First(), 0
			for _, s := range slices {
				expect.EQ(t, s.First(), next)
				expect.True(t, s.Len() <= length)
				expect.EQ(t, s.Strand(), region.Forward)
				next = s.Last() + 1
				total += s.Len()
			}
			expect.EQ(t, total, n)
		}
	}
}
