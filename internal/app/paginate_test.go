package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":                      1,
		"1":                     1,
		"3":                     3,
		"0":                     0,
		"-2":                    -2,
		"abc":                   1,
		"2.5":                   1,
		"99999999999999999999":  math.MaxInt,
		"-99999999999999999999": math.MinInt,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParsePage(raw), "raw=%q", raw)
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     []int
	}{
		{name: "first page", page: 1, pageSize: 10, want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{name: "partial last page", page: 3, pageSize: 10, want: []int{21, 22, 23, 24, 25}},
		{name: "past the end", page: 4, pageSize: 10, want: []int{}},
		{name: "zero page", page: 0, pageSize: 10, want: []int{}},
		{name: "negative page", page: -1, pageSize: 10, want: []int{}},
		{name: "offset would overflow", page: math.MaxInt/10 + 1, pageSize: 10, want: []int{}},
		{name: "max page", page: math.MaxInt, pageSize: 10, want: []int{}},
		{name: "min page", page: math.MinInt, pageSize: 10, want: []int{}},
		{name: "default size", page: 2, pageSize: 0, want: []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.pageSize)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	got := Paginate([]string(nil), 1, 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPaginateReturnsCopy(t *testing.T) {
	items := []int{1, 2, 3}
	got := Paginate(items, 1, 2)
	got[0] = 99
	assert.Equal(t, 1, items[0])
}

func TestPaginateHugeParsedPage(t *testing.T) {
	for _, raw := range []string{"922337203685477590", "99999999999999999999"} {
		got := Paginate([]int{1, 2, 3}, ParsePage(raw), 10)
		assert.Empty(t, got, "raw=%q", raw)
	}
}
