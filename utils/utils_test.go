package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(23, 0, 0)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 3, p.TotalPages)

	start, end := p.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)
}

func TestPaginationBounds(t *testing.T) {
	cases := []struct {
		total, page, size int
		start, end        int
	}{
		{23, 3, 10, 20, 23},
		{23, 4, 10, 23, 23},
		{0, 1, 10, 0, 0},
		{5, 1, 2, 0, 2},
		{5, math.MaxInt, 2, 5, 5},
		{5, math.MaxInt/4 + 2, 4, 5, 5},
		{250, 2, 1000, 100, 200},
	}

	for _, c := range cases {
		start, end := CreatePagination(c.total, c.page, c.size).Bounds()
		if start != c.start || end != c.end {
			t.Fatalf("Bounds(%d, %d, %d) = (%d, %d); want (%d, %d)", c.total, c.page, c.size, start, end, c.start, c.end)
		}
	}
}

func TestCreatePagination_CapsPageSize(t *testing.T) {
	p := CreatePagination(500, 1, 5000)
	assert.Equal(t, MaxPageSize, p.PageSize)
	assert.Equal(t, 5, p.TotalPages)
}

func TestNormalizeSKU(t *testing.T) {
	cases := map[string]string{
		"rn-005":     "LX-RN-005",
		" LX-RN-001": "LX-RN-001",
		"lx-lg-004":  "LX-LG-004",
		"":           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeSKU(in), in)
	}
}
