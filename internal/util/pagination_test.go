package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name       string
		page, size int
		from, want int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"negative page clamps to first", -2, 10, 0, 10},
		{"zero size uses default", 2, 0, DefaultPageSize, DefaultPageSize},
		{"oversized page size uses default", 1, 500, 0, DefaultPageSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, size := Calculate(tc.page, tc.size)
			require.Equal(t, tc.from, from)
			require.Equal(t, tc.want, size)
		})
	}
}
