package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{10 * 1024 * 1024, "10.0 MB"},
		{200 * 1024 * 1024 * 1024, "200 GB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3.00 TB"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatBytes(tc.in), "FormatBytes(%d)", tc.in)
	}
}
