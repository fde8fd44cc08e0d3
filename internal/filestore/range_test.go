package filestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	const length = 10000

	cases := []struct {
		header     string
		start, end int64
	}{
		{"bytes=0-999", 0, 999},
		{"bytes=0-0", 0, 0},
		{"bytes=500-", 500, length - 1},
		{"bytes=9999-9999", 9999, 9999},
		{"bytes=9000-99999", 9000, length - 1}, // end clamped to last byte
	}
	for _, c := range cases {
		start, end, err := ParseRange(c.header, length)
		require.NoError(t, err, c.header)
		assert.Equal(t, c.start, start, c.header)
		assert.Equal(t, c.end, end, c.header)
	}
}

func TestParseRangeInvalid(t *testing.T) {
	const length = 10000

	headers := []string{
		"",
		"bytes",
		"items=0-999",
		"bytes=abc-def",
		"bytes=0-999,2000-2999", // multi-range unsupported
		"bytes=-500",            // suffix range unsupported
		"bytes=999-0",           // start > end
		"bytes=10000-",          // start == length
		"bytes=20000-30000",
	}
	for _, h := range headers {
		_, _, err := ParseRange(h, length)
		assert.ErrorIs(t, err, ErrInvalidRange, h)
	}
}
