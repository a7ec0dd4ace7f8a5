package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10!", Truncate("exactly10!", 10))
	assert.Equal(t, "this is...", Truncate("this is a long preview line", 10))
	assert.Equal(t, "añ...", Truncate("añejo reclamo", 5))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512B", FormatBytes(512))
	assert.Equal(t, "1.0KB", FormatBytes(1024))
	assert.Equal(t, "1.5KB", FormatBytes(1536))
	assert.Equal(t, "10.0MB", FormatBytes(10*1024*1024))
}
