package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "0ms", Format(0))
	assert.Equal(t, "0ms", Format(900*time.Microsecond))
	assert.Equal(t, "250ms", Format(250*time.Millisecond))
	assert.Equal(t, "999ms", Format(999*time.Millisecond))
	assert.Equal(t, "1s 0ms", Format(time.Second))
	assert.Equal(t, "2s 345ms", Format(2345*time.Millisecond))
	assert.Equal(t, "75s 10ms", Format(75*time.Second+10*time.Millisecond))
}

func TestSince(t *testing.T) {
	got := Since(time.Now().Add(-3 * time.Second))
	assert.Regexp(t, `^3s \d+ms$`, got)
}
