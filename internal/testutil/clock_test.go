package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFixedClock_SetAndAdvance tests the mutable test clock.
func TestFixedClock_SetAndAdvance(t *testing.T) {
	c := NewFixedClock("2024-06-03")
	assert.Equal(t, "2024-06-03", c.Today().String())

	c.Advance(1)
	assert.Equal(t, "2024-06-04", c.Today().String())

	c.Advance(28)
	assert.Equal(t, "2024-07-02", c.Today().String())

	c.Set("2024-06-03")
	assert.Equal(t, "2024-06-03", c.Today().String())
}
