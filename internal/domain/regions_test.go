package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCoordinate(t *testing.T) {
	c, ok := LookupCoordinate("  Abu Dhabi ")
	assert.True(t, ok)
	assert.Equal(t, 24.4539, c.Lat)

	_, ok = LookupCoordinate("Atlantis")
	assert.False(t, ok)
}

func TestResolveCoordinate_Fallback(t *testing.T) {
	assert.Equal(t, DefaultCoordinate, ResolveCoordinate("Atlantis"))
	assert.Equal(t, DefaultCoordinate, ResolveCoordinate(""))
	assert.Equal(t, ResolveCoordinate("ras al khaimah"), ResolveCoordinate("RAK"))
}
