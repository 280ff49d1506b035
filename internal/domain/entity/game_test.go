package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGameName(t *testing.T) {
	assert.Equal(t, "space raiders ii", NormalizeGameName("  Space Raiders II  "))
	assert.Equal(t, "doom", NormalizeGameName("DOOM"))
	assert.Equal(t, "", NormalizeGameName("   "))
}

func TestValidRating(t *testing.T) {
	assert.False(t, ValidRating(0))
	assert.True(t, ValidRating(MinRating))
	assert.True(t, ValidRating(3))
	assert.True(t, ValidRating(MaxRating))
	assert.False(t, ValidRating(6))
}
