package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults for zero values", 0, 0, 1, 20, 0},
		{"negative values clamp to defaults", -5, -1, 1, 20, 0},
		{"valid values pass through", 3, 10, 3, 10, 20},
		{"limit capped at maximum", 2, 500, 2, 100, 100},
		{"first page yields zero offset", 1, 50, 1, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := NormalizePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestColorHexByName(t *testing.T) {
	hex, ok := ColorHexByName("красный")
	assert.True(t, ok)
	assert.Equal(t, "#FF0000", hex)

	// Case-insensitive with surrounding whitespace.
	hex, ok = ColorHexByName("  Белый ")
	assert.True(t, ok)
	assert.Equal(t, "#FFFFFF", hex)

	// The ё/е spellings are both known and deterministic.
	withYo, ok := ColorHexByName("чёрный")
	assert.True(t, ok)
	withE, ok2 := ColorHexByName("черный")
	assert.True(t, ok2)
	assert.Equal(t, withYo, withE)

	_, ok = ColorHexByName("несуществующий")
	assert.False(t, ok)
}

func TestIsValidHexCode(t *testing.T) {
	assert.True(t, IsValidHexCode("#FFAA00"))
	assert.True(t, IsValidHexCode("#ffaa00"))
	assert.False(t, IsValidHexCode("FFAA00"))
	assert.False(t, IsValidHexCode("#FFF"))
	assert.False(t, IsValidHexCode("#GGHHII"))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "красный шкаф", CleanText("  красный   шкаф \n"))
	assert.Equal(t, "", CleanText("   "))
	assert.Equal(t, "a b c", CleanText("a\tb\n c"))
}
