// Package util holds small pure helpers shared across layers.
package util

import (
	"regexp"
	"strings"
)

const (
	// DefaultPage is used when the page query parameter is absent or invalid.
	DefaultPage = 1
	// DefaultLimit is used when the limit query parameter is absent or invalid.
	DefaultLimit = 20
	// MaxLimit caps the page size of any listing.
	MaxLimit = 100
)

// NormalizePagination clamps raw page/limit values to valid ranges and
// returns the resulting page, limit and offset.
func NormalizePagination(page, limit int) (normPage, normLimit, offset int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return page, limit, (page - 1) * limit
}

// colorHexByName maps known (Russian) color names to their display hex codes.
var colorHexByName = map[string]string{
	"белый":      "#FFFFFF",
	"черный":     "#000000",
	"чёрный":     "#000000",
	"красный":    "#FF0000",
	"зеленый":    "#008000",
	"зелёный":    "#008000",
	"синий":      "#0000FF",
	"голубой":    "#87CEEB",
	"желтый":     "#FFFF00",
	"жёлтый":     "#FFFF00",
	"оранжевый":  "#FFA500",
	"фиолетовый": "#8A2BE2",
	"розовый":    "#FFC0CB",
	"коричневый": "#8B4513",
	"серый":      "#808080",
	"бежевый":    "#F5F5DC",
	"бордовый":   "#800000",
	"золотой":    "#FFD700",
	"серебряный": "#C0C0C0",
	"хаки":       "#806B2A",
}

// ColorHexByName returns the deterministic hex code for a known color
// name (case-insensitive, surrounding whitespace ignored). The second
// return value reports whether the name is known.
func ColorHexByName(name string) (string, bool) {
	hex, ok := colorHexByName[strings.ToLower(strings.TrimSpace(name))]

	return hex, ok
}

var hexCodeRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsValidHexCode reports whether s is a "#RRGGBB" color code.
func IsValidHexCode(s string) bool {
	return hexCodeRe.MatchString(s)
}

var spaceRe = regexp.MustCompile(`\s+`)

// CleanText trims a free-form input string and collapses internal
// whitespace runs to single spaces.
func CleanText(s string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}
