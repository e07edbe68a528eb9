// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a product manufacturer or trademark.
type Brand struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category groups products into an assortment tree (flat in this system).
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Color is a named color with its display hex code.
type Color struct {
	ID        uuid.UUID
	Name      string
	Hex       string // "#RRGGBB", derived from the name when not provided explicitly.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is a stock-keeping unit in the catalog.
// Stock holds the current on-hand quantity and is maintained exclusively
// by receipt/realization postings.
type Product struct {
	ID         uuid.UUID
	Name       string
	SKU        string // Unique article code.
	BrandID    *uuid.UUID
	CategoryID *uuid.UUID
	ColorID    *uuid.UUID
	Unit       string // Sales unit, e.g. "шт", "кг".
	Price      int64  // Unit price in minor currency units (kopecks).
	Stock      int
	Brand      *Brand
	Category   *Category
	Color      *Color
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
