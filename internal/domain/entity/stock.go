// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receipt is a goods-arrival document. Posting a receipt increases the
// stock of every product listed in its items.
type Receipt struct {
	ID          uuid.UUID
	Number      string // Human-readable document number, unique.
	Supplier    string
	Note        string
	CreatedByID uuid.UUID
	Items       []*ReceiptItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReceiptItem is a single product line of a receipt.
type ReceiptItem struct {
	ID        uuid.UUID
	ReceiptID uuid.UUID
	ProductID uuid.UUID
	Product   *Product
	Quantity  int
	UnitCost  int64 // Purchase cost per unit in minor currency units.
	CreatedAt time.Time
}

// Realization is a shipment document. Posting a realization decreases
// the stock of every product listed in its items.
type Realization struct {
	ID          uuid.UUID
	Number      string
	Customer    string
	Note        string
	CreatedByID uuid.UUID
	Items       []*RealizationItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RealizationItem is a single product line of a realization.
type RealizationItem struct {
	ID            uuid.UUID
	RealizationID uuid.UUID
	ProductID     uuid.UUID
	Product       *Product
	Quantity      int
	UnitPrice     int64 // Sale price per unit in minor currency units.
	CreatedAt     time.Time
}

// TotalCost returns the document total of a receipt.
func (r *Receipt) TotalCost() int64 {
	var total int64
	for _, item := range r.Items {
		total += item.UnitCost * int64(item.Quantity)
	}

	return total
}

// TotalPrice returns the document total of a realization.
func (r *Realization) TotalPrice() int64 {
	var total int64
	for _, item := range r.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}

	return total
}
