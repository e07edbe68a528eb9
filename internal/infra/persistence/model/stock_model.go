package model

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptModel mirrors the 'receipts' table.
type ReceiptModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Number      string    `gorm:"type:varchar(50);unique;not null"`
	Supplier    string    `gorm:"type:varchar(255)"`
	Note        string    `gorm:"type:text"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []*ReceiptItemModel `gorm:"foreignKey:ReceiptID"`
}

// TableName explicitly sets the table name for GORM.
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ReceiptItemModel mirrors the 'receipt_items' table. ReceiptID is
// nullable: legacy rows imported before the foreign key existed carry
// NULL and are linked by the creation-time window fallback.
type ReceiptItemModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReceiptID *uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quantity  int        `gorm:"not null"`
	UnitCost  int64      `gorm:"not null;default:0"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ReceiptItemModel) TableName() string {
	return "receipt_items"
}

// RealizationModel mirrors the 'realizations' table.
type RealizationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Number      string    `gorm:"type:varchar(50);unique;not null"`
	Customer    string    `gorm:"type:varchar(255)"`
	Note        string    `gorm:"type:text"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []*RealizationItemModel `gorm:"foreignKey:RealizationID"`
}

// TableName explicitly sets the table name for GORM.
func (RealizationModel) TableName() string {
	return "realizations"
}

// RealizationItemModel mirrors the 'realization_items' table.
// RealizationID is nullable for the same legacy reason as receipt items.
type RealizationItemModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RealizationID *uuid.UUID `gorm:"type:uuid;index"`
	ProductID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quantity      int        `gorm:"not null"`
	UnitPrice     int64      `gorm:"not null;default:0"`
	CreatedAt     time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (RealizationItemModel) TableName() string {
	return "realization_items"
}
