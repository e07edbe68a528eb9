package model

import (
	"time"

	"github.com/google/uuid"
)

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ColorModel mirrors the 'colors' table.
type ColorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	Hex       string    `gorm:"type:varchar(7);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ColorModel) TableName() string {
	return "colors"
}

// ProductModel mirrors the 'products' table. Stock is maintained only
// through receipt/realization postings.
type ProductModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string     `gorm:"type:varchar(255);not null"`
	SKU        string     `gorm:"column:sku;type:varchar(50);unique;not null"`
	BrandID    *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	ColorID    *uuid.UUID `gorm:"type:uuid;index"`
	Unit       string     `gorm:"type:varchar(20)"`
	Price      int64      `gorm:"not null;default:0"`
	Stock      int        `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time `gorm:"index"`

	Brand    *BrandModel    `gorm:"foreignKey:BrandID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Color    *ColorModel    `gorm:"foreignKey:ColorID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
