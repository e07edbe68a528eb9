package model

import (
	"time"

	"github.com/google/uuid"
)

// UserActionModel mirrors the 'user_actions' audit table. Append-only.
type UserActionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Action    string    `gorm:"type:varchar(100);not null"`
	Method    string    `gorm:"type:varchar(10);not null"`
	Path      string    `gorm:"type:varchar(255);not null"`
	EntityID  string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserActionModel) TableName() string {
	return "user_actions"
}
