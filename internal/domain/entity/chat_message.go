// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a single message in the shared staff chat.
type ChatMessage struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string // Denormalized for listing without a join on deleted users.
	Text       string
	CreatedAt  time.Time
}
