// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	// TaskStatusOpen is the initial state of a new task.
	TaskStatusOpen TaskStatus = "open"
	// TaskStatusInProgress means an assignee started working on the task.
	TaskStatusInProgress TaskStatus = "in_progress"
	// TaskStatusDone is terminal.
	TaskStatusDone TaskStatus = "done"
)

// IsValid checks if the TaskStatus is a valid value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a status change is allowed.
// open -> in_progress -> done, plus reopening from in_progress.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	switch s {
	case TaskStatusOpen:
		return next == TaskStatusInProgress
	case TaskStatusInProgress:
		return next == TaskStatusDone || next == TaskStatusOpen
	case TaskStatusDone:
		return false
	default:
		return false
	}
}

// Task is a work item assigned to a warehouse employee.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	AssigneeID  *uuid.UUID
	Status      TaskStatus
	DueDate     *time.Time
	CreatedByID uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
