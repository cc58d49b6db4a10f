// Package entity defines the domain entities for the tasks feature.
package entity

import "time"

// Task priorities. Anything else coerces to PriorityMedium on write.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a single to-do item. Every task belongs to exactly one
// user; it is never visible to or mutable by anyone else.
type Task struct {
	// ID is a random UUID so task identifiers cannot be enumerated.
	ID string `gorm:"primaryKey;size:36"`

	// UserID is the owning user's identity. Immutable after creation.
	UserID uint `gorm:"index;not null"`

	// Title is required and non-empty.
	Title string `gorm:"size:255;not null"`

	// Description is optional free text.
	Description string

	// Priority is one of low, medium, high.
	Priority string `gorm:"size:10;not null;default:medium"`

	// DueDate is an optional calendar date.
	DueDate *time.Time

	// Completed reports whether the task is done.
	Completed bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizePriority maps unrecognized priority values to the default.
func NormalizePriority(p string) string {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p
	default:
		return PriorityMedium
	}
}
