package entity

import (
	"time"

	"github.com/google/uuid"
)

// ParseJob tracks one parse request's lifecycle for data transfer between layers.
type ParseJob struct {
	ID            uuid.UUID  `json:"id"`
	DocumentURL   string     `json:"document_url"`
	Status        string     `json:"status"`
	PageCount     int        `json:"page_count"`
	WarningCount  int        `json:"warning_count"`
	LineItemCount int        `json:"line_item_count"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	Summary       *string    `json:"summary,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

// InvoiceRecord is a persisted parse result for data transfer between layers.
type InvoiceRecord struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	Invoice   Invoice   `json:"invoice"`
	Warnings  []Warning `json:"warnings"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
