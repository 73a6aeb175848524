package inquiry

import (
	"errors"
	"time"
)

// Status tracks where a contact inquiry sits in the staff workflow.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusArchived   Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

var (
	ErrInvalidStatus = errors.New("invalid inquiry status")
	ErrMissingFields = errors.New("name, email and message are required")
	ErrNotFound      = errors.New("inquiry not found")
)

// ContactInquiry is one submission from the public contact form.
type ContactInquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput carries a public contact-form submission.
type CreateInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ListResult is a page of inquiries with the matching total.
type ListResult struct {
	Inquiries []*ContactInquiry `json:"inquiries"`
	Total     int               `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}
