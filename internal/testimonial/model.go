package testimonial

import (
	"errors"
	"time"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrMissingFields = errors.New("client name and content are required")
	ErrNotFound      = errors.New("testimonial not found")
)

// Testimonial is a client review. Submissions start unapproved and only
// approved rows appear on the public site.
type Testimonial struct {
	ID            string    `json:"id"`
	ClientName    string    `json:"client_name"`
	ClientRole    string    `json:"client_role,omitempty"`
	ClientCompany string    `json:"client_company,omitempty"`
	Content       string    `json:"content"`
	Rating        int       `json:"rating"`
	IsApproved    bool      `json:"is_approved"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitInput carries a public testimonial submission.
type SubmitInput struct {
	ClientName    string `json:"client_name"`
	ClientRole    string `json:"client_role"`
	ClientCompany string `json:"client_company"`
	Content       string `json:"content"`
	Rating        int    `json:"rating"`
}

// Moderation is the admin partial update: approval and featuring.
type Moderation struct {
	IsApproved *bool `json:"is_approved"`
	IsFeatured *bool `json:"is_featured"`
}
