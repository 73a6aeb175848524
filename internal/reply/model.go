package reply

import (
	"errors"
	"time"
)

// TargetKind names what an admin reply is addressed to.
type TargetKind string

const (
	TargetInquiry     TargetKind = "inquiry"
	TargetTestimonial TargetKind = "testimonial"
)

func (k TargetKind) Valid() bool {
	return k == TargetInquiry || k == TargetTestimonial
}

var (
	ErrForbidden     = errors.New("caller is not an admin")
	ErrInvalidTarget = errors.New("target kind must be inquiry or testimonial")
	ErrMissingFields = errors.New("subject, message, recipient email and recipient name are required")
	ErrNotFound      = errors.New("reply target not found")
	ErrEmailDelivery = errors.New("email delivery failed")
)

// AdminReply is an immutable audit record of one sent reply.
type AdminReply struct {
	ID             string     `json:"id"`
	TargetKind     TargetKind `json:"target_kind"`
	TargetID       string     `json:"target_id"`
	AdminID        string     `json:"admin_id"`
	AdminName      string     `json:"admin_name"`
	AdminEmail     string     `json:"admin_email"`
	RecipientEmail string     `json:"recipient_email"`
	RecipientName  string     `json:"recipient_name"`
	Subject        string     `json:"subject"`
	Message        string     `json:"message"`
	CreatedAt      time.Time  `json:"created_at"`
}

// SendInput carries one reply request.
type SendInput struct {
	TargetKind     TargetKind
	TargetID       string
	Subject        string
	Message        string
	RecipientEmail string
	RecipientName  string
}
