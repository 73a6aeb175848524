package notification

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/veridian-studio/backoffice/internal/adminuser"
)

// Type enumerates the notification kinds the back office understands.
type Type string

const (
	TypeContactForm    Type = "contact_form"
	TypeTestimonial    Type = "testimonial"
	TypeAdminAction    Type = "admin_action"
	TypeSystemAlert    Type = "system_alert"
	TypeApprovalNeeded Type = "approval_needed"
)

// Valid reports whether t is one of the five enumerated kinds.
func (t Type) Valid() bool {
	switch t {
	case TypeContactForm, TypeTestimonial, TypeAdminAction, TypeSystemAlert, TypeApprovalNeeded:
		return true
	}
	return false
}

var (
	ErrInvalidType   = errors.New("invalid notification type")
	ErrInvalidTarget = errors.New("exactly one of recipient user or recipient role must be set")
	ErrMissingFields = errors.New("title and message are required")
	ErrNotFound      = errors.New("notification not found")
)

// Target is the tagged union naming who a notification is for: one
// specific admin user, or every admin holding a role.
type Target struct {
	UserID string
	Role   adminuser.Role
}

// ByUser targets one admin-user record.
func ByUser(adminUserID string) Target {
	return Target{UserID: adminUserID}
}

// ByRole broadcasts to every admin holding the role.
func ByRole(role adminuser.Role) Target {
	return Target{Role: role}
}

// Validate enforces the exactly-one invariant.
func (t Target) Validate() error {
	if (t.UserID == "") == (t.Role == "") {
		return ErrInvalidTarget
	}
	if t.Role != "" && !t.Role.Valid() {
		return ErrInvalidTarget
	}
	return nil
}

// Notification is a persisted back-office notification. For a
// role-broadcast row IsRead reflects the viewing recipient's read
// receipt, not shared state.
type Notification struct {
	ID            string          `json:"id"`
	Type          Type            `json:"type"`
	Title         string          `json:"title"`
	Message       string          `json:"message"`
	RecipientID   *string         `json:"recipient_id,omitempty"`
	RecipientRole *adminuser.Role `json:"recipient_role,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	IsRead        bool            `json:"is_read"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateInput carries everything needed to create a notification.
type CreateInput struct {
	Type      Type
	Title     string
	Message   string
	Target    Target
	Metadata  json.RawMessage
	SendEmail bool
}

// Recipient identifies the admin reading notifications. Visibility:
// a notification is visible when it targets the recipient's id or role.
type Recipient struct {
	AdminID string
	Role    adminuser.Role
}

// ListResult is a page of notifications with counts for the bell.
type ListResult struct {
	Notifications []*Notification `json:"notifications"`
	Total         int             `json:"total"`
	UnreadCount   int             `json:"unreadCount"`
	Limit         int             `json:"limit"`
	Offset        int             `json:"offset"`
}
