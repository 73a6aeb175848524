package notification

import (
	"encoding/json"
)

// Each notification kind carries its own structured metadata payload.
// The row stores the payload as JSONB; these types and helpers keep the
// shape per kind explicit instead of an open key-value bag.

// ContactFormMeta accompanies TypeContactForm.
type ContactFormMeta struct {
	InquiryID string `json:"inquiry_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// TestimonialMeta accompanies TypeTestimonial.
type TestimonialMeta struct {
	TestimonialID string `json:"testimonial_id"`
	ClientName    string `json:"client_name"`
	Rating        int    `json:"rating"`
}

// AdminActionMeta accompanies TypeAdminAction.
type AdminActionMeta struct {
	ActorID string `json:"actor_id"`
	Action  string `json:"action"`
}

// SystemAlertMeta accompanies TypeSystemAlert.
type SystemAlertMeta struct {
	Severity string `json:"severity"`
	Source   string `json:"source"`
}

// ApprovalNeededMeta accompanies TypeApprovalNeeded.
type ApprovalNeededMeta struct {
	EntityKind string `json:"entity_kind"`
	EntityID   string `json:"entity_id"`
}

// MarshalMeta encodes a typed payload for storage.
func MarshalMeta(meta any) (json.RawMessage, error) {
	if meta == nil {
		return nil, nil
	}
	return json.Marshal(meta)
}

// ParseContactFormMeta decodes the metadata of a contact_form notification.
func (n *Notification) ParseContactFormMeta() (*ContactFormMeta, error) {
	var m ContactFormMeta
	if err := json.Unmarshal(n.Metadata, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseTestimonialMeta decodes the metadata of a testimonial notification.
func (n *Notification) ParseTestimonialMeta() (*TestimonialMeta, error) {
	var m TestimonialMeta
	if err := json.Unmarshal(n.Metadata, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseApprovalNeededMeta decodes the metadata of an approval_needed notification.
func (n *Notification) ParseApprovalNeededMeta() (*ApprovalNeededMeta, error) {
	var m ApprovalNeededMeta
	if err := json.Unmarshal(n.Metadata, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
