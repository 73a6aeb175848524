package notification

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SiteEventsTopic is the Kafka topic carrying public-site events.
const SiteEventsTopic = "site-events"

// EventType represents a business event raised by the public site.
type EventType string

const (
	EventInquirySubmitted     EventType = "inquiry.submitted"
	EventTestimonialSubmitted EventType = "testimonial.submitted"
)

// Event is the envelope for all site events.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// InquirySubmittedData accompanies EventInquirySubmitted.
type InquirySubmittedData struct {
	InquiryID string `json:"inquiry_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message,omitempty"`
}

// TestimonialSubmittedData accompanies EventTestimonialSubmitted.
type TestimonialSubmittedData struct {
	TestimonialID string `json:"testimonial_id"`
	ClientName    string `json:"client_name"`
	Rating        int    `json:"rating"`
}

// NewEvent creates a new event with the given type and data.
func NewEvent(eventType EventType, data any) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        "evt_" + uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      dataBytes,
	}, nil
}

// ParseInquirySubmittedData parses the event data as InquirySubmittedData.
func (e *Event) ParseInquirySubmittedData() (*InquirySubmittedData, error) {
	var data InquirySubmittedData
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ParseTestimonialSubmittedData parses the event data as TestimonialSubmittedData.
func (e *Event) ParseTestimonialSubmittedData() (*TestimonialSubmittedData, error) {
	var data TestimonialSubmittedData
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
