package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/veridian-studio/backoffice/internal/adminuser"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

// RoutingRule defines how a site event turns into a notification.
type RoutingRule struct {
	Type      Type
	Role      adminuser.Role
	SendEmail bool
}

// DefaultRoutingRules maps each site event to its notification shape.
// Contact-form submissions alert every admin by email; testimonials
// only need an approval notification in the bell.
var DefaultRoutingRules = map[EventType]RoutingRule{
	EventInquirySubmitted: {
		Type:      TypeContactForm,
		Role:      adminuser.RoleAdmin,
		SendEmail: true,
	},
	EventTestimonialSubmitted: {
		Type:      TypeApprovalNeeded,
		Role:      adminuser.RoleAdmin,
		SendEmail: false,
	},
}

// Router turns site events into role-broadcast notifications.
type Router struct {
	service *Service
	rules   map[EventType]RoutingRule
	logger  *observability.Logger
}

func NewRouter(service *Service, logger *observability.Logger) *Router {
	return &Router{
		service: service,
		rules:   DefaultRoutingRules,
		logger:  logger,
	}
}

// Route processes one event envelope. Unknown event types are skipped.
func (r *Router) Route(ctx context.Context, event *Event) error {
	rule, ok := r.rules[event.Type]
	if !ok {
		r.logger.Warn("no routing rule for event type", "event_type", string(event.Type))
		return nil
	}

	in, err := r.buildInput(event, rule)
	if err != nil {
		return fmt.Errorf("failed to build notification for event %s: %w", event.ID, err)
	}

	if _, err := r.service.Create(ctx, in); err != nil {
		return fmt.Errorf("failed to create notification for event %s: %w", event.ID, err)
	}
	return nil
}

// HandleMessage adapts Route to the Kafka consumer callback.
func (r *Router) HandleMessage(key string, value []byte) error {
	var event Event
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal site event: %w", err)
	}
	return r.Route(context.Background(), &event)
}

func (r *Router) buildInput(event *Event, rule RoutingRule) (CreateInput, error) {
	in := CreateInput{
		Type:      rule.Type,
		Target:    ByRole(rule.Role),
		SendEmail: rule.SendEmail,
	}

	switch event.Type {
	case EventInquirySubmitted:
		data, err := event.ParseInquirySubmittedData()
		if err != nil {
			return in, err
		}
		in.Title = "New contact inquiry"
		in.Message = fmt.Sprintf("%s (%s) submitted a contact inquiry.", data.Name, data.Email)
		meta, err := MarshalMeta(ContactFormMeta{
			InquiryID: data.InquiryID,
			Name:      data.Name,
			Email:     data.Email,
		})
		if err != nil {
			return in, err
		}
		in.Metadata = meta

	case EventTestimonialSubmitted:
		data, err := event.ParseTestimonialSubmittedData()
		if err != nil {
			return in, err
		}
		in.Title = "Testimonial awaiting approval"
		in.Message = fmt.Sprintf("%s submitted a %d-star testimonial.", data.ClientName, data.Rating)
		meta, err := MarshalMeta(ApprovalNeededMeta{
			EntityKind: "testimonial",
			EntityID:   data.TestimonialID,
		})
		if err != nil {
			return in, err
		}
		in.Metadata = meta
	}

	return in, nil
}
