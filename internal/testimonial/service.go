package testimonial

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/veridian-studio/backoffice/internal/notification"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

// Publisher publishes site events to the event bus.
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Service owns testimonial business logic.
type Service struct {
	repo      Repository
	publisher Publisher
	fallback  *notification.Router
	logger    *observability.Logger
}

func NewService(repo Repository, logger *observability.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// UsePublisher routes submission events through the event bus.
func (s *Service) UsePublisher(p Publisher) {
	s.publisher = p
}

// UseFallbackRouter creates notifications in-process when no event bus
// is configured.
func (s *Service) UseFallbackRouter(r *notification.Router) {
	s.fallback = r
}

// Submit persists a public testimonial as pending approval and emits a
// testimonial.submitted event.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Testimonial, error) {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.Content = strings.TrimSpace(in.Content)
	if in.ClientName == "" || in.Content == "" {
		return nil, ErrMissingFields
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}

	t := &Testimonial{
		ClientName:    in.ClientName,
		ClientRole:    strings.TrimSpace(in.ClientRole),
		ClientCompany: strings.TrimSpace(in.ClientCompany),
		Content:       in.Content,
		Rating:        in.Rating,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	s.publishSubmitted(ctx, t)
	return t, nil
}

func (s *Service) publishSubmitted(ctx context.Context, t *Testimonial) {
	event, err := notification.NewEvent(notification.EventTestimonialSubmitted, notification.TestimonialSubmittedData{
		TestimonialID: t.ID,
		ClientName:    t.ClientName,
		Rating:        t.Rating,
	})
	if err != nil {
		s.logger.Error("failed to build testimonial event", "testimonial_id", t.ID, "error", err)
		return
	}

	if s.publisher != nil {
		body, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("failed to marshal testimonial event", "testimonial_id", t.ID, "error", err)
			return
		}
		if err := s.publisher.Publish(ctx, event.ID, body); err != nil {
			s.logger.Error("failed to publish testimonial event", "testimonial_id", t.ID, "error", err)
		}
		return
	}

	if s.fallback != nil {
		if err := s.fallback.Route(ctx, event); err != nil {
			s.logger.Error("failed to route testimonial event", "testimonial_id", t.ID, "error", err)
		}
	}
}

// PublicList serves approved testimonials to the marketing site. A
// store failure degrades to the hardcoded fallback set.
func (s *Service) PublicList(ctx context.Context, featuredOnly bool) []*Testimonial {
	items, err := s.repo.ListApproved(ctx, featuredOnly)
	if err != nil {
		s.logger.Error("failed to list testimonials, serving fallback", "error", err)
		return FallbackTestimonials(featuredOnly)
	}
	if items == nil {
		items = []*Testimonial{}
	}
	return items
}

// AdminList returns every testimonial, approved or not.
func (s *Service) AdminList(ctx context.Context) ([]*Testimonial, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	if items == nil {
		items = []*Testimonial{}
	}
	return items, nil
}

// Moderate sets approval and featuring flags.
func (s *Service) Moderate(ctx context.Context, id string, m Moderation) (*Testimonial, error) {
	t, err := s.repo.Moderate(ctx, id, m)
	if err != nil {
		return nil, fmt.Errorf("failed to moderate testimonial: %w", err)
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// Delete removes a testimonial.
func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
