package inquiry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/veridian-studio/backoffice/internal/notification"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Publisher publishes site events to the event bus.
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Service owns contact-inquiry business logic. Event publication is
// best effort: a bus failure never rolls back the inquiry row.
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

// Create persists a public contact-form submission and emits an
// inquiry.submitted event.
func (s *Service) Create(ctx context.Context, in CreateInput) (*ContactInquiry, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, ErrMissingFields
	}

	inquiry := &ContactInquiry{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   strings.TrimSpace(in.Phone),
		Message: in.Message,
	}
	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	s.publishSubmitted(ctx, inquiry)
	return inquiry, nil
}

func (s *Service) publishSubmitted(ctx context.Context, in *ContactInquiry) {
	event, err := notification.NewEvent(notification.EventInquirySubmitted, notification.InquirySubmittedData{
		InquiryID: in.ID,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
	})
	if err != nil {
		s.logger.Error("failed to build inquiry event", "inquiry_id", in.ID, "error", err)
		return
	}

	if s.publisher != nil {
		body, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("failed to marshal inquiry event", "inquiry_id", in.ID, "error", err)
			return
		}
		if err := s.publisher.Publish(ctx, event.ID, body); err != nil {
			s.logger.Error("failed to publish inquiry event", "inquiry_id", in.ID, "error", err)
		}
		return
	}

	if s.fallback != nil {
		if err := s.fallback.Route(ctx, event); err != nil {
			s.logger.Error("failed to route inquiry event", "inquiry_id", in.ID, "error", err)
		}
	}
}

// List returns a page of inquiries, optionally filtered by status.
func (s *Service) List(ctx context.Context, status Status, limit, offset int) (*ListResult, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	total, err := s.repo.Count(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}

	if items == nil {
		items = []*ContactInquiry{}
	}
	return &ListResult{Inquiries: items, Total: total, Limit: limit, Offset: offset}, nil
}

// UpdateStatus sets an inquiry's workflow status.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*ContactInquiry, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	in, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}
	if in == nil {
		return nil, ErrNotFound
	}
	return in, nil
}

// Delete removes an inquiry.
func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
