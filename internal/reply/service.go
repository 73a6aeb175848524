package reply

import (
	"context"
	"fmt"
	"strings"

	"github.com/veridian-studio/backoffice/internal/auth"
	"github.com/veridian-studio/backoffice/internal/inquiry"
	"github.com/veridian-studio/backoffice/internal/notification"
	"github.com/veridian-studio/backoffice/internal/testimonial"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

// InquiryStore is the slice of the inquiry layer the reply flow needs.
type InquiryStore interface {
	GetByID(ctx context.Context, id string) (*inquiry.ContactInquiry, error)
	MarkInProgressIfNew(ctx context.Context, id string) (bool, error)
}

// TestimonialStore resolves testimonial reply targets.
type TestimonialStore interface {
	GetByID(ctx context.Context, id string) (*testimonial.Testimonial, error)
}

// Service sends admin replies. The email is ground truth: once the
// provider accepts it, audit or status failures are logged but the call
// still succeeds.
type Service struct {
	replies      Repository
	inquiries    InquiryStore
	testimonials TestimonialStore
	sender       notification.EmailSender
	renderer     *notification.Renderer
	logger       *observability.Logger
}

func NewService(
	replies Repository,
	inquiries InquiryStore,
	testimonials TestimonialStore,
	sender notification.EmailSender,
	renderer *notification.Renderer,
	logger *observability.Logger,
) *Service {
	return &Service{
		replies:      replies,
		inquiries:    inquiries,
		testimonials: testimonials,
		sender:       sender,
		renderer:     renderer,
		logger:       logger,
	}
}

// SendReply validates, emails the submitter, then records the audit row
// and advances a new inquiry to in_progress. Returns the provider's
// email id.
func (s *Service) SendReply(ctx context.Context, caller auth.Caller, in SendInput) (string, error) {
	if caller.AdminID == "" {
		return "", ErrForbidden
	}
	if !in.TargetKind.Valid() {
		return "", ErrInvalidTarget
	}
	if err := s.resolveTarget(ctx, in.TargetKind, in.TargetID); err != nil {
		return "", err
	}
	if strings.TrimSpace(in.Subject) == "" ||
		strings.TrimSpace(in.Message) == "" ||
		strings.TrimSpace(in.RecipientEmail) == "" ||
		strings.TrimSpace(in.RecipientName) == "" {
		return "", ErrMissingFields
	}

	html, err := s.renderer.RenderReply(caller.Name, caller.Email, in.RecipientName, in.Message)
	if err != nil {
		return "", fmt.Errorf("failed to render reply email: %w", err)
	}

	emailID, err := s.sender.Send(ctx, []string{in.RecipientEmail}, in.Subject, html)
	if err != nil {
		notification.EmailsFailed.Inc()
		return "", fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}
	notification.EmailsSent.Inc()
	notification.RepliesSent.Inc()

	audit := &AdminReply{
		TargetKind:     in.TargetKind,
		TargetID:       in.TargetID,
		AdminID:        caller.AdminID,
		AdminName:      caller.Name,
		AdminEmail:     caller.Email,
		RecipientEmail: in.RecipientEmail,
		RecipientName:  in.RecipientName,
		Subject:        in.Subject,
		Message:        in.Message,
	}
	if err := s.replies.Create(ctx, audit); err != nil {
		s.logger.Error("failed to persist reply audit row", "target_id", in.TargetID, "email_id", emailID, "error", err)
	}

	if in.TargetKind == TargetInquiry {
		if _, err := s.inquiries.MarkInProgressIfNew(ctx, in.TargetID); err != nil {
			s.logger.Error("failed to advance inquiry status", "inquiry_id", in.TargetID, "error", err)
		}
	}

	return emailID, nil
}

func (s *Service) resolveTarget(ctx context.Context, kind TargetKind, id string) error {
	switch kind {
	case TargetInquiry:
		in, err := s.inquiries.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to look up inquiry: %w", err)
		}
		if in == nil {
			return ErrNotFound
		}
	case TargetTestimonial:
		t, err := s.testimonials.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to look up testimonial: %w", err)
		}
		if t == nil {
			return ErrNotFound
		}
	}
	return nil
}

// History returns the reply audit trail for one target.
func (s *Service) History(ctx context.Context, kind TargetKind, targetID string) ([]*AdminReply, error) {
	if !kind.Valid() {
		return nil, ErrInvalidTarget
	}
	items, err := s.replies.ListForTarget(ctx, kind, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	if items == nil {
		items = []*AdminReply{}
	}
	return items, nil
}
