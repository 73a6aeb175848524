package reply

import (
	"context"
	"errors"
	"testing"

	"github.com/veridian-studio/backoffice/internal/auth"
	"github.com/veridian-studio/backoffice/internal/inquiry"
	"github.com/veridian-studio/backoffice/internal/notification"
	"github.com/veridian-studio/backoffice/internal/testimonial"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

type stubInquiries struct {
	inquiry       *inquiry.ContactInquiry
	advanceCalls  int
	advanceResult bool
	advanceErr    error
}

func (s *stubInquiries) GetByID(ctx context.Context, id string) (*inquiry.ContactInquiry, error) {
	return s.inquiry, nil
}

func (s *stubInquiries) MarkInProgressIfNew(ctx context.Context, id string) (bool, error) {
	s.advanceCalls++
	return s.advanceResult, s.advanceErr
}

type stubTestimonials struct {
	testimonial *testimonial.Testimonial
}

func (s *stubTestimonials) GetByID(ctx context.Context, id string) (*testimonial.Testimonial, error) {
	return s.testimonial, nil
}

func caller() auth.Caller {
	return auth.Caller{AdminID: "a1", Name: "Dana", Email: "dana@veridian.test"}
}

func validInput() SendInput {
	return SendInput{
		TargetKind:     TargetInquiry,
		TargetID:       "i1",
		Subject:        "Re: your inquiry",
		Message:        "Thanks for reaching out.",
		RecipientEmail: "claire@client.test",
		RecipientName:  "Claire",
	}
}

func newTestService(
	replies Repository,
	inquiries InquiryStore,
	testimonials TestimonialStore,
	sender notification.EmailSender,
) *Service {
	return NewService(replies, inquiries, testimonials, sender,
		notification.NewRenderer("http://localhost:3000"), observability.NewLogger("test"))
}

func TestSendReplyMissingTargetNeverEmails(t *testing.T) {
	sender := &notification.MockEmailSender{}
	svc := newTestService(
		&MockRepository{},
		&stubInquiries{inquiry: nil},
		&stubTestimonials{},
		sender,
	)

	_, err := svc.SendReply(context.Background(), caller(), validInput())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if len(sender.Calls) != 0 {
		t.Fatalf("email provider must not be called, got %d calls", len(sender.Calls))
	}
}

func TestSendReplyForbiddenWithoutAdmin(t *testing.T) {
	sender := &notification.MockEmailSender{}
	svc := newTestService(&MockRepository{}, &stubInquiries{}, &stubTestimonials{}, sender)

	_, err := svc.SendReply(context.Background(), auth.Caller{}, validInput())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
	if len(sender.Calls) != 0 {
		t.Fatal("email provider must not be called")
	}
}

func TestSendReplyValidatesFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SendInput)
	}{
		{"empty subject", func(in *SendInput) { in.Subject = " " }},
		{"empty message", func(in *SendInput) { in.Message = "" }},
		{"empty recipient email", func(in *SendInput) { in.RecipientEmail = "" }},
		{"empty recipient name", func(in *SendInput) { in.RecipientName = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &notification.MockEmailSender{}
			svc := newTestService(
				&MockRepository{},
				&stubInquiries{inquiry: &inquiry.ContactInquiry{ID: "i1"}},
				&stubTestimonials{},
				sender,
			)

			in := validInput()
			tt.mutate(&in)
			_, err := svc.SendReply(context.Background(), caller(), in)
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("got %v, want ErrMissingFields", err)
			}
			if len(sender.Calls) != 0 {
				t.Fatal("email provider must not be called")
			}
		})
	}
}

func TestSendReplyProviderFailureWritesNothing(t *testing.T) {
	auditCalls := 0
	replies := &MockRepository{
		CreateFunc: func(ctx context.Context, r *AdminReply) error {
			auditCalls++
			return nil
		},
	}
	inquiries := &stubInquiries{inquiry: &inquiry.ContactInquiry{ID: "i1", Status: inquiry.StatusNew}}
	sender := &notification.MockEmailSender{
		SendFunc: func(ctx context.Context, to []string, subject, htmlBody string) (string, error) {
			return "", errors.New("provider down")
		},
	}
	svc := newTestService(replies, inquiries, &stubTestimonials{}, sender)

	_, err := svc.SendReply(context.Background(), caller(), validInput())
	if !errors.Is(err, ErrEmailDelivery) {
		t.Fatalf("got %v, want ErrEmailDelivery", err)
	}
	if auditCalls != 0 {
		t.Fatal("no audit row may be written when the email fails")
	}
	if inquiries.advanceCalls != 0 {
		t.Fatal("inquiry status must not change when the email fails")
	}
}

func TestSendReplyAuditFailureStillSucceeds(t *testing.T) {
	replies := &MockRepository{
		CreateFunc: func(ctx context.Context, r *AdminReply) error {
			return errors.New("store down")
		},
	}
	inquiries := &stubInquiries{inquiry: &inquiry.ContactInquiry{ID: "i1", Status: inquiry.StatusNew}, advanceResult: true}
	sender := &notification.MockEmailSender{
		SendFunc: func(ctx context.Context, to []string, subject, htmlBody string) (string, error) {
			return "email_1", nil
		},
	}
	svc := newTestService(replies, inquiries, &stubTestimonials{}, sender)

	emailID, err := svc.SendReply(context.Background(), caller(), validInput())
	if err != nil {
		t.Fatalf("the email was sent, audit failure must not fail the call: %v", err)
	}
	if emailID != "email_1" {
		t.Fatalf("got email id %q, want email_1", emailID)
	}
}

func TestSendReplyAdvancesNewInquiryOnce(t *testing.T) {
	replies := &MockRepository{
		CreateFunc: func(ctx context.Context, r *AdminReply) error { return nil },
	}
	inquiries := &stubInquiries{inquiry: &inquiry.ContactInquiry{ID: "i1", Status: inquiry.StatusNew}, advanceResult: true}
	sender := &notification.MockEmailSender{}
	svc := newTestService(replies, inquiries, &stubTestimonials{}, sender)

	if _, err := svc.SendReply(context.Background(), caller(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inquiries.advanceCalls != 1 {
		t.Fatalf("want one status advance, got %d", inquiries.advanceCalls)
	}

	// A second reply goes through the same conditional update, which
	// only moves rows still in new.
	inquiries.inquiry.Status = inquiry.StatusInProgress
	inquiries.advanceResult = false
	if _, err := svc.SendReply(context.Background(), caller(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inquiries.advanceCalls != 2 {
		t.Fatalf("conditional advance should still be issued, got %d calls", inquiries.advanceCalls)
	}
}

func TestSendReplyTestimonialTargetSkipsStatus(t *testing.T) {
	replies := &MockRepository{
		CreateFunc: func(ctx context.Context, r *AdminReply) error {
			if r.TargetKind != TargetTestimonial {
				t.Fatalf("audit row has kind %q", r.TargetKind)
			}
			return nil
		},
	}
	inquiries := &stubInquiries{}
	sender := &notification.MockEmailSender{}
	svc := newTestService(replies, inquiries,
		&stubTestimonials{testimonial: &testimonial.Testimonial{ID: "t1"}}, sender)

	in := validInput()
	in.TargetKind = TargetTestimonial
	in.TargetID = "t1"
	if _, err := svc.SendReply(context.Background(), caller(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inquiries.advanceCalls != 0 {
		t.Fatal("testimonial replies must not touch inquiry status")
	}
}
