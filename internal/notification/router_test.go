package notification

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/veridian-studio/backoffice/internal/adminuser"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

func TestRouteInquirySubmitted(t *testing.T) {
	var stored *Notification
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, n *Notification) error {
			n.ID = "n1"
			stored = n
			return nil
		},
	}
	admins := &adminuser.MockRepository{
		ListByRoleFunc: func(ctx context.Context, role adminuser.Role) ([]*adminuser.AdminUser, error) {
			return []*adminuser.AdminUser{{ID: "a1", Email: "a@x.com", Role: adminuser.RoleAdmin}}, nil
		},
	}
	sender := &MockEmailSender{}
	router := NewRouter(testService(repo, admins, sender), observability.NewLogger("test"))

	event, err := NewEvent(EventInquirySubmitted, InquirySubmittedData{
		InquiryID: "i1",
		Name:      "Claire",
		Email:     "claire@client.test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body, _ := json.Marshal(event)

	if err := router.HandleMessage(event.ID, body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil || stored.Type != TypeContactForm {
		t.Fatalf("want a contact_form notification, got %+v", stored)
	}
	if stored.RecipientRole == nil || *stored.RecipientRole != adminuser.RoleAdmin {
		t.Fatalf("want a role broadcast to admins, got %+v", stored)
	}
	// Contact inquiries alert by email.
	if len(sender.Calls) != 1 {
		t.Fatalf("want one email, got %d", len(sender.Calls))
	}

	meta, err := stored.ParseContactFormMeta()
	if err != nil {
		t.Fatalf("metadata did not parse: %v", err)
	}
	if meta.InquiryID != "i1" || meta.Email != "claire@client.test" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestRouteTestimonialSubmittedSkipsEmail(t *testing.T) {
	var stored *Notification
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, n *Notification) error {
			stored = n
			return nil
		},
	}
	admins := &adminuser.MockRepository{
		ListByRoleFunc: func(ctx context.Context, role adminuser.Role) ([]*adminuser.AdminUser, error) {
			return []*adminuser.AdminUser{{ID: "a1", Email: "a@x.com", Role: adminuser.RoleAdmin}}, nil
		},
	}
	sender := &MockEmailSender{}
	router := NewRouter(testService(repo, admins, sender), observability.NewLogger("test"))

	event, _ := NewEvent(EventTestimonialSubmitted, TestimonialSubmittedData{
		TestimonialID: "t1",
		ClientName:    "Marcus",
		Rating:        5,
	})

	if err := router.Route(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil || stored.Type != TypeApprovalNeeded {
		t.Fatalf("want an approval_needed notification, got %+v", stored)
	}
	if len(sender.Calls) != 0 {
		t.Fatalf("testimonials must not email, got %d calls", len(sender.Calls))
	}
}

func TestRouteUnknownEventIsSkipped(t *testing.T) {
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, n *Notification) error {
			t.Fatal("unknown events must not create notifications")
			return nil
		},
	}
	router := NewRouter(testService(repo, noopAdmins(), &MockEmailSender{}), observability.NewLogger("test"))

	event, _ := NewEvent(EventType("page.viewed"), map[string]string{"path": "/"})
	if err := router.Route(context.Background(), event); err != nil {
		t.Fatalf("unknown events should be dropped silently, got %v", err)
	}
}
