package notification

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/veridian-studio/backoffice/internal/adminuser"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

func testService(repo Repository, admins adminuser.Repository, sender EmailSender) *Service {
	return NewService(repo, admins, NewInlineDispatcher(sender), NewRenderer("http://localhost:3000"), observability.NewLogger("test"))
}

func noopAdmins() *adminuser.MockRepository {
	return &adminuser.MockRepository{
		ListByRoleFunc: func(ctx context.Context, role adminuser.Role) ([]*adminuser.AdminUser, error) {
			return nil, nil
		},
		GetByIDFunc: func(ctx context.Context, id string) (*adminuser.AdminUser, error) {
			return nil, nil
		},
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateInput
		wantErr error
	}{
		{
			name:    "unknown type",
			input:   CreateInput{Type: "broadcast", Title: "t", Message: "m", Target: ByRole(adminuser.RoleAdmin)},
			wantErr: ErrInvalidType,
		},
		{
			name:    "missing title",
			input:   CreateInput{Type: TypeSystemAlert, Message: "m", Target: ByRole(adminuser.RoleAdmin)},
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing message",
			input:   CreateInput{Type: TypeSystemAlert, Title: "t", Target: ByRole(adminuser.RoleAdmin)},
			wantErr: ErrMissingFields,
		},
		{
			name:    "no target",
			input:   CreateInput{Type: TypeSystemAlert, Title: "t", Message: "m"},
			wantErr: ErrInvalidTarget,
		},
		{
			name: "both targets",
			input: CreateInput{
				Type: TypeSystemAlert, Title: "t", Message: "m",
				Target: Target{UserID: "u1", Role: adminuser.RoleAdmin},
			},
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "unknown role",
			input:   CreateInput{Type: TypeSystemAlert, Title: "t", Message: "m", Target: ByRole("owner")},
			wantErr: ErrInvalidTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			repo := &MockRepository{
				CreateFunc: func(ctx context.Context, n *Notification) error {
					created = true
					return nil
				},
			}
			svc := testService(repo, noopAdmins(), &MockEmailSender{})

			_, err := svc.Create(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			if created {
				t.Fatal("no row should be written on validation failure")
			}
		})
	}
}

func TestCreatePersistsExactlyOneTarget(t *testing.T) {
	var stored *Notification
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, n *Notification) error {
			n.ID = "n1"
			stored = n
			return nil
		},
	}
	svc := testService(repo, noopAdmins(), &MockEmailSender{})

	_, err := svc.Create(context.Background(), CreateInput{
		Type: TypeSystemAlert, Title: "t", Message: "m",
		Target: ByUser("admin-1"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.RecipientID == nil || *stored.RecipientID != "admin-1" {
		t.Fatalf("recipient id not persisted: %+v", stored)
	}
	if stored.RecipientRole != nil {
		t.Fatal("recipient role must be empty for a user target")
	}
}

func TestCreateRoleFanOutEmail(t *testing.T) {
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, n *Notification) error {
			n.ID = "n1"
			if n.RecipientRole == nil || *n.RecipientRole != adminuser.RoleAdmin {
				t.Fatalf("expected a role-broadcast row, got %+v", n)
			}
			return nil
		},
	}
	admins := &adminuser.MockRepository{
		ListByRoleFunc: func(ctx context.Context, role adminuser.Role) ([]*adminuser.AdminUser, error) {
			return []*adminuser.AdminUser{
				{ID: "a1", Email: "a@x.com", Role: adminuser.RoleAdmin},
				{ID: "a2", Email: "b@x.com", Role: adminuser.RoleAdmin},
			}, nil
		},
	}
	sender := &MockEmailSender{}
	svc := testService(repo, admins, sender)

	_, err := svc.Create(context.Background(), CreateInput{
		Type: TypeContactForm, Title: "t", Message: "m",
		Target:    ByRole(adminuser.RoleAdmin),
		SendEmail: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.Calls) != 1 {
		t.Fatalf("want exactly one outbound email, got %d", len(sender.Calls))
	}
	if !reflect.DeepEqual(sender.Calls[0].To, []string{"a@x.com", "b@x.com"}) {
		t.Fatalf("want both admin addresses in To, got %v", sender.Calls[0].To)
	}
}

func TestCreateSurvivesEmailFailure(t *testing.T) {
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, n *Notification) error {
			n.ID = "n1"
			return nil
		},
	}
	admins := &adminuser.MockRepository{
		ListByRoleFunc: func(ctx context.Context, role adminuser.Role) ([]*adminuser.AdminUser, error) {
			return []*adminuser.AdminUser{{ID: "a1", Email: "a@x.com", Role: adminuser.RoleAdmin}}, nil
		},
	}
	sender := &MockEmailSender{
		SendFunc: func(ctx context.Context, to []string, subject, htmlBody string) (string, error) {
			return "", errors.New("provider down")
		},
	}
	svc := testService(repo, admins, sender)

	n, err := svc.Create(context.Background(), CreateInput{
		Type: TypeContactForm, Title: "t", Message: "m",
		Target:    ByRole(adminuser.RoleAdmin),
		SendEmail: true,
	})
	if err != nil {
		t.Fatalf("email failure must not fail the create: %v", err)
	}
	if n == nil || n.ID != "n1" {
		t.Fatalf("notification row should still be returned, got %+v", n)
	}
}

func TestNoEmailWithoutSendFlag(t *testing.T) {
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, n *Notification) error { return nil },
	}
	admins := &adminuser.MockRepository{
		ListByRoleFunc: func(ctx context.Context, role adminuser.Role) ([]*adminuser.AdminUser, error) {
			return []*adminuser.AdminUser{{ID: "a1", Email: "a@x.com", Role: adminuser.RoleAdmin}}, nil
		},
	}
	sender := &MockEmailSender{}
	svc := testService(repo, admins, sender)

	if _, err := svc.Create(context.Background(), CreateInput{
		Type: TypeContactForm, Title: "t", Message: "m",
		Target: ByRole(adminuser.RoleAdmin),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.Calls) != 0 {
		t.Fatalf("no email expected, got %d calls", len(sender.Calls))
	}
}

func TestMarkAllReadIdempotent(t *testing.T) {
	pending := 3
	repo := &MockRepository{
		MarkAllReadFunc: func(ctx context.Context, rec Recipient) (int, error) {
			n := pending
			pending = 0
			return n, nil
		},
	}
	svc := testService(repo, noopAdmins(), &MockEmailSender{})
	rec := Recipient{AdminID: "a1", Role: adminuser.RoleAdmin}

	first, err := svc.MarkAllRead(context.Background(), rec)
	if err != nil || first != 3 {
		t.Fatalf("first call: got (%d, %v), want (3, nil)", first, err)
	}
	second, err := svc.MarkAllRead(context.Background(), rec)
	if err != nil || second != 0 {
		t.Fatalf("second call: got (%d, %v), want (0, nil)", second, err)
	}
}

func TestMarkReadNotVisible(t *testing.T) {
	repo := &MockRepository{
		MarkReadFunc: func(ctx context.Context, id string, rec Recipient) (*Notification, error) {
			return nil, nil
		},
	}
	svc := testService(repo, noopAdmins(), &MockEmailSender{})

	_, err := svc.MarkRead(context.Background(), "other", Recipient{AdminID: "a1", Role: adminuser.RoleAdmin})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestListForClampsPaging(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &MockRepository{
		ListForFunc: func(ctx context.Context, rec Recipient, unreadOnly bool, limit, offset int) ([]*Notification, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
		CountForFunc:       func(ctx context.Context, rec Recipient) (int, error) { return 0, nil },
		UnreadCountForFunc: func(ctx context.Context, rec Recipient) (int, error) { return 0, nil },
	}
	svc := testService(repo, noopAdmins(), &MockEmailSender{})
	rec := Recipient{AdminID: "a1", Role: adminuser.RoleAdmin}

	result, err := svc.ListFor(context.Background(), rec, false, 1000, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != maxPageSize || gotOffset != 0 {
		t.Fatalf("paging not clamped: limit=%d offset=%d", gotLimit, gotOffset)
	}
	if result.Notifications == nil {
		t.Fatal("notifications must be an empty slice, not nil")
	}
}
