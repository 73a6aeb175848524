package inquiry

import (
	"context"
	"errors"
	"testing"

	"github.com/veridian-studio/backoffice/pkg/observability"
)

func TestCreateRequiresFields(t *testing.T) {
	tests := []struct {
		name  string
		input CreateInput
	}{
		{"empty name", CreateInput{Email: "c@x.com", Message: "hello"}},
		{"empty email", CreateInput{Name: "Claire", Message: "hello"}},
		{"empty message", CreateInput{Name: "Claire", Email: "c@x.com"}},
		{"whitespace only", CreateInput{Name: "  ", Email: "c@x.com", Message: "hello"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRepository{
				CreateFunc: func(ctx context.Context, in *ContactInquiry) error {
					t.Fatal("no row may be written on validation failure")
					return nil
				},
			}
			svc := NewService(repo, observability.NewLogger("test"))

			_, err := svc.Create(context.Background(), tt.input)
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("got %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestCreateStartsNew(t *testing.T) {
	var stored *ContactInquiry
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, in *ContactInquiry) error {
			in.ID = "i1"
			in.Status = StatusNew
			stored = in
			return nil
		},
	}
	svc := NewService(repo, observability.NewLogger("test"))

	got, err := svc.Create(context.Background(), CreateInput{
		Name:    " Claire ",
		Email:   "claire@client.test",
		Message: "I need help with scheduling.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != StatusNew {
		t.Fatalf("new inquiries start as new, got %q", got.Status)
	}
	if stored.Name != "Claire" {
		t.Fatalf("name not trimmed: %q", stored.Name)
	}
}

func TestUpdateStatusValidatesEnum(t *testing.T) {
	repo := &MockRepository{
		UpdateStatusFunc: func(ctx context.Context, id string, status Status) (*ContactInquiry, error) {
			t.Fatal("store must not be touched for an unknown status")
			return nil, nil
		},
	}
	svc := NewService(repo, observability.NewLogger("test"))

	_, err := svc.UpdateStatus(context.Background(), "i1", Status("resolved"))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("got %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := &MockRepository{
		UpdateStatusFunc: func(ctx context.Context, id string, status Status) (*ContactInquiry, error) {
			return nil, nil
		},
	}
	svc := NewService(repo, observability.NewLogger("test"))

	_, err := svc.UpdateStatus(context.Background(), "missing", StatusArchived)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestListFiltersAndClamps(t *testing.T) {
	var gotStatus Status
	var gotLimit int
	repo := &MockRepository{
		ListFunc: func(ctx context.Context, status Status, limit, offset int) ([]*ContactInquiry, error) {
			gotStatus, gotLimit = status, limit
			return nil, nil
		},
		CountFunc: func(ctx context.Context, status Status) (int, error) { return 0, nil },
	}
	svc := NewService(repo, observability.NewLogger("test"))

	result, err := svc.List(context.Background(), StatusNew, 500, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStatus != StatusNew || gotLimit != maxPageSize {
		t.Fatalf("filter/clamp wrong: status=%q limit=%d", gotStatus, gotLimit)
	}
	if result.Inquiries == nil {
		t.Fatal("inquiries must be an empty slice, not nil")
	}

	if _, err := svc.List(context.Background(), Status("spam"), 10, 0); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("got %v, want ErrInvalidStatus", err)
	}
}
