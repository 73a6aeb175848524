package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/veridian-studio/backoffice/pkg/observability"
)

func TestPublicListFallsBackOnStoreError(t *testing.T) {
	repo := &MockRepository{
		ListActiveFunc: func(ctx context.Context) ([]*Service, error) {
			return nil, errors.New("store down")
		},
	}
	c := NewCatalog(repo, observability.NewLogger("test"))

	got := c.PublicList(context.Background())
	if len(got) != 4 {
		t.Fatalf("want the four fallback services, got %d", len(got))
	}
	for _, s := range got {
		if !s.IsActive {
			t.Fatalf("fallback service %s must be active", s.Name)
		}
	}
}

func TestPublicListPassesThrough(t *testing.T) {
	repo := &MockRepository{
		ListActiveFunc: func(ctx context.Context) ([]*Service, error) {
			return []*Service{{ID: "s1", Name: "Executive Assistant"}}, nil
		},
	}
	c := NewCatalog(repo, observability.NewLogger("test"))

	got := c.PublicList(context.Background())
	if len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestUpdateRejectsUnknownPricingType(t *testing.T) {
	repo := &MockRepository{
		UpdateFunc: func(ctx context.Context, id string, u Update) (*Service, error) {
			t.Fatal("store must not be touched on validation failure")
			return nil, nil
		},
	}
	c := NewCatalog(repo, observability.NewLogger("test"))

	bad := PricingType("weekly")
	_, err := c.Update(context.Background(), "s1", Update{PricingType: &bad})

	var badPricing *ErrInvalidPricingType
	if !errors.As(err, &badPricing) {
		t.Fatalf("got %v, want ErrInvalidPricingType", err)
	}
	msg := err.Error()
	for _, opt := range ValidPricingTypes() {
		if !strings.Contains(msg, opt) {
			t.Fatalf("error %q must list option %q", msg, opt)
		}
	}
}

func TestUpdateUnknownID(t *testing.T) {
	repo := &MockRepository{
		UpdateFunc: func(ctx context.Context, id string, u Update) (*Service, error) {
			return nil, nil
		},
	}
	c := NewCatalog(repo, observability.NewLogger("test"))

	name := "Renamed"
	_, err := c.Update(context.Background(), "missing", Update{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestCreateValidates(t *testing.T) {
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, s *Service) error { return nil },
	}
	c := NewCatalog(repo, observability.NewLogger("test"))

	_, err := c.Create(context.Background(), &Service{Name: " ", Description: "d", PricingType: PricingHourly})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("got %v, want ErrMissingFields", err)
	}

	_, err = c.Create(context.Background(), &Service{Name: "n", Description: "d", PricingType: "retainer"})
	var badPricing *ErrInvalidPricingType
	if !errors.As(err, &badPricing) {
		t.Fatalf("got %v, want ErrInvalidPricingType", err)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Executive Assistant", "executive-assistant"},
		{"  Social Media!  ", "social-media"},
		{"Bookkeeping_Support", "bookkeeping-support"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
