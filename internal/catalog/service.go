package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/veridian-studio/backoffice/pkg/observability"
)

// Catalog owns the service-offering business logic.
type Catalog struct {
	repo   Repository
	logger *observability.Logger
}

func NewCatalog(repo Repository, logger *observability.Logger) *Catalog {
	return &Catalog{repo: repo, logger: logger}
}

// PublicList serves the marketing site. A store failure degrades to the
// hardcoded fallback set instead of an error.
func (c *Catalog) PublicList(ctx context.Context) []*Service {
	items, err := c.repo.ListActive(ctx)
	if err != nil {
		c.logger.Error("failed to list services, serving fallback", "error", err)
		return FallbackServices()
	}
	if items == nil {
		items = []*Service{}
	}
	return items
}

// AdminList returns every offering, active or not.
func (c *Catalog) AdminList(ctx context.Context) ([]*Service, error) {
	items, err := c.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if items == nil {
		items = []*Service{}
	}
	return items, nil
}

// Create adds a new offering.
func (c *Catalog) Create(ctx context.Context, s *Service) (*Service, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" || strings.TrimSpace(s.Description) == "" {
		return nil, ErrMissingFields
	}
	if !s.PricingType.Valid() {
		return nil, &ErrInvalidPricingType{Value: s.PricingType}
	}
	if s.Features == nil {
		s.Features = []string{}
	}
	if err := c.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return s, nil
}

// Update applies an allow-listed partial update.
func (c *Catalog) Update(ctx context.Context, id string, u Update) (*Service, error) {
	if u.PricingType != nil && !u.PricingType.Valid() {
		return nil, &ErrInvalidPricingType{Value: *u.PricingType}
	}
	s, err := c.repo.Update(ctx, id, u)
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	if s == nil {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes an offering.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	ok, err := c.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
