package testimonial

import (
	"context"
)

type MockRepository struct {
	CreateFunc       func(ctx context.Context, t *Testimonial) error
	GetByIDFunc      func(ctx context.Context, id string) (*Testimonial, error)
	ListApprovedFunc func(ctx context.Context, featuredOnly bool) ([]*Testimonial, error)
	ListAllFunc      func(ctx context.Context) ([]*Testimonial, error)
	ModerateFunc     func(ctx context.Context, id string, m Moderation) (*Testimonial, error)
	DeleteFunc       func(ctx context.Context, id string) (bool, error)
}

func (m *MockRepository) Create(ctx context.Context, t *Testimonial) error {
	return m.CreateFunc(ctx, t)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Testimonial, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockRepository) ListApproved(ctx context.Context, featuredOnly bool) ([]*Testimonial, error) {
	return m.ListApprovedFunc(ctx, featuredOnly)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]*Testimonial, error) {
	return m.ListAllFunc(ctx)
}

func (m *MockRepository) Moderate(ctx context.Context, id string, mod Moderation) (*Testimonial, error) {
	return m.ModerateFunc(ctx, id, mod)
}

func (m *MockRepository) Delete(ctx context.Context, id string) (bool, error) {
	return m.DeleteFunc(ctx, id)
}
