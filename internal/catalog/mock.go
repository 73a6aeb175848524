package catalog

import (
	"context"
)

type MockRepository struct {
	CreateFunc     func(ctx context.Context, s *Service) error
	GetByIDFunc    func(ctx context.Context, id string) (*Service, error)
	ListActiveFunc func(ctx context.Context) ([]*Service, error)
	ListAllFunc    func(ctx context.Context) ([]*Service, error)
	UpdateFunc     func(ctx context.Context, id string, u Update) (*Service, error)
	DeleteFunc     func(ctx context.Context, id string) (bool, error)
}

func (m *MockRepository) Create(ctx context.Context, s *Service) error {
	return m.CreateFunc(ctx, s)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockRepository) ListActive(ctx context.Context) ([]*Service, error) {
	return m.ListActiveFunc(ctx)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]*Service, error) {
	return m.ListAllFunc(ctx)
}

func (m *MockRepository) Update(ctx context.Context, id string, u Update) (*Service, error) {
	return m.UpdateFunc(ctx, id, u)
}

func (m *MockRepository) Delete(ctx context.Context, id string) (bool, error) {
	return m.DeleteFunc(ctx, id)
}
