package adminuser

import (
	"context"
)

type MockRepository struct {
	CreateFunc      func(ctx context.Context, u *AdminUser) error
	GetByIDFunc     func(ctx context.Context, id string) (*AdminUser, error)
	GetByUserIDFunc func(ctx context.Context, userID string) (*AdminUser, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*AdminUser, error)
	ListFunc        func(ctx context.Context) ([]*AdminUser, error)
	ListByRoleFunc  func(ctx context.Context, role Role) ([]*AdminUser, error)
}

func (m *MockRepository) Create(ctx context.Context, u *AdminUser) error {
	return m.CreateFunc(ctx, u)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*AdminUser, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockRepository) GetByUserID(ctx context.Context, userID string) (*AdminUser, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*AdminUser, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockRepository) List(ctx context.Context) ([]*AdminUser, error) {
	return m.ListFunc(ctx)
}

func (m *MockRepository) ListByRole(ctx context.Context, role Role) ([]*AdminUser, error) {
	return m.ListByRoleFunc(ctx, role)
}
