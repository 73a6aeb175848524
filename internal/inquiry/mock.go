package inquiry

import (
	"context"
)

type MockRepository struct {
	CreateFunc              func(ctx context.Context, in *ContactInquiry) error
	GetByIDFunc             func(ctx context.Context, id string) (*ContactInquiry, error)
	ListFunc                func(ctx context.Context, status Status, limit, offset int) ([]*ContactInquiry, error)
	CountFunc               func(ctx context.Context, status Status) (int, error)
	UpdateStatusFunc        func(ctx context.Context, id string, status Status) (*ContactInquiry, error)
	MarkInProgressIfNewFunc func(ctx context.Context, id string) (bool, error)
	DeleteFunc              func(ctx context.Context, id string) (bool, error)
}

func (m *MockRepository) Create(ctx context.Context, in *ContactInquiry) error {
	return m.CreateFunc(ctx, in)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*ContactInquiry, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockRepository) List(ctx context.Context, status Status, limit, offset int) ([]*ContactInquiry, error) {
	return m.ListFunc(ctx, status, limit, offset)
}

func (m *MockRepository) Count(ctx context.Context, status Status) (int, error) {
	return m.CountFunc(ctx, status)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id string, status Status) (*ContactInquiry, error) {
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *MockRepository) MarkInProgressIfNew(ctx context.Context, id string) (bool, error) {
	return m.MarkInProgressIfNewFunc(ctx, id)
}

func (m *MockRepository) Delete(ctx context.Context, id string) (bool, error) {
	return m.DeleteFunc(ctx, id)
}
