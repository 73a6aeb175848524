package reply

import (
	"context"
)

type MockRepository struct {
	CreateFunc        func(ctx context.Context, r *AdminReply) error
	ListForTargetFunc func(ctx context.Context, kind TargetKind, targetID string) ([]*AdminReply, error)
}

func (m *MockRepository) Create(ctx context.Context, r *AdminReply) error {
	return m.CreateFunc(ctx, r)
}

func (m *MockRepository) ListForTarget(ctx context.Context, kind TargetKind, targetID string) ([]*AdminReply, error) {
	return m.ListForTargetFunc(ctx, kind, targetID)
}
