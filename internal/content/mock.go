package content

import (
	"context"
)

type MockRepository struct {
	ListTeamFunc      func(ctx context.Context) ([]*TeamMember, error)
	ListPostsFunc     func(ctx context.Context) ([]*BlogPost, error)
	GetPostBySlugFunc func(ctx context.Context, slug string) (*BlogPost, error)
}

func (m *MockRepository) ListTeam(ctx context.Context) ([]*TeamMember, error) {
	return m.ListTeamFunc(ctx)
}

func (m *MockRepository) ListPosts(ctx context.Context) ([]*BlogPost, error) {
	return m.ListPostsFunc(ctx)
}

func (m *MockRepository) GetPostBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	return m.GetPostBySlugFunc(ctx, slug)
}
