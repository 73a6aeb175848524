package stats

import (
	"context"
	"time"

	"github.com/veridian-studio/backoffice/internal/inquiry"
)

type MockRepository struct {
	CountInquiriesFunc           func(ctx context.Context) (int, error)
	CountNewInquiriesFunc        func(ctx context.Context) (int, error)
	CountServicesFunc            func(ctx context.Context) (int, error)
	CountActiveServicesFunc      func(ctx context.Context) (int, error)
	CountTestimonialsFunc        func(ctx context.Context) (int, error)
	CountPendingTestimonialsFunc func(ctx context.Context) (int, error)
	CountTeamMembersFunc         func(ctx context.Context) (int, error)
	CountBlogPostsFunc           func(ctx context.Context) (int, error)
	RecentInquiriesFunc          func(ctx context.Context, limit int) ([]*inquiry.ContactInquiry, error)
	InquiriesPerDayFunc          func(ctx context.Context, since time.Time) (map[string]int, error)
}

func (m *MockRepository) CountInquiries(ctx context.Context) (int, error) {
	return m.CountInquiriesFunc(ctx)
}

func (m *MockRepository) CountNewInquiries(ctx context.Context) (int, error) {
	return m.CountNewInquiriesFunc(ctx)
}

func (m *MockRepository) CountServices(ctx context.Context) (int, error) {
	return m.CountServicesFunc(ctx)
}

func (m *MockRepository) CountActiveServices(ctx context.Context) (int, error) {
	return m.CountActiveServicesFunc(ctx)
}

func (m *MockRepository) CountTestimonials(ctx context.Context) (int, error) {
	return m.CountTestimonialsFunc(ctx)
}

func (m *MockRepository) CountPendingTestimonials(ctx context.Context) (int, error) {
	return m.CountPendingTestimonialsFunc(ctx)
}

func (m *MockRepository) CountTeamMembers(ctx context.Context) (int, error) {
	return m.CountTeamMembersFunc(ctx)
}

func (m *MockRepository) CountBlogPosts(ctx context.Context) (int, error) {
	return m.CountBlogPostsFunc(ctx)
}

func (m *MockRepository) RecentInquiries(ctx context.Context, limit int) ([]*inquiry.ContactInquiry, error) {
	return m.RecentInquiriesFunc(ctx, limit)
}

func (m *MockRepository) InquiriesPerDay(ctx context.Context, since time.Time) (map[string]int, error) {
	return m.InquiriesPerDayFunc(ctx, since)
}
