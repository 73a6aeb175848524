package stats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/veridian-studio/backoffice/internal/inquiry"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

const (
	recentInquiryLimit = 10
	trendDays          = 7
)

// Service computes the admin dashboard snapshot.
type Service struct {
	repo   Repository
	logger *observability.Logger

	// now is swappable for deterministic trend tests.
	now func() time.Time
}

func NewService(repo Repository, logger *observability.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Compute issues the independent queries concurrently and joins them.
// The first error wins; remaining results are discarded.
func (s *Service) Compute(ctx context.Context) (*DashboardStats, error) {
	var (
		stats    DashboardStats
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				fail(err)
			}
		}()
	}

	counts := []struct {
		query func(context.Context) (int, error)
		dest  *int
	}{
		{s.repo.CountInquiries, &stats.Inquiries.Total},
		{s.repo.CountNewInquiries, &stats.Inquiries.Filtered},
		{s.repo.CountServices, &stats.Services.Total},
		{s.repo.CountActiveServices, &stats.Services.Filtered},
		{s.repo.CountTestimonials, &stats.Testimonials.Total},
		{s.repo.CountPendingTestimonials, &stats.Testimonials.Filtered},
		{s.repo.CountTeamMembers, &stats.TeamMembers},
		{s.repo.CountBlogPosts, &stats.BlogPosts},
	}
	for _, c := range counts {
		c := c
		run(func() error {
			n, err := c.query(ctx)
			if err != nil {
				return err
			}
			mu.Lock()
			*c.dest = n
			mu.Unlock()
			return nil
		})
	}

	run(func() error {
		recent, err := s.repo.RecentInquiries(ctx, recentInquiryLimit)
		if err != nil {
			return err
		}
		mu.Lock()
		stats.RecentInquiries = recent
		mu.Unlock()
		return nil
	})

	windowStart := s.trendWindowStart()
	run(func() error {
		buckets, err := s.repo.InquiriesPerDay(ctx, windowStart)
		if err != nil {
			return err
		}
		mu.Lock()
		stats.InquiryTrend = zeroFill(windowStart, trendDays, buckets)
		mu.Unlock()
		return nil
	})

	wg.Wait()
	if firstErr != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", firstErr)
	}

	if stats.RecentInquiries == nil {
		stats.RecentInquiries = []*inquiry.ContactInquiry{}
	}
	return &stats, nil
}

// trendWindowStart is midnight UTC six days ago, so the window covers
// seven calendar dates ending today.
func (s *Service) trendWindowStart() time.Time {
	today := s.now().UTC().Truncate(24 * time.Hour)
	return today.AddDate(0, 0, -(trendDays - 1))
}

// zeroFill produces a dense series: one entry per calendar date in the
// window, zero when the bucket map has no row for that day.
func zeroFill(start time.Time, days int, buckets map[string]int) []DayCount {
	out := make([]DayCount, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		out = append(out, DayCount{Date: day, Count: buckets[day]})
	}
	return out
}
