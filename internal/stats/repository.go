package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/veridian-studio/backoffice/internal/inquiry"
)

// Repository runs the dashboard's counting and listing queries.
type Repository interface {
	CountInquiries(ctx context.Context) (int, error)
	CountNewInquiries(ctx context.Context) (int, error)
	CountServices(ctx context.Context) (int, error)
	CountActiveServices(ctx context.Context) (int, error)
	CountTestimonials(ctx context.Context) (int, error)
	CountPendingTestimonials(ctx context.Context) (int, error)
	CountTeamMembers(ctx context.Context) (int, error)
	CountBlogPosts(ctx context.Context) (int, error)
	RecentInquiries(ctx context.Context, limit int) ([]*inquiry.ContactInquiry, error)
	InquiriesPerDay(ctx context.Context, since time.Time) (map[string]int, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountInquiries(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM contact_inquiries`)
}

func (r *PostgresRepository) CountNewInquiries(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM contact_inquiries WHERE status = 'new'`)
}

func (r *PostgresRepository) CountServices(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM services`)
}

func (r *PostgresRepository) CountActiveServices(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM services WHERE is_active = true`)
}

func (r *PostgresRepository) CountTestimonials(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM testimonials`)
}

func (r *PostgresRepository) CountPendingTestimonials(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM testimonials WHERE is_approved = false`)
}

func (r *PostgresRepository) CountTeamMembers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM team_members`)
}

func (r *PostgresRepository) CountBlogPosts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM blog_posts WHERE published_at IS NOT NULL`)
}

func (r *PostgresRepository) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) RecentInquiries(ctx context.Context, limit int) ([]*inquiry.ContactInquiry, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), COALESCE(message, ''),
			status, created_at, updated_at
		FROM contact_inquiries
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent inquiries: %w", err)
	}
	defer rows.Close()

	var out []*inquiry.ContactInquiry
	for rows.Next() {
		var in inquiry.ContactInquiry
		err := rows.Scan(
			&in.ID, &in.Name, &in.Email, &in.Phone, &in.Message,
			&in.Status, &in.CreatedAt, &in.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		out = append(out, &in)
	}
	return out, rows.Err()
}

// InquiriesPerDay buckets inquiries by UTC calendar date since the
// given time. Only days with at least one inquiry appear in the map.
func (r *PostgresRepository) InquiriesPerDay(ctx context.Context, since time.Time) (map[string]int, error) {
	query := `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		FROM contact_inquiries
		WHERE created_at >= $1
		GROUP BY day`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket inquiries: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan bucket: %w", err)
		}
		out[day] = count
	}
	return out, rows.Err()
}
