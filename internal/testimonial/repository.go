package testimonial

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for testimonials.
type Repository interface {
	Create(ctx context.Context, t *Testimonial) error
	GetByID(ctx context.Context, id string) (*Testimonial, error)
	ListApproved(ctx context.Context, featuredOnly bool) ([]*Testimonial, error)
	ListAll(ctx context.Context) ([]*Testimonial, error)
	Moderate(ctx context.Context, id string, m Moderation) (*Testimonial, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const testimonialColumns = `id, client_name, COALESCE(client_role, ''),
	COALESCE(client_company, ''), content, rating, is_approved, is_featured, created_at`

func (r *PostgresRepository) Create(ctx context.Context, t *Testimonial) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	query := `
		INSERT INTO testimonials (id, client_name, client_role, client_company,
			content, rating, is_approved, is_featured)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		t.ID, t.ClientName, t.ClientRole, t.ClientCompany,
		t.Content, t.Rating, t.IsApproved, t.IsFeatured,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert testimonial: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`
	t, err := scanTestimonial(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) ListApproved(ctx context.Context, featuredOnly bool) ([]*Testimonial, error) {
	query := `
		SELECT ` + testimonialColumns + `
		FROM testimonials
		WHERE is_approved = true AND ($1 = false OR is_featured = true)
		ORDER BY created_at DESC`
	return r.queryMany(ctx, query, featuredOnly)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *PostgresRepository) queryMany(ctx context.Context, query string, args ...any) ([]*Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer rows.Close()

	var out []*Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Moderate applies the non-nil moderation flags and returns the updated
// row, or nil when the id does not exist.
func (r *PostgresRepository) Moderate(ctx context.Context, id string, m Moderation) (*Testimonial, error) {
	sets := []string{}
	args := []any{id}
	if m.IsApproved != nil {
		args = append(args, *m.IsApproved)
		sets = append(sets, fmt.Sprintf("is_approved = $%d", len(args)))
	}
	if m.IsFeatured != nil {
		args = append(args, *m.IsFeatured)
		sets = append(sets, fmt.Sprintf("is_featured = $%d", len(args)))
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	query := `
		UPDATE testimonials
		SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1
		RETURNING ` + testimonialColumns
	t, err := scanTestimonial(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to moderate testimonial: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete testimonial: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTestimonial(row rowScanner) (*Testimonial, error) {
	var t Testimonial
	err := row.Scan(
		&t.ID, &t.ClientName, &t.ClientRole, &t.ClientCompany,
		&t.Content, &t.Rating, &t.IsApproved, &t.IsFeatured, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
