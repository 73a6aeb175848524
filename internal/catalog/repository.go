package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository is the persistence boundary for service offerings.
type Repository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id string) (*Service, error)
	ListActive(ctx context.Context) ([]*Service, error)
	ListAll(ctx context.Context) ([]*Service, error)
	Update(ctx context.Context, id string, u Update) (*Service, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const serviceColumns = `id, name, slug, description, COALESCE(short_description, ''),
	pricing_min, pricing_max, pricing_type, features, is_active, sort_order,
	created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, s *Service) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Slug == "" {
		s.Slug = slugify(s.Name)
	}

	query := `
		INSERT INTO services (id, name, slug, description, short_description,
			pricing_min, pricing_max, pricing_type, features, is_active, sort_order)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		s.ID, s.Name, s.Slug, s.Description, s.ShortDescription,
		s.PricingMin, s.PricingMax, s.PricingType, pq.Array(s.Features),
		s.IsActive, s.SortOrder,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	s, err := scanService(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]*Service, error) {
	return r.list(ctx, true)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Service, error) {
	return r.list(ctx, false)
}

func (r *PostgresRepository) list(ctx context.Context, activeOnly bool) ([]*Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE ($1 = false OR is_active = true)
		ORDER BY sort_order ASC, name ASC`
	rows, err := r.db.QueryContext(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var out []*Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update applies the non-nil fields of u and returns the updated row,
// or nil when the id does not exist.
func (r *PostgresRepository) Update(ctx context.Context, id string, u Update) (*Service, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if u.Name != nil {
		add("name", *u.Name)
	}
	if u.Description != nil {
		add("description", *u.Description)
	}
	if u.ShortDescription != nil {
		add("short_description", *u.ShortDescription)
	}
	if u.PricingMin != nil {
		add("pricing_min", *u.PricingMin)
	}
	if u.PricingMax != nil {
		add("pricing_max", *u.PricingMax)
	}
	if u.PricingType != nil {
		add("pricing_type", *u.PricingType)
	}
	if u.Features != nil {
		add("features", pq.Array(*u.Features))
	}
	if u.IsActive != nil {
		add("is_active", *u.IsActive)
	}
	if u.SortOrder != nil {
		add("sort_order", *u.SortOrder)
	}

	query := `
		UPDATE services
		SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1
		RETURNING ` + serviceColumns
	s, err := scanService(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete service: %w", err)
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

func scanService(row rowScanner) (*Service, error) {
	var s Service
	err := row.Scan(
		&s.ID, &s.Name, &s.Slug, &s.Description, &s.ShortDescription,
		&s.PricingMin, &s.PricingMax, &s.PricingType, pq.Array(&s.Features),
		&s.IsActive, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if s.Features == nil {
		s.Features = []string{}
	}
	return &s, nil
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		}
		return -1
	}, slug)
	return strings.Trim(slug, "-")
}
