package inquiry

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for contact inquiries.
type Repository interface {
	Create(ctx context.Context, in *ContactInquiry) error
	GetByID(ctx context.Context, id string) (*ContactInquiry, error)
	List(ctx context.Context, status Status, limit, offset int) ([]*ContactInquiry, error)
	Count(ctx context.Context, status Status) (int, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*ContactInquiry, error)
	MarkInProgressIfNew(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const inquiryColumns = `id, name, email, COALESCE(phone, ''), COALESCE(message, ''), status, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, in *ContactInquiry) error {
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	in.Status = StatusNew

	query := `
		INSERT INTO contact_inquiries (id, name, email, phone, message, status)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6)
		RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		in.ID, in.Name, in.Email, in.Phone, in.Message, in.Status,
	).Scan(&in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*ContactInquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM contact_inquiries WHERE id = $1`
	in, err := scanInquiry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}
	return in, nil
}

// List returns inquiries newest first, optionally filtered by status.
func (r *PostgresRepository) List(ctx context.Context, status Status, limit, offset int) ([]*ContactInquiry, error) {
	query := `
		SELECT ` + inquiryColumns + `
		FROM contact_inquiries
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var out []*ContactInquiry
	for rows.Next() {
		in, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Count(ctx context.Context, status Status) (int, error) {
	query := `SELECT COUNT(*) FROM contact_inquiries WHERE ($1 = '' OR status = $1)`
	var count int
	if err := r.db.QueryRowContext(ctx, query, string(status)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) (*ContactInquiry, error) {
	query := `
		UPDATE contact_inquiries
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + inquiryColumns
	in, err := scanInquiry(r.db.QueryRowContext(ctx, query, id, status))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update inquiry status: %w", err)
	}
	return in, nil
}

// MarkInProgressIfNew advances a new inquiry to in_progress. Returns
// false when the inquiry is missing or already past new.
func (r *PostgresRepository) MarkInProgressIfNew(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE contact_inquiries
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, id, StatusInProgress, StatusNew)
	if err != nil {
		return false, fmt.Errorf("failed to advance inquiry status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_inquiries WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete inquiry: %w", err)
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

func scanInquiry(row rowScanner) (*ContactInquiry, error) {
	var in ContactInquiry
	err := row.Scan(
		&in.ID, &in.Name, &in.Email, &in.Phone, &in.Message,
		&in.Status, &in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &in, nil
}
