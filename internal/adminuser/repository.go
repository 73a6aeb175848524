package adminuser

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Repository defines storage access for admin-role records.
type Repository interface {
	Create(ctx context.Context, u *AdminUser) error
	GetByID(ctx context.Context, id string) (*AdminUser, error)
	GetByUserID(ctx context.Context, userID string) (*AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
	List(ctx context.Context) ([]*AdminUser, error)
	ListByRole(ctx context.Context, role Role) ([]*AdminUser, error)
}

// PostgresRepository is the database-backed Repository.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const adminUserColumns = `id, user_id, name, email, role, password_hash, created_at`

func (r *PostgresRepository) Create(ctx context.Context, u *AdminUser) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	// Locally provisioned admins have no external auth identity; the
	// row id doubles as the user id.
	if u.UserID == "" {
		u.UserID = u.ID
	}
	u.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO admin_users (id, user_id, name, email, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.UserID, u.Name, u.Email, u.Role, u.PasswordHash, u.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*AdminUser, error) {
	return r.getOne(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE id = $1`, id)
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*AdminUser, error) {
	return r.getOne(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE user_id = $1`, userID)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*AdminUser, error) {
	return r.getOne(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE email = $1`, email)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*AdminUser, error) {
	row := r.db.QueryRowContext(ctx, query, arg)

	var u AdminUser
	err := row.Scan(&u.ID, &u.UserID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*AdminUser
	for rows.Next() {
		var u AdminUser
		if err := rows.Scan(&u.ID, &u.UserID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) ListByRole(ctx context.Context, role Role) ([]*AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE role = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*AdminUser
	for rows.Next() {
		var u AdminUser
		if err := rows.Scan(&u.ID, &u.UserID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}
