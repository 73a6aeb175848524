package reply

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository persists reply audit rows.
type Repository interface {
	Create(ctx context.Context, r *AdminReply) error
	ListForTarget(ctx context.Context, kind TargetKind, targetID string) ([]*AdminReply, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, reply *AdminReply) error {
	if reply.ID == "" {
		reply.ID = uuid.New().String()
	}

	query := `
		INSERT INTO admin_replies (id, target_kind, target_id, admin_id, admin_name,
			admin_email, recipient_email, recipient_name, subject, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		reply.ID, reply.TargetKind, reply.TargetID, reply.AdminID, reply.AdminName,
		reply.AdminEmail, reply.RecipientEmail, reply.RecipientName,
		reply.Subject, reply.Message,
	).Scan(&reply.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reply: %w", err)
	}
	return nil
}

// ListForTarget returns the reply history of one inquiry or testimonial.
func (r *PostgresRepository) ListForTarget(ctx context.Context, kind TargetKind, targetID string) ([]*AdminReply, error) {
	query := `
		SELECT id, target_kind, target_id, admin_id, admin_name, admin_email,
			recipient_email, recipient_name, subject, message, created_at
		FROM admin_replies
		WHERE target_kind = $1 AND target_id = $2
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, kind, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	defer rows.Close()

	var out []*AdminReply
	for rows.Next() {
		var reply AdminReply
		err := rows.Scan(
			&reply.ID, &reply.TargetKind, &reply.TargetID, &reply.AdminID,
			&reply.AdminName, &reply.AdminEmail, &reply.RecipientEmail,
			&reply.RecipientName, &reply.Subject, &reply.Message, &reply.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		out = append(out, &reply)
	}
	return out, rows.Err()
}
