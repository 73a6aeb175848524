package notification

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/veridian-studio/backoffice/internal/adminuser"
)

// Repository handles database operations for notifications. All reads
// and mutations are scoped to a recipient: a row is visible when it
// targets the recipient's admin id or their role.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListFor(ctx context.Context, rec Recipient, unreadOnly bool, limit, offset int) ([]*Notification, error)
	CountFor(ctx context.Context, rec Recipient) (int, error)
	UnreadCountFor(ctx context.Context, rec Recipient) (int, error)
	GetFor(ctx context.Context, id string, rec Recipient) (*Notification, error)
	MarkRead(ctx context.Context, id string, rec Recipient) (*Notification, error)
	MarkAllRead(ctx context.Context, rec Recipient) (int, error)
	Delete(ctx context.Context, id string, rec Recipient) (bool, error)
}

// PostgresRepository is the database-backed Repository.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// readStateExpr computes the per-recipient read state: user-targeted
// rows use the row's own flag, role broadcasts use the recipient's
// read receipt. $1 is always the recipient admin id.
const readStateExpr = `CASE WHEN n.recipient_id IS NOT NULL THEN n.is_read ELSE (nr.notification_id IS NOT NULL) END`

const visibleFrom = `
	FROM notifications n
	LEFT JOIN notification_reads nr ON nr.notification_id = n.id AND nr.admin_user_id = $1
	WHERE (n.recipient_id = $1 OR n.recipient_role = $2)
`

func (r *PostgresRepository) Create(ctx context.Context, n *Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now().UTC()
	n.IsRead = false

	query := `
		INSERT INTO notifications (id, type, title, message, recipient_id, recipient_role, metadata, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	var meta any
	if len(n.Metadata) > 0 {
		meta = []byte(n.Metadata)
	}
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.Type, n.Title, n.Message, n.RecipientID, n.RecipientRole, meta, n.IsRead, n.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) ListFor(ctx context.Context, rec Recipient, unreadOnly bool, limit, offset int) ([]*Notification, error) {
	query := `
		SELECT n.id, n.type, n.title, n.message, n.recipient_id, n.recipient_role, n.metadata, ` + readStateExpr + ` AS is_read, n.created_at
	` + visibleFrom
	if unreadOnly {
		query += ` AND NOT (` + readStateExpr + `)`
	}
	query += ` ORDER BY n.created_at DESC LIMIT $3 OFFSET $4`

	rows, err := r.db.QueryContext(ctx, query, rec.AdminID, rec.Role, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *PostgresRepository) CountFor(ctx context.Context, rec Recipient) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*)`+visibleFrom, rec.AdminID, rec.Role).Scan(&count)
	return count, err
}

func (r *PostgresRepository) UnreadCountFor(ctx context.Context, rec Recipient) (int, error) {
	query := `SELECT COUNT(*)` + visibleFrom + ` AND NOT (` + readStateExpr + `)`
	var count int
	err := r.db.QueryRowContext(ctx, query, rec.AdminID, rec.Role).Scan(&count)
	return count, err
}

func (r *PostgresRepository) GetFor(ctx context.Context, id string, rec Recipient) (*Notification, error) {
	query := `
		SELECT n.id, n.type, n.title, n.message, n.recipient_id, n.recipient_role, n.metadata, ` + readStateExpr + ` AS is_read, n.created_at
	` + visibleFrom + ` AND n.id = $3`

	row := r.db.QueryRowContext(ctx, query, rec.AdminID, rec.Role, id)
	n, err := scanNotification(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *PostgresRepository) MarkRead(ctx context.Context, id string, rec Recipient) (*Notification, error) {
	n, err := r.GetFor(ctx, id, rec)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}

	if n.RecipientID != nil {
		_, err = r.db.ExecContext(ctx,
			`UPDATE notifications SET is_read = true WHERE id = $1 AND recipient_id = $2`,
			id, rec.AdminID)
	} else {
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO notification_reads (notification_id, admin_user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			id, rec.AdminID)
	}
	if err != nil {
		return nil, err
	}

	n.IsRead = true
	return n, nil
}

func (r *PostgresRepository) MarkAllRead(ctx context.Context, rec Recipient) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = true WHERE recipient_id = $1 AND is_read = false`,
		rec.AdminID)
	if err != nil {
		return 0, err
	}
	direct, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	res, err = r.db.ExecContext(ctx, `
		INSERT INTO notification_reads (notification_id, admin_user_id)
		SELECT n.id, $1 FROM notifications n
		WHERE n.recipient_role = $2
		  AND NOT EXISTS (
			SELECT 1 FROM notification_reads nr
			WHERE nr.notification_id = n.id AND nr.admin_user_id = $1
		  )
	`, rec.AdminID, rec.Role)
	if err != nil {
		return 0, err
	}
	broadcast, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(direct + broadcast), nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string, rec Recipient) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE id = $1 AND (recipient_id = $2 OR recipient_role = $3)`,
		id, rec.AdminID, rec.Role)
	if err != nil {
		return false, err
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

func scanNotification(row rowScanner) (*Notification, error) {
	var n Notification
	var recipientID, recipientRole sql.NullString
	var meta []byte

	err := row.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &recipientID, &recipientRole, &meta, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	if recipientID.Valid {
		n.RecipientID = &recipientID.String
	}
	if recipientRole.Valid {
		role := adminuser.Role(recipientRole.String)
		n.RecipientRole = &role
	}
	if len(meta) > 0 {
		n.Metadata = meta
	}
	return &n, nil
}
