package content

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository serves the public content reads: team and blog.
type Repository interface {
	ListTeam(ctx context.Context) ([]*TeamMember, error)
	ListPosts(ctx context.Context) ([]*BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*BlogPost, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListTeam(ctx context.Context) ([]*TeamMember, error) {
	query := `
		SELECT id, name, role, COALESCE(bio, ''), COALESCE(photo_url, ''), sort_order
		FROM team_members
		ORDER BY sort_order ASC, name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	var out []*TeamMember
	for rows.Next() {
		var m TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.PhotoURL, &m.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ListPosts returns published posts without bodies, newest first.
func (r *PostgresRepository) ListPosts(ctx context.Context) ([]*BlogPost, error) {
	query := `
		SELECT id, title, slug, COALESCE(excerpt, ''), published_at
		FROM blog_posts
		WHERE published_at IS NOT NULL
		ORDER BY published_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	var out []*BlogPost
	for rows.Next() {
		var p BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetPostBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	query := `
		SELECT id, title, slug, COALESCE(excerpt, ''), COALESCE(body, ''), published_at
		FROM blog_posts
		WHERE slug = $1 AND published_at IS NOT NULL`
	var p BlogPost
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Body, &p.PublishedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return &p, nil
}
