package content

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("blog post not found")

// TeamMember is one staff profile on the about page.
type TeamMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	SortOrder int    `json:"sort_order"`
}

// BlogPost is one published article. Only published posts are served.
type BlogPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}
