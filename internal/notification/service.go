package notification

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/veridian-studio/backoffice/internal/adminuser"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	unreadCacheTTL = 30 * time.Second
)

// Service owns notification business logic. Persistence and email
// delivery are independent: an email failure is logged and never rolls
// back the notification row.
type Service struct {
	repo       Repository
	admins     adminuser.Repository
	dispatcher Dispatcher
	renderer   *Renderer
	logger     *observability.Logger

	cache *redis.Client
	hub   *Hub
}

func NewService(repo Repository, admins adminuser.Repository, dispatcher Dispatcher, renderer *Renderer, logger *observability.Logger) *Service {
	return &Service{
		repo:       repo,
		admins:     admins,
		dispatcher: dispatcher,
		renderer:   renderer,
		logger:     logger,
	}
}

// UseCache enables best-effort unread-count caching.
func (s *Service) UseCache(client *redis.Client) {
	s.cache = client
}

// UseHub enables unread-count pushes to connected admin clients.
func (s *Service) UseHub(hub *Hub) {
	s.hub = hub
}

// Create validates and persists one notification, then optionally
// dispatches an email to the resolved recipients.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Notification, error) {
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, in.Type)
	}
	if in.Title == "" || in.Message == "" {
		return nil, ErrMissingFields
	}
	if err := in.Target.Validate(); err != nil {
		return nil, err
	}

	n := &Notification{
		Type:     in.Type,
		Title:    in.Title,
		Message:  in.Message,
		Metadata: in.Metadata,
	}
	if in.Target.UserID != "" {
		id := in.Target.UserID
		n.RecipientID = &id
	} else {
		role := in.Target.Role
		n.RecipientRole = &role
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to persist notification: %w", err)
	}
	NotificationsCreated.WithLabelValues(string(in.Type)).Inc()

	recipients, err := s.resolveRecipients(ctx, in.Target)
	if err != nil {
		s.logger.Error("failed to resolve notification recipients", "notification_id", n.ID, "error", err)
		return n, nil
	}

	if in.SendEmail && s.dispatcher != nil {
		s.sendEmail(ctx, n, recipients)
	}

	for _, admin := range recipients {
		s.refreshUnread(ctx, Recipient{AdminID: admin.ID, Role: admin.Role})
	}

	return n, nil
}

// sendEmail dispatches one email addressed to every resolved recipient.
// Best effort only.
func (s *Service) sendEmail(ctx context.Context, n *Notification, recipients []*adminuser.AdminUser) {
	if len(recipients) == 0 {
		s.logger.Warn("no recipients resolved for notification email", "notification_id", n.ID)
		return
	}

	to := make([]string, 0, len(recipients))
	for _, admin := range recipients {
		to = append(to, admin.Email)
	}

	html, err := s.renderer.RenderNotification(n.Title, n.Message)
	if err != nil {
		s.logger.Error("failed to render notification email", "notification_id", n.ID, "error", err)
		return
	}

	task := EmailTask{
		ID:      "notif_" + n.ID,
		To:      to,
		Subject: n.Title,
		HTML:    html,
	}
	if err := s.dispatcher.Dispatch(ctx, task); err != nil {
		s.logger.Error("failed to dispatch notification email", "notification_id", n.ID, "error", err)
	}
}

func (s *Service) resolveRecipients(ctx context.Context, target Target) ([]*adminuser.AdminUser, error) {
	if target.Role != "" {
		return s.admins.ListByRole(ctx, target.Role)
	}
	admin, err := s.admins.GetByID(ctx, target.UserID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, nil
	}
	return []*adminuser.AdminUser{admin}, nil
}

// ListFor returns a page of notifications visible to the recipient,
// with total and unread counts for the bell.
func (s *Service) ListFor(ctx context.Context, rec Recipient, unreadOnly bool, limit, offset int) (*ListResult, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.repo.ListFor(ctx, rec, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	total, err := s.repo.CountFor(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}
	unread, err := s.UnreadCount(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	if items == nil {
		items = []*Notification{}
	}
	return &ListResult{
		Notifications: items,
		Total:         total,
		UnreadCount:   unread,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

// UnreadCount serves the bell counter, via the cache when available.
func (s *Service) UnreadCount(ctx context.Context, rec Recipient) (int, error) {
	key := unreadCacheKey(rec.AdminID)
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, key).Result(); err == nil {
			if count, err := strconv.Atoi(val); err == nil {
				return count, nil
			}
		}
	}

	count, err := s.repo.UnreadCountFor(ctx, rec)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, strconv.Itoa(count), unreadCacheTTL)
	}
	return count, nil
}

// MarkRead marks one visible notification read for this recipient.
func (s *Service) MarkRead(ctx context.Context, id string, rec Recipient) (*Notification, error) {
	n, err := s.repo.MarkRead(ctx, id, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	if n == nil {
		return nil, ErrNotFound
	}
	s.refreshUnread(ctx, rec)
	return n, nil
}

// MarkAllRead marks every visible notification read. Running it again
// immediately returns zero.
func (s *Service) MarkAllRead(ctx context.Context, rec Recipient) (int, error) {
	count, err := s.repo.MarkAllRead(ctx, rec)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	s.refreshUnread(ctx, rec)
	return count, nil
}

// Delete removes one visible notification.
func (s *Service) Delete(ctx context.Context, id string, rec Recipient) error {
	ok, err := s.repo.Delete(ctx, id, rec)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	s.refreshUnread(ctx, rec)
	return nil
}

// refreshUnread invalidates the cached count and pushes the fresh value
// to any connected clients of this recipient. Best effort.
func (s *Service) refreshUnread(ctx context.Context, rec Recipient) {
	if s.cache != nil {
		s.cache.Del(ctx, unreadCacheKey(rec.AdminID))
	}
	if s.hub == nil {
		return
	}
	count, err := s.repo.UnreadCountFor(ctx, rec)
	if err != nil {
		s.logger.Error("failed to refresh unread count", "admin_id", rec.AdminID, "error", err)
		return
	}
	s.hub.Push(rec.AdminID, count)
}

func unreadCacheKey(adminID string) string {
	return "notif:unread:" + adminID
}
