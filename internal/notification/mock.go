package notification

import (
	"context"
)

type MockRepository struct {
	CreateFunc         func(ctx context.Context, n *Notification) error
	ListForFunc        func(ctx context.Context, rec Recipient, unreadOnly bool, limit, offset int) ([]*Notification, error)
	CountForFunc       func(ctx context.Context, rec Recipient) (int, error)
	UnreadCountForFunc func(ctx context.Context, rec Recipient) (int, error)
	GetForFunc         func(ctx context.Context, id string, rec Recipient) (*Notification, error)
	MarkReadFunc       func(ctx context.Context, id string, rec Recipient) (*Notification, error)
	MarkAllReadFunc    func(ctx context.Context, rec Recipient) (int, error)
	DeleteFunc         func(ctx context.Context, id string, rec Recipient) (bool, error)
}

func (m *MockRepository) Create(ctx context.Context, n *Notification) error {
	return m.CreateFunc(ctx, n)
}

func (m *MockRepository) ListFor(ctx context.Context, rec Recipient, unreadOnly bool, limit, offset int) ([]*Notification, error) {
	return m.ListForFunc(ctx, rec, unreadOnly, limit, offset)
}

func (m *MockRepository) CountFor(ctx context.Context, rec Recipient) (int, error) {
	return m.CountForFunc(ctx, rec)
}

func (m *MockRepository) UnreadCountFor(ctx context.Context, rec Recipient) (int, error) {
	return m.UnreadCountForFunc(ctx, rec)
}

func (m *MockRepository) GetFor(ctx context.Context, id string, rec Recipient) (*Notification, error) {
	return m.GetForFunc(ctx, id, rec)
}

func (m *MockRepository) MarkRead(ctx context.Context, id string, rec Recipient) (*Notification, error) {
	return m.MarkReadFunc(ctx, id, rec)
}

func (m *MockRepository) MarkAllRead(ctx context.Context, rec Recipient) (int, error) {
	return m.MarkAllReadFunc(ctx, rec)
}

func (m *MockRepository) Delete(ctx context.Context, id string, rec Recipient) (bool, error) {
	return m.DeleteFunc(ctx, id, rec)
}

// MockEmailSender records sends for assertions in tests.
type MockEmailSender struct {
	SendFunc func(ctx context.Context, to []string, subject, htmlBody string) (string, error)
	Calls    []MockEmailCall
}

type MockEmailCall struct {
	To      []string
	Subject string
	HTML    string
}

func (m *MockEmailSender) Send(ctx context.Context, to []string, subject, htmlBody string) (string, error) {
	m.Calls = append(m.Calls, MockEmailCall{To: to, Subject: subject, HTML: htmlBody})
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, htmlBody)
	}
	return "email_mock", nil
}
