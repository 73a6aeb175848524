package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/veridian-studio/backoffice/internal/adminuser"
	"github.com/veridian-studio/backoffice/internal/auth"
	"github.com/veridian-studio/backoffice/internal/catalog"
	"github.com/veridian-studio/backoffice/internal/content"
	"github.com/veridian-studio/backoffice/internal/inquiry"
	"github.com/veridian-studio/backoffice/internal/notification"
	"github.com/veridian-studio/backoffice/internal/policy"
	"github.com/veridian-studio/backoffice/internal/reply"
	"github.com/veridian-studio/backoffice/internal/stats"
	"github.com/veridian-studio/backoffice/internal/testimonial"
	"github.com/veridian-studio/backoffice/pkg/bcryptutil"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

type testDeps struct {
	admins       *adminuser.MockRepository
	notifs       *notification.MockRepository
	inquiries    *inquiry.MockRepository
	testimonials *testimonial.MockRepository
	services     *catalog.MockRepository
	contentRepo  *content.MockRepository
	replies      *reply.MockRepository
	statsRepo    *stats.MockRepository
	sender       *notification.MockEmailSender
}

func defaultAdmin() *adminuser.AdminUser {
	return &adminuser.AdminUser{
		ID: "a1", UserID: "user-1", Name: "Dana",
		Email: "dana@veridian.test", Role: adminuser.RoleAdmin,
	}
}

func newTestApp(t *testing.T) (*application, *testDeps) {
	t.Helper()

	deps := &testDeps{
		admins: &adminuser.MockRepository{
			GetByUserIDFunc: func(ctx context.Context, userID string) (*adminuser.AdminUser, error) {
				if userID == "user-1" {
					return defaultAdmin(), nil
				}
				return nil, nil
			},
		},
		notifs: &notification.MockRepository{
			// The hub refreshes unread counts after every mutation.
			UnreadCountForFunc: func(ctx context.Context, rec notification.Recipient) (int, error) {
				return 0, nil
			},
		},
		inquiries:    &inquiry.MockRepository{},
		testimonials: &testimonial.MockRepository{},
		services:     &catalog.MockRepository{},
		contentRepo:  &content.MockRepository{},
		replies:      &reply.MockRepository{},
		statsRepo:    &stats.MockRepository{},
		sender:       &notification.MockEmailSender{},
	}

	logger := observability.NewLogger("test")
	renderer := notification.NewRenderer("http://localhost:3000")
	sessions := auth.NewSessions("test-secret", time.Hour)
	hub := notification.NewHub()

	notifService := notification.NewService(
		deps.notifs, deps.admins,
		notification.NewInlineDispatcher(deps.sender), renderer, logger,
	)
	notifService.UseHub(hub)

	inquiryService := inquiry.NewService(deps.inquiries, logger)
	testimonialService := testimonial.NewService(deps.testimonials, logger)
	router := notification.NewRouter(notifService, logger)
	inquiryService.UseFallbackRouter(router)
	testimonialService.UseFallbackRouter(router)

	app := &application{
		cfg:           config{},
		logger:        logger,
		sessions:      sessions,
		policy:        policy.NewHardcodedEngine(),
		passwords:     &bcryptutil.BcryptUtilsImpl{},
		admins:        deps.admins,
		notifications: notifService,
		hub:           hub,
		inquiries:     inquiryService,
		testimonials:  testimonialService,
		catalog:       catalog.NewCatalog(deps.services, logger),
		contentRepo:   deps.contentRepo,
		replies:       reply.NewService(deps.replies, deps.inquiries, deps.testimonials, deps.sender, renderer, logger),
		stats:         stats.NewService(deps.statsRepo, logger),
		upgrader:      websocket.Upgrader{},
	}
	app.gate = auth.NewGate(sessions, deps.admins, logger)
	return app, deps
}

func adminRequest(t *testing.T, app *application, method, path, body string) *http.Request {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	token, err := app.sessions.Issue("user-1", "dana@veridian.test")
	if err != nil {
		t.Fatalf("failed to issue session: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	return req
}

func TestPublicServicesFallsBackTo200(t *testing.T) {
	app, deps := newTestApp(t)
	deps.services.ListActiveFunc = func(ctx context.Context) ([]*catalog.Service, error) {
		return nil, errors.New("store down")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	var body struct {
		Services []*catalog.Service `json:"services"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Services) != 4 {
		t.Fatalf("want the four fallback services, got %d", len(body.Services))
	}
}

func TestUpdateServiceRejectsUnknownPricingType(t *testing.T) {
	app, deps := newTestApp(t)
	deps.services.UpdateFunc = func(ctx context.Context, id string, u catalog.Update) (*catalog.Service, error) {
		t.Fatal("store must not be touched")
		return nil, nil
	}

	req := adminRequest(t, app, http.MethodPatch, "/api/admin/services/s1", `{"pricing_type":"weekly"}`)
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
	body := rec.Body.String()
	for _, opt := range catalog.ValidPricingTypes() {
		if !strings.Contains(body, opt) {
			t.Fatalf("body must list option %q, got %s", opt, body)
		}
	}
}

func TestUpdateServiceIgnoresUnknownFields(t *testing.T) {
	app, deps := newTestApp(t)
	var gotUpdate catalog.Update
	deps.services.UpdateFunc = func(ctx context.Context, id string, u catalog.Update) (*catalog.Service, error) {
		gotUpdate = u
		return &catalog.Service{ID: id, Name: "Renamed"}, nil
	}

	req := adminRequest(t, app, http.MethodPatch, "/api/admin/services/s1",
		`{"name":"Renamed","slug":"hacked","internal_flag":true}`)
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if gotUpdate.Name == nil || *gotUpdate.Name != "Renamed" {
		t.Fatalf("allow-listed field dropped: %+v", gotUpdate)
	}
}

func TestUpdateInquiryRejectsUnknownStatus(t *testing.T) {
	app, deps := newTestApp(t)
	deps.inquiries.UpdateStatusFunc = func(ctx context.Context, id string, status inquiry.Status) (*inquiry.ContactInquiry, error) {
		t.Fatal("store must not be touched")
		return nil, nil
	}

	req := adminRequest(t, app, http.MethodPatch, "/api/admin/inquiries/i1", `{"status":"resolved"}`)
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestReplyToMissingInquiry(t *testing.T) {
	app, deps := newTestApp(t)
	deps.inquiries.GetByIDFunc = func(ctx context.Context, id string) (*inquiry.ContactInquiry, error) {
		return nil, nil
	}

	req := adminRequest(t, app, http.MethodPost, "/api/inquiries/missing/reply",
		`{"subject":"s","message":"m","recipientEmail":"c@x.com","recipientName":"C"}`)
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
	if len(deps.sender.Calls) != 0 {
		t.Fatalf("email provider must not be called, got %d calls", len(deps.sender.Calls))
	}
}

func TestReplySuccess(t *testing.T) {
	app, deps := newTestApp(t)
	deps.inquiries.GetByIDFunc = func(ctx context.Context, id string) (*inquiry.ContactInquiry, error) {
		return &inquiry.ContactInquiry{ID: id, Status: inquiry.StatusNew}, nil
	}
	deps.inquiries.MarkInProgressIfNewFunc = func(ctx context.Context, id string) (bool, error) {
		return true, nil
	}
	deps.replies.CreateFunc = func(ctx context.Context, r *reply.AdminReply) error { return nil }
	deps.sender.SendFunc = func(ctx context.Context, to []string, subject, htmlBody string) (string, error) {
		return "email_42", nil
	}

	req := adminRequest(t, app, http.MethodPost, "/api/inquiries/i1/reply",
		`{"subject":"Re","message":"Thanks","recipientEmail":"c@x.com","recipientName":"Claire"}`)
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "email_42") {
		t.Fatalf("response must carry the email id, got %s", rec.Body.String())
	}
}

func TestAdminEndpointRequiresSession(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", rec.Code)
	}
}

func TestCreateAdminNeedsSuperAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	req := adminRequest(t, app, http.MethodPost, "/api/admin/admins",
		`{"name":"New","email":"new@x.com","password":"secret","role":"admin"}`)
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "insufficient_permissions") {
		t.Fatalf("body must carry the marker, got %s", rec.Body.String())
	}
}

func TestContactSubmissionCreatesNotification(t *testing.T) {
	app, deps := newTestApp(t)
	deps.inquiries.CreateFunc = func(ctx context.Context, in *inquiry.ContactInquiry) error {
		in.ID = "i1"
		return nil
	}

	var created *notification.Notification
	deps.notifs.CreateFunc = func(ctx context.Context, n *notification.Notification) error {
		n.ID = "n1"
		created = n
		return nil
	}
	deps.admins.ListByRoleFunc = func(ctx context.Context, role adminuser.Role) ([]*adminuser.AdminUser, error) {
		return []*adminuser.AdminUser{defaultAdmin()}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Claire","email":"claire@client.test","message":"Help"}`))
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if created == nil || created.Type != notification.TypeContactForm {
		t.Fatalf("contact submissions must raise a contact_form notification, got %+v", created)
	}
	if len(deps.sender.Calls) != 1 {
		t.Fatalf("contact submissions alert admins by email, got %d calls", len(deps.sender.Calls))
	}
}

func TestListNotificationsScopedToCaller(t *testing.T) {
	app, deps := newTestApp(t)
	var gotRec notification.Recipient
	deps.notifs.ListForFunc = func(ctx context.Context, rec notification.Recipient, unreadOnly bool, limit, offset int) ([]*notification.Notification, error) {
		gotRec = rec
		return nil, nil
	}
	deps.notifs.CountForFunc = func(ctx context.Context, rec notification.Recipient) (int, error) { return 0, nil }
	deps.notifs.UnreadCountForFunc = func(ctx context.Context, rec notification.Recipient) (int, error) { return 0, nil }

	req := adminRequest(t, app, http.MethodGet, "/api/notifications?unreadOnly=true", "")
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if gotRec.AdminID != "a1" || gotRec.Role != adminuser.RoleAdmin {
		t.Fatalf("recipient must come from the session, got %+v", gotRec)
	}
}
