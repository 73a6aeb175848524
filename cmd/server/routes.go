package main

import (
	"bufio"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veridian-studio/backoffice/internal/auth"
)

func (app *application) routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", app.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Public marketing surface.
	r.HandleFunc("/api/services", app.handlePublicServices).Methods(http.MethodGet)
	r.HandleFunc("/api/testimonials", app.handlePublicTestimonials).Methods(http.MethodGet)
	r.HandleFunc("/api/testimonials", app.handleSubmitTestimonial).Methods(http.MethodPost)
	r.HandleFunc("/api/team", app.handleTeam).Methods(http.MethodGet)
	r.HandleFunc("/api/blog", app.handleBlogList).Methods(http.MethodGet)
	r.HandleFunc("/api/blog/{slug}", app.handleBlogPost).Methods(http.MethodGet)
	r.HandleFunc("/api/contact", app.handleSubmitInquiry).Methods(http.MethodPost)

	// Session issuance.
	r.HandleFunc("/api/admin/login", app.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/logout", app.handleLogout).Methods(http.MethodPost)

	// Internal server-to-server surface, enabled when a key is set.
	// Registered before the admin subrouter so its catch-all prefix
	// cannot shadow these paths.
	if app.cfg.serviceKey != "" && app.cfg.serviceKeyHash != "" {
		internal := r.PathPrefix("/internal").Subrouter()
		internal.Use(auth.ServiceKeyMiddleware(app.cfg.serviceKey, app.cfg.serviceKeyHash))
		internal.HandleFunc("/notifications", app.handleInternalCreateNotification).Methods(http.MethodPost)
	}

	// Admin surface, gated on an admin-role record.
	admin := r.PathPrefix("/").Subrouter()
	admin.Use(app.gate.RequireAdmin)

	admin.HandleFunc("/api/admin/stats", app.handleStats).Methods(http.MethodGet)

	admin.HandleFunc("/api/admin/inquiries", app.handleListInquiries).Methods(http.MethodGet)
	admin.HandleFunc("/api/admin/inquiries/{id}", app.handleUpdateInquiry).Methods(http.MethodPatch)
	admin.HandleFunc("/api/admin/inquiries/{id}", app.handleDeleteInquiry).Methods(http.MethodDelete)
	admin.HandleFunc("/api/inquiries/{id}/reply", app.handleReply).Methods(http.MethodPost)

	admin.HandleFunc("/api/admin/services", app.handleAdminServices).Methods(http.MethodGet)
	admin.HandleFunc("/api/admin/services", app.handleCreateService).Methods(http.MethodPost)
	admin.HandleFunc("/api/admin/services/{id}", app.handleUpdateService).Methods(http.MethodPatch)
	admin.HandleFunc("/api/admin/services/{id}", app.handleDeleteService).Methods(http.MethodDelete)

	admin.HandleFunc("/api/admin/testimonials", app.handleAdminTestimonials).Methods(http.MethodGet)
	admin.HandleFunc("/api/admin/testimonials/{id}", app.handleModerateTestimonial).Methods(http.MethodPatch)
	admin.HandleFunc("/api/admin/testimonials/{id}", app.handleDeleteTestimonial).Methods(http.MethodDelete)

	admin.HandleFunc("/api/notifications", app.handleListNotifications).Methods(http.MethodGet)
	admin.HandleFunc("/api/notifications/create", app.handleCreateNotification).Methods(http.MethodPost)
	admin.HandleFunc("/api/notifications/read-all", app.handleMarkAllNotificationsRead).Methods(http.MethodPatch)
	admin.HandleFunc("/api/notifications/stream", app.handleNotificationStream).Methods(http.MethodGet)
	admin.HandleFunc("/api/notifications/{id}/read", app.handleMarkNotificationRead).Methods(http.MethodPatch)
	admin.HandleFunc("/api/notifications/{id}", app.handleDeleteNotification).Methods(http.MethodDelete)

	// Staff management needs the higher rank.
	superAdmin := admin.PathPrefix("/api/admin/admins").Subrouter()
	superAdmin.Use(app.gate.RequireSuperAdmin)
	superAdmin.HandleFunc("", app.handleListAdmins).Methods(http.MethodGet)
	superAdmin.HandleFunc("", app.handleCreateAdmin).Methods(http.MethodPost)

	return app.requestLogger(r)
}

// requestLogger logs each request after it completes.
func (app *application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		app.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the websocket upgrade through the logging wrapper.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hj.Hijack()
}
