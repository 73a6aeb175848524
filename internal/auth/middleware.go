package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/veridian-studio/backoffice/internal/adminuser"
	"github.com/veridian-studio/backoffice/pkg/apikey"
	"github.com/veridian-studio/backoffice/pkg/jsonutil"
	"github.com/veridian-studio/backoffice/pkg/observability"
)

const (
	loginPath     = "/admin/login"
	dashboardPath = "/admin/dashboard"
)

// Gate derives the session state of each request and enforces the
// admin-role requirement. States: anonymous, authenticated non-admin,
// admin, super admin.
type Gate struct {
	sessions *Sessions
	admins   adminuser.Repository
	logger   *observability.Logger
}

func NewGate(sessions *Sessions, admins adminuser.Repository, logger *observability.Logger) *Gate {
	return &Gate{sessions: sessions, admins: admins, logger: logger}
}

// RequireAdmin resolves the session to an admin-user record and stores
// the caller in the request context. Anonymous requests are sent to
// login with the original path preserved; authenticated sessions with
// no admin record get an "unauthorized" marker, distinct from having
// no session at all.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			g.rejectAnonymous(w, r)
			return
		}

		claims, err := g.sessions.Verify(cookie.Value)
		if err != nil {
			g.rejectAnonymous(w, r)
			return
		}

		admin, err := g.admins.GetByUserID(r.Context(), claims.Subject)
		if err != nil {
			g.logger.Error("admin lookup failed", "error", err)
			jsonutil.WriteUpstreamFailure(w)
			return
		}
		if admin == nil {
			// Valid session, but not staff.
			if wantsHTML(r) {
				http.Redirect(w, r, loginPath+"?error=unauthorized", http.StatusSeeOther)
				return
			}
			jsonutil.WriteForbidden(w, "unauthorized")
			return
		}

		caller := Caller{
			AdminID: admin.ID,
			UserID:  admin.UserID,
			Name:    admin.Name,
			Email:   admin.Email,
			Role:    admin.Role,
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}

// RequireSuperAdmin runs after RequireAdmin on the allow-listed paths.
// An admin of insufficient rank is a valid admin, so they are routed to
// the dashboard rather than login.
func (g *Gate) RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFrom(r.Context())
		if !ok {
			g.rejectAnonymous(w, r)
			return
		}
		if caller.Role != adminuser.RoleSuperAdmin {
			if wantsHTML(r) {
				http.Redirect(w, r, dashboardPath+"?error=insufficient_permissions", http.StatusSeeOther)
				return
			}
			jsonutil.WriteForbidden(w, "insufficient_permissions")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Gate) rejectAnonymous(w http.ResponseWriter, r *http.Request) {
	if wantsHTML(r) {
		http.Redirect(w, r, loginPath+"?redirect="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
		return
	}
	jsonutil.WriteUnauthorized(w)
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// ServiceKeyMiddleware authenticates trusted server-to-server callers
// via the X-Service-Key header. The key never reaches browsers.
func ServiceKeyMiddleware(secret, expectedHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Service-Key")
			if key == "" || !apikey.VerifyKey(key, secret, expectedHash) {
				jsonutil.WriteForbidden(w, "invalid service key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
