package main

import (
	"encoding/json"
	"net/http"

	"github.com/veridian-studio/backoffice/pkg/jsonutil"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin verifies the password against the admin-user record and
// issues the session cookie. The same error is returned for an unknown
// email and a wrong password.
func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonutil.WriteInvalidArgument(w, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		jsonutil.WriteInvalidArgument(w, "email and password are required")
		return
	}

	admin, err := app.admins.GetByEmail(r.Context(), req.Email)
	if err != nil {
		app.writeUpstream(w, "failed to look up admin user", err)
		return
	}
	if admin == nil || !app.passwords.CompareHash(req.Password, admin.PasswordHash) {
		jsonutil.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := app.sessions.Issue(admin.UserID, admin.Email)
	if err != nil {
		app.writeUpstream(w, "failed to issue session", err)
		return
	}
	app.sessions.SetCookie(w, token)

	jsonutil.WriteJSON(w, http.StatusOK, map[string]any{
		"name":  admin.Name,
		"email": admin.Email,
		"role":  admin.Role,
	})
}

func (app *application) handleLogout(w http.ResponseWriter, r *http.Request) {
	app.sessions.ClearCookie(w)
	jsonutil.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
