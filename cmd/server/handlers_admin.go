package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/veridian-studio/backoffice/internal/adminuser"
	"github.com/veridian-studio/backoffice/internal/auth"
	"github.com/veridian-studio/backoffice/internal/catalog"
	"github.com/veridian-studio/backoffice/internal/inquiry"
	"github.com/veridian-studio/backoffice/internal/policy"
	"github.com/veridian-studio/backoffice/internal/reply"
	"github.com/veridian-studio/backoffice/internal/testimonial"
	"github.com/veridian-studio/backoffice/pkg/jsonutil"
)

func (app *application) handleStats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := app.stats.Compute(r.Context())
	if err != nil {
		app.writeUpstream(w, "failed to compute dashboard stats", err)
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, snapshot)
}

func (app *application) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	result, err := app.inquiries.List(r.Context(), inquiry.Status(q.Get("status")), limit, offset)
	if errors.Is(err, inquiry.ErrInvalidStatus) {
		jsonutil.WriteInvalidArgument(w, err.Error())
		return
	}
	if err != nil {
		app.writeUpstream(w, "failed to list inquiries", err)
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, result)
}

func (app *application) handleUpdateInquiry(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status inquiry.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonutil.WriteInvalidArgument(w, "invalid request body")
		return
	}

	updated, err := app.inquiries.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	switch {
	case errors.Is(err, inquiry.ErrInvalidStatus):
		jsonutil.WriteInvalidArgument(w, err.Error())
	case errors.Is(err, inquiry.ErrNotFound):
		jsonutil.WriteNotFound(w, "inquiry not found")
	case err != nil:
		app.writeUpstream(w, "failed to update inquiry", err)
	default:
		jsonutil.WriteJSON(w, http.StatusOK, updated)
	}
}

func (app *application) handleDeleteInquiry(w http.ResponseWriter, r *http.Request) {
	err := app.inquiries.Delete(r.Context(), mux.Vars(r)["id"])
	switch {
	case errors.Is(err, inquiry.ErrNotFound):
		jsonutil.WriteNotFound(w, "inquiry not found")
	case err != nil:
		app.writeUpstream(w, "failed to delete inquiry", err)
	default:
		jsonutil.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func (app *application) handleReply(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		jsonutil.WriteUnauthorized(w)
		return
	}

	var body struct {
		Subject        string `json:"subject"`
		Message        string `json:"message"`
		RecipientEmail string `json:"recipientEmail"`
		RecipientName  string `json:"recipientName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonutil.WriteInvalidArgument(w, "invalid request body")
		return
	}

	emailID, err := app.replies.SendReply(r.Context(), caller, reply.SendInput{
		TargetKind:     reply.TargetInquiry,
		TargetID:       mux.Vars(r)["id"],
		Subject:        body.Subject,
		Message:        body.Message,
		RecipientEmail: body.RecipientEmail,
		RecipientName:  body.RecipientName,
	})
	switch {
	case errors.Is(err, reply.ErrForbidden):
		jsonutil.WriteForbidden(w, "unauthorized")
	case errors.Is(err, reply.ErrNotFound):
		jsonutil.WriteNotFound(w, "inquiry not found")
	case errors.Is(err, reply.ErrMissingFields):
		jsonutil.WriteInvalidArgument(w, err.Error())
	case errors.Is(err, reply.ErrEmailDelivery):
		app.writeUpstream(w, "reply email delivery failed", err)
	case err != nil:
		app.writeUpstream(w, "failed to send reply", err)
	default:
		jsonutil.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "emailId": emailID})
	}
}

func (app *application) handleAdminServices(w http.ResponseWriter, r *http.Request) {
	services, err := app.catalog.AdminList(r.Context())
	if err != nil {
		app.writeUpstream(w, "failed to list services", err)
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, map[string]any{"services": services})
}

func (app *application) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var s catalog.Service
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		jsonutil.WriteInvalidArgument(w, "invalid request body")
		return
	}

	created, err := app.catalog.Create(r.Context(), &s)
	var badPricing *catalog.ErrInvalidPricingType
	switch {
	case errors.Is(err, catalog.ErrMissingFields):
		jsonutil.WriteInvalidArgument(w, err.Error())
	case errors.As(err, &badPricing):
		app.writePricingTypeError(w, badPricing)
	case err != nil:
		app.writeUpstream(w, "failed to create service", err)
	default:
		jsonutil.WriteJSON(w, http.StatusCreated, created)
	}
}

func (app *application) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	var u catalog.Update
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		jsonutil.WriteInvalidArgument(w, "invalid request body")
		return
	}

	updated, err := app.catalog.Update(r.Context(), mux.Vars(r)["id"], u)
	var badPricing *catalog.ErrInvalidPricingType
	switch {
	case errors.As(err, &badPricing):
		app.writePricingTypeError(w, badPricing)
	case errors.Is(err, catalog.ErrNotFound):
		jsonutil.WriteNotFound(w, "service not found")
	case err != nil:
		app.writeUpstream(w, "failed to update service", err)
	default:
		jsonutil.WriteJSON(w, http.StatusOK, updated)
	}
}

func (app *application) writePricingTypeError(w http.ResponseWriter, err *catalog.ErrInvalidPricingType) {
	jsonutil.WriteJSON(w, http.StatusBadRequest, map[string]any{
		"error":         err.Error(),
		"valid_options": catalog.ValidPricingTypes(),
	})
}

func (app *application) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())
	if res := app.policy.Check(r.Context(), caller.Role, policy.ActionServiceDelete); !res.Allowed {
		jsonutil.WriteForbidden(w, res.Reason)
		return
	}

	err := app.catalog.Delete(r.Context(), mux.Vars(r)["id"])
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		jsonutil.WriteNotFound(w, "service not found")
	case err != nil:
		app.writeUpstream(w, "failed to delete service", err)
	default:
		jsonutil.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func (app *application) handleAdminTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := app.testimonials.AdminList(r.Context())
	if err != nil {
		app.writeUpstream(w, "failed to list testimonials", err)
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, map[string]any{"testimonials": items})
}

func (app *application) handleModerateTestimonial(w http.ResponseWriter, r *http.Request) {
	var m testimonial.Moderation
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		jsonutil.WriteInvalidArgument(w, "invalid request body")
		return
	}

	updated, err := app.testimonials.Moderate(r.Context(), mux.Vars(r)["id"], m)
	switch {
	case errors.Is(err, testimonial.ErrNotFound):
		jsonutil.WriteNotFound(w, "testimonial not found")
	case err != nil:
		app.writeUpstream(w, "failed to moderate testimonial", err)
	default:
		jsonutil.WriteJSON(w, http.StatusOK, updated)
	}
}

func (app *application) handleDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	err := app.testimonials.Delete(r.Context(), mux.Vars(r)["id"])
	switch {
	case errors.Is(err, testimonial.ErrNotFound):
		jsonutil.WriteNotFound(w, "testimonial not found")
	case err != nil:
		app.writeUpstream(w, "failed to delete testimonial", err)
	default:
		jsonutil.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func (app *application) handleListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := app.admins.List(r.Context())
	if err != nil {
		app.writeUpstream(w, "failed to list admins", err)
		return
	}
	if admins == nil {
		admins = []*adminuser.AdminUser{}
	}
	jsonutil.WriteJSON(w, http.StatusOK, map[string]any{"admins": admins})
}

func (app *application) handleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())
	if res := app.policy.Check(r.Context(), caller.Role, policy.ActionAdminCreate); !res.Allowed {
		jsonutil.WriteForbidden(w, res.Reason)
		return
	}

	var body struct {
		Name     string         `json:"name"`
		Email    string         `json:"email"`
		Password string         `json:"password"`
		Role     adminuser.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonutil.WriteInvalidArgument(w, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Email) == "" || body.Password == "" {
		jsonutil.WriteInvalidArgument(w, "name, email and password are required")
		return
	}
	if !body.Role.Valid() {
		jsonutil.WriteInvalidArgument(w, "role must be admin or super_admin")
		return
	}

	hash, err := app.passwords.GenerateHash(body.Password)
	if err != nil {
		app.writeUpstream(w, "failed to hash password", err)
		return
	}

	admin := &adminuser.AdminUser{
		Name:         body.Name,
		Email:        body.Email,
		Role:         body.Role,
		PasswordHash: hash,
	}
	if err := app.admins.Create(r.Context(), admin); err != nil {
		app.writeUpstream(w, "failed to create admin", err)
		return
	}
	jsonutil.WriteJSON(w, http.StatusCreated, admin)
}
