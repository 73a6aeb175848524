package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/veridian-studio/backoffice/internal/inquiry"
	"github.com/veridian-studio/backoffice/internal/testimonial"
	"github.com/veridian-studio/backoffice/pkg/jsonutil"
)

func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonutil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePublicServices serves active offerings. Store failures degrade
// to the fallback set inside the catalog, so this always returns 200.
func (app *application) handlePublicServices(w http.ResponseWriter, r *http.Request) {
	jsonutil.WriteJSON(w, http.StatusOK, map[string]any{
		"services": app.catalog.PublicList(r.Context()),
	})
}

func (app *application) handlePublicTestimonials(w http.ResponseWriter, r *http.Request) {
	featuredOnly := r.URL.Query().Get("featured") == "true"
	jsonutil.WriteJSON(w, http.StatusOK, map[string]any{
		"testimonials": app.testimonials.PublicList(r.Context(), featuredOnly),
	})
}

func (app *application) handleSubmitTestimonial(w http.ResponseWriter, r *http.Request) {
	var in testimonial.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonutil.WriteInvalidArgument(w, "invalid request body")
		return
	}

	t, err := app.testimonials.Submit(r.Context(), in)
	if errors.Is(err, testimonial.ErrMissingFields) || errors.Is(err, testimonial.ErrInvalidRating) {
		jsonutil.WriteInvalidArgument(w, err.Error())
		return
	}
	if err != nil {
		app.writeUpstream(w, "failed to submit testimonial", err)
		return
	}
	jsonutil.WriteJSON(w, http.StatusCreated, t)
}

func (app *application) handleTeam(w http.ResponseWriter, r *http.Request) {
	team, err := app.contentRepo.ListTeam(r.Context())
	if err != nil {
		app.writeUpstream(w, "failed to list team members", err)
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, map[string]any{"team": team})
}

func (app *application) handleBlogList(w http.ResponseWriter, r *http.Request) {
	posts, err := app.contentRepo.ListPosts(r.Context())
	if err != nil {
		app.writeUpstream(w, "failed to list blog posts", err)
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (app *application) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	post, err := app.contentRepo.GetPostBySlug(r.Context(), slug)
	if err != nil {
		app.writeUpstream(w, "failed to get blog post", err)
		return
	}
	if post == nil {
		jsonutil.WriteNotFound(w, "post not found")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, post)
}

func (app *application) handleSubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var in inquiry.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		jsonutil.WriteInvalidArgument(w, "invalid request body")
		return
	}

	created, err := app.inquiries.Create(r.Context(), in)
	if errors.Is(err, inquiry.ErrMissingFields) {
		jsonutil.WriteInvalidArgument(w, err.Error())
		return
	}
	if err != nil {
		app.writeUpstream(w, "failed to create inquiry", err)
		return
	}
	jsonutil.WriteJSON(w, http.StatusCreated, created)
}
