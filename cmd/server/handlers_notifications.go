package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/veridian-studio/backoffice/internal/adminuser"
	"github.com/veridian-studio/backoffice/internal/auth"
	"github.com/veridian-studio/backoffice/internal/notification"
	"github.com/veridian-studio/backoffice/pkg/jsonutil"
)

func callerRecipient(c auth.Caller) notification.Recipient {
	return notification.Recipient{AdminID: c.AdminID, Role: c.Role}
}

func (app *application) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	unreadOnly := q.Get("unreadOnly") == "true"

	result, err := app.notifications.ListFor(r.Context(), callerRecipient(caller), unreadOnly, limit, offset)
	if err != nil {
		app.writeUpstream(w, "failed to list notifications", err)
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, result)
}

type createNotificationRequest struct {
	Type          notification.Type `json:"type"`
	Title         string            `json:"title"`
	Message       string            `json:"message"`
	RecipientID   string            `json:"recipientId"`
	RecipientRole adminuser.Role    `json:"recipientRole"`
	Metadata      json.RawMessage   `json:"metadata"`
	SendEmail     bool              `json:"sendEmail"`
}

func (app *application) createNotification(w http.ResponseWriter, r *http.Request) {
	var req createNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonutil.WriteInvalidArgument(w, "invalid request body")
		return
	}

	n, err := app.notifications.Create(r.Context(), notification.CreateInput{
		Type:    req.Type,
		Title:   req.Title,
		Message: req.Message,
		Target: notification.Target{
			UserID: req.RecipientID,
			Role:   req.RecipientRole,
		},
		Metadata:  req.Metadata,
		SendEmail: req.SendEmail,
	})
	switch {
	case errors.Is(err, notification.ErrInvalidType),
		errors.Is(err, notification.ErrInvalidTarget),
		errors.Is(err, notification.ErrMissingFields):
		jsonutil.WriteInvalidArgument(w, err.Error())
	case err != nil:
		app.writeUpstream(w, "failed to create notification", err)
	default:
		jsonutil.WriteJSON(w, http.StatusCreated, n)
	}
}

func (app *application) handleCreateNotification(w http.ResponseWriter, r *http.Request) {
	app.createNotification(w, r)
}

// handleInternalCreateNotification serves trusted server-to-server
// callers authenticated by service key instead of a session.
func (app *application) handleInternalCreateNotification(w http.ResponseWriter, r *http.Request) {
	app.createNotification(w, r)
}

func (app *application) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())
	n, err := app.notifications.MarkRead(r.Context(), mux.Vars(r)["id"], callerRecipient(caller))
	switch {
	case errors.Is(err, notification.ErrNotFound):
		jsonutil.WriteNotFound(w, "notification not found")
	case err != nil:
		app.writeUpstream(w, "failed to mark notification read", err)
	default:
		jsonutil.WriteJSON(w, http.StatusOK, n)
	}
}

func (app *application) handleMarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())
	count, err := app.notifications.MarkAllRead(r.Context(), callerRecipient(caller))
	if err != nil {
		app.writeUpstream(w, "failed to mark notifications read", err)
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (app *application) handleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())
	err := app.notifications.Delete(r.Context(), mux.Vars(r)["id"], callerRecipient(caller))
	switch {
	case errors.Is(err, notification.ErrNotFound):
		jsonutil.WriteNotFound(w, "notification not found")
	case err != nil:
		app.writeUpstream(w, "failed to delete notification", err)
	default:
		jsonutil.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

const (
	streamWriteWait   = 10 * time.Second
	streamPingPeriod  = 30 * time.Second
	streamReadTimeout = 90 * time.Second
)

// handleNotificationStream upgrades to a websocket and pushes unread
// counts for the bell as they change.
func (app *application) handleNotificationStream(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CallerFrom(r.Context())

	conn, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	counts, cancel := app.hub.Subscribe(caller.AdminID)
	defer cancel()

	// Reader only detects disconnects; clients send nothing meaningful.
	go func() {
		conn.SetReadDeadline(time.Now().Add(streamReadTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(streamReadTimeout))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	if initial, err := app.notifications.UnreadCount(r.Context(), callerRecipient(caller)); err == nil {
		app.writeCount(conn, initial)
	}

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case count, ok := <-counts:
			if !ok {
				return
			}
			if err := app.writeCount(conn, count); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (app *application) writeCount(conn *websocket.Conn, count int) error {
	conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	return conn.WriteJSON(map[string]int{"unreadCount": count})
}
