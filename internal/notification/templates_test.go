package notification

import (
	"strings"
	"testing"
)

func TestRenderReplyEscapesMarkup(t *testing.T) {
	r := NewRenderer("http://localhost:3000")

	html, err := r.RenderReply("Dana", "dana@veridian.test", "Client", "<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("message markup must be escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatal("escaped message missing from body")
	}
	if !strings.Contains(html, "Hi Client,") {
		t.Fatal("recipient greeting missing")
	}
}

func TestRenderNotificationIncludesActionLink(t *testing.T) {
	r := NewRenderer("https://admin.veridian.test")

	html, err := r.RenderNotification("New contact inquiry", "Someone wrote in.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "https://admin.veridian.test/admin/dashboard") {
		t.Fatal("dashboard link missing")
	}
	if !strings.Contains(html, "New contact inquiry") {
		t.Fatal("title missing")
	}
}
