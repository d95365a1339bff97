package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/astrooutdoor/fence-assistant/backend/internal/model/lead"
)

func notifyTestLead() lead.Lead {
	return lead.Lead{
		ID:               "abc12345",
		Timestamp:        time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC),
		Name:             "Pat Doe",
		Phone:            "7135551234",
		AddressOrZip:     "77339",
		PreferredContact: "text",
		ProjectDetails:   "120 feet of cedar",
		Status:           "new",
	}
}

func TestBrevoNotifyLead(t *testing.T) {
	var gotKey string
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("api-key")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	mailer := NewBrevoMailer("brevo-key", srv.URL, "Astro Outdoor Designs", "forms@example.com", "admin@example.com", time.Second)
	if err := mailer.NotifyLead(context.Background(), notifyTestLead()); err != nil {
		t.Fatalf("NotifyLead err: %v", err)
	}

	if gotKey != "brevo-key" {
		t.Fatalf("api-key header = %q", gotKey)
	}

	subject, _ := gotPayload["subject"].(string)
	if !strings.Contains(subject, "Pat Doe") {
		t.Fatalf("subject = %q", subject)
	}
	text, _ := gotPayload["textContent"].(string)
	if !strings.Contains(text, "Lead ID: abc12345") {
		t.Fatalf("textContent missing lead id: %q", text)
	}
	if !strings.Contains(text, "Email: N/A") {
		t.Fatalf("missing email must render as N/A: %q", text)
	}
}

func TestBrevoNotifyLeadFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	mailer := NewBrevoMailer("bad-key", srv.URL, "b", "f@example.com", "t@example.com", time.Second)
	if err := mailer.NotifyLead(context.Background(), notifyTestLead()); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}
