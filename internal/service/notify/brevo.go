package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/astrooutdoor/fence-assistant/backend/internal/model/lead"
)

// BrevoMailer sends transactional lead notifications through the Brevo API.
type BrevoMailer struct {
	apiKey     string
	url        string
	senderName string
	fromEmail  string
	notifyTo   string
	client     *http.Client
}

// NewBrevoMailer builds the mailer. The caller decides whether to use it at
// all (no API key means no mailer).
func NewBrevoMailer(apiKey, url, senderName, fromEmail, notifyTo string, timeout time.Duration) *BrevoMailer {
	return &BrevoMailer{
		apiKey:     apiKey,
		url:        url,
		senderName: senderName,
		fromEmail:  fromEmail,
		notifyTo:   notifyTo,
		client:     &http.Client{Timeout: timeout},
	}
}

type brevoPayload struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	TextContent string         `json:"textContent"`
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// NotifyLead emails the lead details to the configured inbox.
func (m *BrevoMailer) NotifyLead(ctx context.Context, rec lead.Lead) error {
	email := rec.Email
	if email == "" {
		email = "N/A"
	}

	payload := brevoPayload{
		Sender:  brevoAddress{Name: m.senderName, Email: m.fromEmail},
		To:      []brevoAddress{{Email: m.notifyTo}},
		Subject: fmt.Sprintf("🔥 New Fence Lead - %s", rec.Name),
		TextContent: fmt.Sprintf(
			"New Lead Received:\n\nName: %s\nPhone: %s\nEmail: %s\nArea: %s\nPreferred Contact: %s\n\nProject Details:\n%s\n\nTimestamp: %s\nLead ID: %s\n",
			rec.Name, rec.Phone, email, rec.AddressOrZip, rec.PreferredContact,
			rec.ProjectDetails, rec.Timestamp.Format("2006-01-02 15:04:05"), rec.ID,
		),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", m.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("brevo send failed: status %d", resp.StatusCode)
	}
	return nil
}
