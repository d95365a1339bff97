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

// SheetsAppender posts lead rows to a spreadsheet webhook (an Apps Script
// style endpoint that appends one row per call).
type SheetsAppender struct {
	url    string
	client *http.Client
}

// NewSheetsAppender builds the appender for the given webhook URL.
func NewSheetsAppender(url string, timeout time.Duration) *SheetsAppender {
	return &SheetsAppender{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type sheetsPayload struct {
	Values []string `json:"values"`
}

// AppendLead appends one row with the same column order as the CSV sink.
func (a *SheetsAppender) AppendLead(ctx context.Context, rec lead.Lead) error {
	payload := sheetsPayload{Values: []string{
		rec.Timestamp.Format("2006-01-02 15:04:05"),
		rec.IP,
		rec.Name,
		rec.Phone,
		rec.Email,
		rec.AddressOrZip,
		rec.PreferredContact,
		rec.ProjectDetails,
		rec.ID,
		rec.Status,
	}}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("content-type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sheets append failed: status %d", resp.StatusCode)
	}
	return nil
}
