package lead

import (
	"encoding/csv"
	"os"
	"sync"

	"github.com/astrooutdoor/fence-assistant/backend/internal/model/lead"
)

var csvHeader = []string{
	"timestamp", "ip", "name", "phone", "email", "address_or_zip",
	"preferred_contact", "project_details", "session_id", "status",
}

// CSVWriter is the append-only tabular sink for leads.
type CSVWriter struct {
	mu   sync.Mutex
	path string
}

// NewCSVWriter ensures the leads file exists with its header row.
func NewCSVWriter(path string) (*CSVWriter, error) {
	w := &CSVWriter{path: path}
	if err := w.ensureHeader(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *CSVWriter) ensureHeader() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := os.Stat(w.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// Append writes one lead row.
func (w *CSVWriter) Append(rec lead.Lead) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{
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
	}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
