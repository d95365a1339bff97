package lead

import (
	"fmt"
	"strings"
	"time"
)

// Submission is a validated lead form payload.
type Submission struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	AddressOrZip     string `json:"address_or_zip"`
	PreferredContact string `json:"preferred_contact"`
	ProjectDetails   string `json:"project_details"`
}

// Validate enforces the declared field constraints and fills defaults.
func (s *Submission) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Email = strings.TrimSpace(s.Email)
	s.AddressOrZip = strings.TrimSpace(s.AddressOrZip)
	s.ProjectDetails = strings.TrimSpace(s.ProjectDetails)

	if len(s.Name) < 2 || len(s.Name) > 100 {
		return fmt.Errorf("name must be 2-100 characters")
	}
	if len(s.Phone) > 20 {
		return fmt.Errorf("phone must be at most 20 characters")
	}
	if len(s.AddressOrZip) > 100 {
		return fmt.Errorf("address_or_zip must be at most 100 characters")
	}
	if len(s.ProjectDetails) < 10 || len(s.ProjectDetails) > 2000 {
		return fmt.Errorf("project_details must be 10-2000 characters")
	}

	switch s.PreferredContact {
	case "":
		s.PreferredContact = "text"
	case "call", "text", "email":
	default:
		return fmt.Errorf("preferred_contact must be call, text or email")
	}
	return nil
}

// Lead is a recorded submission.
type Lead struct {
	ID               string    `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	IP               string    `json:"ip,omitempty"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	AddressOrZip     string    `json:"area"`
	PreferredContact string    `json:"preferred_contact"`
	ProjectDetails   string    `json:"details"`
	Status           string    `json:"status"`
}

// CallbackRequest is a live quote consultation request.
type CallbackRequest struct {
	SessionID     string    `json:"session_id"`
	UserName      string    `json:"user_name"`
	Phone         string    `json:"phone"`
	ServiceNeeded string    `json:"service_needed"`
	IP            string    `json:"ip,omitempty"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
}

// ValidateCallback checks a live quote request payload.
func ValidateCallback(userName, phone, serviceNeeded string) error {
	if l := len(strings.TrimSpace(userName)); l < 2 || l > 50 {
		return fmt.Errorf("user_name must be 2-50 characters")
	}
	if l := len(strings.TrimSpace(phone)); l < 10 || l > 20 {
		return fmt.Errorf("phone must be 10-20 characters")
	}
	if l := len(strings.TrimSpace(serviceNeeded)); l < 1 || l > 200 {
		return fmt.Errorf("service_needed must be 1-200 characters")
	}
	return nil
}
