package lead

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/astrooutdoor/fence-assistant/backend/internal/model/lead"
)

// recentLimit caps how many leads the admin dashboard keeps in memory.
const recentLimit = 50

// Recorder is the durable append-only sink (the CSV file). A failure here
// fails the submission; the notification sinks below are best effort.
type Recorder interface {
	Append(rec lead.Lead) error
}

// Mailer sends the lead notification email.
type Mailer interface {
	NotifyLead(ctx context.Context, rec lead.Lead) error
}

// Appender mirrors the lead into the remote spreadsheet.
type Appender interface {
	AppendLead(ctx context.Context, rec lead.Lead) error
}

// Broadcaster pushes events to connected admin dashboards.
type Broadcaster interface {
	Broadcast(eventType string, data any)
}

// Service records lead submissions and live quote callback requests.
type Service struct {
	mu        sync.Mutex
	recent    []lead.Lead
	callbacks []lead.CallbackRequest

	recorder    Recorder
	mailer      Mailer
	appender    Appender
	broadcaster Broadcaster
	logger      *zap.Logger
}

// NewService wires the lead pipeline. mailer, appender and broadcaster may
// be nil when the corresponding sink is not configured.
func NewService(recorder Recorder, mailer Mailer, appender Appender, broadcaster Broadcaster, logger *zap.Logger) *Service {
	return &Service{
		recorder:    recorder,
		mailer:      mailer,
		appender:    appender,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Submit records a validated submission. The CSV write is the one sink that
// can fail the call; email, spreadsheet and feed delivery are best effort.
func (s *Service) Submit(ctx context.Context, sub lead.Submission, remoteIP string) (lead.Lead, error) {
	rec := lead.Lead{
		ID:               uuid.NewString()[:8],
		Timestamp:        time.Now(),
		IP:               remoteIP,
		Name:             sub.Name,
		Phone:            sub.Phone,
		Email:            sub.Email,
		AddressOrZip:     sub.AddressOrZip,
		PreferredContact: sub.PreferredContact,
		ProjectDetails:   sub.ProjectDetails,
		Status:           "new",
	}

	if err := s.recorder.Append(rec); err != nil {
		return lead.Lead{}, err
	}

	s.mu.Lock()
	s.recent = append(s.recent, rec)
	if len(s.recent) > recentLimit {
		s.recent = s.recent[len(s.recent)-recentLimit:]
	}
	s.mu.Unlock()

	s.logger.Info("new lead recorded",
		zap.String("lead_id", rec.ID),
		zap.String("name", rec.Name),
		zap.String("preferred_contact", rec.PreferredContact))

	if s.mailer != nil {
		if err := s.mailer.NotifyLead(ctx, rec); err != nil {
			s.logger.Error("lead email notification failed", zap.String("lead_id", rec.ID), zap.Error(err))
		}
	}
	if s.appender != nil {
		if err := s.appender.AppendLead(ctx, rec); err != nil {
			s.logger.Error("lead spreadsheet append failed", zap.String("lead_id", rec.ID), zap.Error(err))
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.Broadcast("lead", rec)
	}

	return rec, nil
}

// RequestCallback records a high-priority live quote callback request.
func (s *Service) RequestCallback(sessionID, userName, phone, serviceNeeded, remoteIP string) lead.CallbackRequest {
	req := lead.CallbackRequest{
		SessionID:     sessionID,
		UserName:      userName,
		Phone:         phone,
		ServiceNeeded: serviceNeeded,
		IP:            remoteIP,
		Status:        "callback_requested",
		Priority:      "high",
		CreatedAt:     time.Now(),
	}

	s.mu.Lock()
	s.callbacks = append(s.callbacks, req)
	s.mu.Unlock()

	s.logger.Info("live quote callback requested",
		zap.String("session_id", sessionID),
		zap.String("service", serviceNeeded))

	if s.broadcaster != nil {
		s.broadcaster.Broadcast("live_quote", req)
	}
	return req
}

// Recent returns the in-memory leads, newest last.
func (s *Service) Recent() []lead.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]lead.Lead(nil), s.recent...)
}

// Callbacks returns the recorded live quote requests.
func (s *Service) Callbacks() []lead.CallbackRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]lead.CallbackRequest(nil), s.callbacks...)
}

// TotalToday counts leads recorded since local midnight.
func (s *Service) TotalToday() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	count := 0
	for _, rec := range s.recent {
		if !rec.Timestamp.Before(midnight) {
			count++
		}
	}
	return count
}

// Total reports how many leads are held in memory.
func (s *Service) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recent)
}
