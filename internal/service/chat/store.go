package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/astrooutdoor/fence-assistant/backend/internal/model/chat"
)

// Store owns the in-memory session map. Critical sections are short; the
// lock is never held across an upstream model call.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*chat.Session
}

// NewStore bootstraps the in-memory transcript store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*chat.Session)}
}

// GetOrCreate resolves a session by identifier. An absent or unknown
// identifier yields a freshly generated one with an empty session; unknown
// identifiers are valid input, never an error.
func (s *Store) GetOrCreate(sessionID, userName, remoteIP string) (string, chat.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID != "" {
		if sess, ok := s.sessions[sessionID]; ok {
			return sessionID, snapshot(sess)
		}
	}

	name := strings.TrimSpace(userName)
	if name == "" {
		name = chat.DefaultUserName
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	sess := &chat.Session{
		ID:           id,
		UserName:     name,
		RemoteIP:     remoteIP,
		CreatedAt:    now,
		LastActivity: now,
		Turns:        make([]chat.Turn, 0, 16),
	}
	s.sessions[id] = sess
	return id, snapshot(sess)
}

// RecordUserTurn appends a user turn, bumps the activity timestamp and the
// turn counter. The session is created defensively if it was never resolved.
func (s *Store) RecordUserTurn(sessionID, text string, images []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.ensureLocked(sessionID)
	now := time.Now().UTC()
	sess.LastActivity = now
	sess.TurnCount++
	sess.Turns = append(sess.Turns, chat.Turn{
		Timestamp: now,
		Role:      chat.RoleUser,
		Content:   text,
		Images:    append([]string(nil), images...),
	})
}

// RecordAssistantTurn appends an assistant turn.
func (s *Store) RecordAssistantTurn(sessionID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.ensureLocked(sessionID)
	sess.Turns = append(sess.Turns, chat.Turn{
		Timestamp: time.Now().UTC(),
		Role:      chat.RoleAssistant,
		Content:   text,
	})
}

// HistoryForReplay returns every turn except the most recently appended one,
// which is the current user turn the orchestrator supplies separately.
func (s *Store) HistoryForReplay(sessionID string) []chat.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok || len(sess.Turns) == 0 {
		return nil
	}

	prior := sess.Turns[:len(sess.Turns)-1]
	copied := make([]chat.Turn, len(prior))
	copy(copied, prior)
	return copied
}

// TurnCount reports the number of user turns recorded for a session.
func (s *Store) TurnCount(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return 0
	}
	return sess.TurnCount
}

// Transcript returns a copy of the full turn list for a session.
func (s *Store) Transcript(sessionID string) []chat.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}

	copied := make([]chat.Turn, len(sess.Turns))
	copy(copied, sess.Turns)
	return copied
}

// Len reports how many sessions are currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) ensureLocked(sessionID string) *chat.Session {
	sess, ok := s.sessions[sessionID]
	if !ok {
		now := time.Now().UTC()
		sess = &chat.Session{
			ID:           sessionID,
			UserName:     chat.DefaultUserName,
			CreatedAt:    now,
			LastActivity: now,
			Turns:        make([]chat.Turn, 0, 16),
		}
		s.sessions[sessionID] = sess
	}
	return sess
}

func snapshot(sess *chat.Session) chat.Session {
	copied := *sess
	copied.Turns = append([]chat.Turn(nil), sess.Turns...)
	return copied
}
