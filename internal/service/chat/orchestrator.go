package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/astrooutdoor/fence-assistant/backend/internal/service/ai"
)

// CompletionGateway is the upstream model collaborator.
type CompletionGateway interface {
	Complete(ctx context.Context, req *ai.ModelRequest) (string, error)
}

// Fixed fallback texts. Every path out of Respond produces one of these or
// the (possibly augmented) model reply; the visitor is never left without
// an answer.
const (
	emptyPromptReply     = "Quick question — what are you trying to build or fix? (Approximate feet + height helps a lot.)"
	emptyCompletionReply = "Got it. What's the approximate length (feet) and desired height (6ft/7ft/8ft)? Any gates needed?"
)

// Input is one inbound chat request after boundary validation.
type Input struct {
	SessionID string
	Prompt    string
	UserName  string
	RemoteIP  string
	Images    []string
}

// Result is what every chat request gets back.
type Result struct {
	Response  string
	SessionID string
	TurnCount int
}

// Orchestrator drives a single chat request: resolve session, record the
// user turn, call upstream, absorb failures, record the assistant turn.
type Orchestrator struct {
	store        *Store
	gateway      CompletionGateway
	composer     ai.Composer
	augmenter    Augmenter
	systemPrompt string
	phone        string
	email        string
	logger       *zap.Logger
}

// NewOrchestrator wires the chat pipeline.
func NewOrchestrator(store *Store, gateway CompletionGateway, composer ai.Composer, augmenter Augmenter, systemPrompt string, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		store:        store,
		gateway:      gateway,
		composer:     composer,
		augmenter:    augmenter,
		systemPrompt: systemPrompt,
		phone:        augmenter.Phone,
		email:        augmenter.Email,
		logger:       logger,
	}
}

// Respond handles one chat turn. It never returns an error: all upstream
// failures degrade to fixed human-readable replies pointing at the phone
// and email fallback channels.
func (o *Orchestrator) Respond(ctx context.Context, in Input) Result {
	sessionID, _ := o.store.GetOrCreate(in.SessionID, in.UserName, in.RemoteIP)

	// Recorded before any upstream work so the turn survives a failed call.
	o.store.RecordUserTurn(sessionID, in.Prompt, in.Images)

	prompt := strings.TrimSpace(in.Prompt)
	if prompt == "" {
		return o.reply(sessionID, emptyPromptReply)
	}

	history := o.store.HistoryForReplay(sessionID)
	req := o.composer.Build(o.systemPrompt, history, prompt, in.Images)

	text, err := o.gateway.Complete(ctx, req)
	switch {
	case errors.Is(err, ai.ErrUpstreamTimeout):
		o.logger.Warn("model call timed out", zap.String("session_id", sessionID))
		return o.reply(sessionID, fmt.Sprintf("That's taking longer than normal. Try again — or call/text us directly at %s for immediate help!", o.phone))
	case err != nil:
		o.logger.Error("model call failed", zap.String("session_id", sessionID), zap.Error(err))
		return o.reply(sessionID, fmt.Sprintf("Something hiccupped on our side. Call or text us at %s or email %s for immediate assistance.", o.phone, o.email))
	}

	if strings.TrimSpace(text) == "" {
		return o.reply(sessionID, emptyCompletionReply)
	}

	return o.reply(sessionID, o.augmenter.Augment(text, prompt))
}

func (o *Orchestrator) reply(sessionID, text string) Result {
	o.store.RecordAssistantTurn(sessionID, text)
	return Result{
		Response:  text,
		SessionID: sessionID,
		TurnCount: o.store.TurnCount(sessionID),
	}
}
