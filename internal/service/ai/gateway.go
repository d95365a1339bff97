package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/astrooutdoor/fence-assistant/backend/internal/config"
)

const anthropicVersion = "2023-06-01"

// ErrUpstreamTimeout marks a model call that exceeded the configured timeout.
var ErrUpstreamTimeout = errors.New("upstream model call timed out")

// UpstreamError covers every non-timeout failure: transport errors, non-2xx
// statuses and malformed response bodies.
type UpstreamError struct {
	Status int
	Cause  error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream model call failed: status %d", e.Status)
	}
	return fmt.Sprintf("upstream model call failed: %v", e.Cause)
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

// Gateway performs the synchronous call to the model provider. At most one
// upstream call per invocation; no retries.
type Gateway struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewGateway builds a gateway from the AI configuration.
func NewGateway(cfg config.AIConfig, logger *zap.Logger) *Gateway {
	return &Gateway{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type responseEnvelope struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text,omitempty"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the request and extracts the reply text. The returned text
// may be empty on a success envelope with no usable content; substituting a
// fallback for that case is the caller's job.
func (g *Gateway) Complete(ctx context.Context, req *ModelRequest) (string, error) {
	start := time.Now()

	payload, err := json.Marshal(req)
	if err != nil {
		return "", &UpstreamError{Cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", &UpstreamError{Cause: err}
	}
	httpReq.Header.Set("x-api-key", g.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	httpReq.Header.Set("content-type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return "", ErrUpstreamTimeout
		}
		return "", &UpstreamError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return "", ErrUpstreamTimeout
		}
		return "", &UpstreamError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{Status: resp.StatusCode}
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", &UpstreamError{Cause: err}
	}
	if envelope.Error != nil {
		return "", &UpstreamError{Cause: fmt.Errorf("%s: %s", envelope.Error.Type, envelope.Error.Message)}
	}

	var sb strings.Builder
	for _, block := range envelope.Content {
		if block.Type == "" || block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	g.logger.Info("model call completed",
		zap.String("model", req.Model),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		zap.Int("reply_len", sb.Len()))

	return strings.TrimSpace(sb.String()), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
