package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ResendError is a non-2xx answer from the Resend API.
type ResendError struct {
	StatusCode int
	Message    string
}

func (e *ResendError) Error() string {
	return fmt.Sprintf("resend API error (status %d): %s", e.StatusCode, e.Message)
}

// Retryable reports whether the request may succeed if sent again.
func (e *ResendError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

type ResendConfig struct {
	APIKey     string
	From       string
	Recipients []string
	Timeout    time.Duration
	MaxRetries uint64
}

// ResendSender delivers contact messages through the Resend email API.
type ResendSender struct {
	apiKey        string
	from          string
	recipients    []string
	endpoint      string
	maxRetries    uint64
	client        *http.Client
	backoffGetter func() backoff.BackOff
	logger        zerolog.Logger
}

type ResendOption func(*ResendSender)

func WithResendEndpoint(endpoint string) ResendOption {
	return func(s *ResendSender) {
		s.endpoint = endpoint
	}
}

func WithResendClient(client *http.Client) ResendOption {
	return func(s *ResendSender) {
		s.client = client
	}
}

// WithBackOff replaces the exponential retry schedule, mostly for tests.
func WithBackOff(getter func() backoff.BackOff) ResendOption {
	return func(s *ResendSender) {
		s.backoffGetter = getter
	}
}

func NewResendSender(cfg ResendConfig, logger zerolog.Logger, opts ...ResendOption) (*ResendSender, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("RESEND_API_KEY is required")
	}
	if cfg.From == "" {
		return nil, errors.New("RESEND_FROM_EMAIL is required")
	}
	if len(cfg.Recipients) == 0 {
		return nil, errors.New("at least one recipient is required")
	}

	client := cleanhttp.DefaultPooledClient()
	client.Timeout = cfg.Timeout

	s := &ResendSender{
		apiKey:     cfg.APIKey,
		from:       cfg.From,
		recipients: cfg.Recipients,
		endpoint:   defaultResendEndpoint,
		maxRetries: cfg.MaxRetries,
		client:     client,
		backoffGetter: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
		logger: logger.With().Str("sender", "resend").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send emails the message to the configured recipients. Rate limiting and
// server errors are retried; any other 4xx fails immediately.
func (s *ResendSender) Send(ctx context.Context, msg ContactMessage) error {
	payload := ResendEmailRequest{
		From:    s.from,
		To:      s.recipients,
		Subject: fmt.Sprintf("[Portfolio] %s", msg.Subject),
		Html:    renderContactHTML(msg),
		Text:    renderContactText(msg),
		ReplyTo: msg.Email,
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	attempt := 0
	operation := func() error {
		attempt++
		id, err := s.post(ctx, jsonPayload)
		if err == nil {
			s.logger.Info().Str("emailId", id).Int("attempt", attempt).Msg("Successfully sent email via Resend")
			return nil
		}

		var resendErr *ResendError
		if errors.As(err, &resendErr) && !resendErr.Retryable() {
			return backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		s.logger.Warn().Err(err).Int("attempt", attempt).Msg("Resend request failed")
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(s.backoffGetter(), s.maxRetries), ctx)
	return backoff.Retry(operation, policy)
}

func (s *ResendSender) post(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := strings.TrimSpace(string(bodyBytes))
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			message = errorResp.Message
		}
		return "", &ResendError{StatusCode: resp.StatusCode, Message: message}
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	}
	return emailResponse.ID, nil
}

func renderContactHTML(msg ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>From:</strong> %s &lt;%s&gt;</p>", html.EscapeString(msg.Name), html.EscapeString(msg.Email))
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", html.EscapeString(msg.Subject))
	fmt.Fprintf(&b, "<p><strong>Locale:</strong> %s</p>", msg.Locale)
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))
	return b.String()
}

func renderContactText(msg ContactMessage) string {
	return fmt.Sprintf("From: %s <%s>\nSubject: %s\nLocale: %s\n\n%s", msg.Name, msg.Email, msg.Subject, msg.Locale, msg.Message)
}
