// Package notify delivers reservation payloads to the external automation
// webhook. Delivery is always best-effort from the point of view of the
// guest: the consumer calling into this package runs outside the request
// path, and a payload that cannot be delivered after all retries is handed
// back to the caller to be persisted for manual replay.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Webhook posts JSON payloads to a fixed endpoint with retries and
// increasing backoff between attempts.
type Webhook struct {
	Endpoint    string
	Client      *http.Client
	MaxAttempts int
	Backoff     time.Duration // delay before the second attempt; doubles each retry
	Log         *zap.Logger
}

// NewWebhook returns a Webhook with the default retry policy: five
// attempts starting at a one-second backoff.
func NewWebhook(endpoint string, log *zap.Logger) *Webhook {
	return &Webhook{
		Endpoint:    endpoint,
		Client:      &http.Client{Timeout: 10 * time.Second},
		MaxAttempts: 5,
		Backoff:     time.Second,
		Log:         log,
	}
}

// Notify posts the payload, retrying on any transport error or non-2xx
// response. It returns nil as soon as one attempt succeeds and the last
// error once every attempt has been spent or the context is cancelled.
func (w *Webhook) Notify(ctx context.Context, payload []byte) error {
	if w.Endpoint == "" {
		return fmt.Errorf("webhook endpoint not configured")
	}
	backoff := w.Backoff
	var lastErr error
	for attempt := 1; attempt <= w.MaxAttempts; attempt++ {
		lastErr = w.post(ctx, payload)
		if lastErr == nil {
			return nil
		}
		w.Log.Warn("webhook delivery failed",
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
		if attempt == w.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("webhook delivery exhausted after %d attempts: %w", w.MaxAttempts, lastErr)
}

func (w *Webhook) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
