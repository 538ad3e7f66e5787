package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Notifier speaks system announcements to the player. Implementations must
// be safe for concurrent use and must never surface failures to callers.
type Notifier interface {
	Announce(ctx context.Context, text string)
}

// NopNotifier discards announcements. Used when no speech endpoint is
// configured and in tests.
type NopNotifier struct{}

func (NopNotifier) Announce(context.Context, string) {}

// VoiceNotifier posts announcement text to an external speech-synthesis
// endpoint. Synthesis is best effort: failures are logged as warnings and
// dropped so gameplay requests never block or fail on the upstream.
type VoiceNotifier struct {
	endpoint string
	client   *http.Client
}

// NewVoiceNotifier creates a notifier for the given speech endpoint.
func NewVoiceNotifier(endpoint string, timeout time.Duration) *VoiceNotifier {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &VoiceNotifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Announce posts the text to the speech endpoint.
func (n *VoiceNotifier) Announce(ctx context.Context, text string) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		slog.Warn("voice announcement skipped", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		slog.Warn("voice announcement skipped", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		slog.Warn("voice announcement failed", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		slog.Warn("voice announcement failed", "error", fmt.Errorf("speech endpoint returned %d", resp.StatusCode))
	}
}

// announce fires each progression event at the notifier without blocking
// the request. The request context is detached so an already-sent response
// does not cancel an in-flight announcement.
func announce(ctx context.Context, notifier Notifier, events []ProgressionEvent) {
	if notifier == nil || len(events) == 0 {
		return
	}
	detached := context.WithoutCancel(ctx)
	for _, ev := range events {
		go notifier.Announce(detached, ev.Message)
	}
}
