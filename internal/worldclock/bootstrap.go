// Package worldclock fetches the initial Mythos clock over REST so the UI
// has a clock before the first streamed time event arrives.
package worldclock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mythosclient/internal/game/mythostime"
)

const fetchTimeout = 10 * time.Second

// Fetch performs the one-shot bootstrap GET. The caller cancels ctx on
// session teardown, which both aborts an in-flight request and lets the
// caller discard a late result. Failures are for the caller to log and
// shrug off; the client starts with no clock rather than not starting.
func Fetch(ctx context.Context, baseURL, token string) (*mythostime.State, error) {
	url := strings.TrimSuffix(baseURL, "/") + "/api/world/clock"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build clock request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch world clock: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch world clock: unexpected status %s", resp.Status)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode world clock response: %w", err)
	}
	if _, ok := payload["mythos_clock"].(string); !ok {
		return nil, fmt.Errorf("world clock response missing mythos_clock")
	}

	clock := mythostime.Build(payload)
	return &clock, nil
}
