package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github-activity/config"
	"github-activity/pkg/log"
)

const receiverPath = "/webhook/receiver"

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// announceWebhookURL logs the payload URL to configure on the GitHub repository.
func announceWebhookURL(ctx context.Context, l log.Logger, cfg config.WebhookConfig) {
	base := cfg.PublicURL
	if base == "" && cfg.NgrokAPI != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPI, 10, 3*time.Second)
		if err != nil {
			l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		l.Infof(ctx, "Auto-detected ngrok URL: %s", ngrokURL)
		base = ngrokURL
	}
	if base == "" {
		return
	}
	l.Infof(ctx, "GitHub webhook payload URL: %s", webhookURL(base))
}

func webhookURL(base string) string {
	return strings.TrimSuffix(base, "/") + receiverPath
}

// detectNgrokURL queries the ngrok local API and returns the first HTTPS tunnel URL.
// It retries to cover ngrok starting after this process.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string, attempts int, interval time.Duration) (string, error) {
	url := strings.TrimSuffix(ngrokAPIBase, "/") + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		publicURL, err := fetchTunnelURL(ctx, client, url)
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(interval):
			}
		}
	}

	return "", fmt.Errorf("ngrok has no usable tunnel after %d attempts: %w", attempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	// Prefer HTTPS tunnels
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}

	// Fallback: any tunnel
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}

	return "", fmt.Errorf("no active tunnels")
}
