package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	config "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Config"
	jbamodels "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Models"
	api_models "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Models/api"
)

// JoanClient handles communication with the Joan portal API
type JoanClient struct {
	clientID     string
	clientSecret string
	tokenURL     string
	devicesURL   string
	httpClient   *http.Client
}

// NewJoanClient creates a new Joan portal client
func NewJoanClient(cfg *config.JoanConfig) *JoanClient {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &JoanClient{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		tokenURL:     cfg.TokenURL,
		devicesURL:   cfg.DevicesURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Token exchanges the client credentials for a bearer token
func (c *JoanClient) Token(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "jba-battery-alert")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var response api_models.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if response.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned an empty access token")
	}

	return response.AccessToken, nil
}

// ListDevices fetches all Joan devices and their battery levels
func (c *JoanClient) ListDevices(ctx context.Context, token string) ([]jbamodels.Device, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.devicesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create devices request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", "jba-battery-alert")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch devices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("devices endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var response api_models.DeviceListResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode devices response: %w", err)
	}

	return response.Results, nil
}
