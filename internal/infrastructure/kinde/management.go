package kinde

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/horsesharing/backend/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/clientcredentials"
)

// ManagementClient pushes local user changes back to Kinde through its
// management API using a client-credentials token. Every call is
// best-effort: callers fire it in the background and discard the result.
type ManagementClient struct {
	domain      string
	tokenSource *clientcredentials.Config
	httpClient  *http.Client
	log         *logrus.Logger
}

// NewManagementClient returns nil when the machine-to-machine client is
// not configured; callers treat a nil client as "sync disabled".
func NewManagementClient(cfg *config.KindeConfig, log *logrus.Logger) *ManagementClient {
	if !cfg.SyncConfigured() {
		return nil
	}
	cc := &clientcredentials.Config{
		ClientID:     cfg.M2MClientID,
		ClientSecret: cfg.M2MClientSecret,
		TokenURL:     fmt.Sprintf("%s/oauth2/token", cfg.Domain),
	}
	if cfg.M2MAudience != "" {
		cc.EndpointParams = map[string][]string{"audience": {cfg.M2MAudience}}
	}
	if cfg.M2MScope != "" {
		cc.Scopes = []string{cfg.M2MScope}
	}
	return &ManagementClient{
		domain:      cfg.Domain,
		tokenSource: cc,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		log:         log,
	}
}

// UserUpdate carries the fields the sync path may push to the provider.
type UserUpdate struct {
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// UpdateUser patches the provider-side user record. Any failure is
// returned for logging but must never fail the caller's request.
func (m *ManagementClient) UpdateUser(ctx context.Context, kindeID string, update UserUpdate) error {
	token, err := m.tokenSource.Token(ctx)
	if err != nil {
		return fmt.Errorf("management token exchange failed: %w", err)
	}

	body, err := json.Marshal(update)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/v1/user?id=%s", m.domain, kindeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("management user update failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("management user update returned %d", resp.StatusCode)
	}
	return nil
}
