package kinde

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/horsesharing/backend/internal/config"
	"github.com/sirupsen/logrus"
)

// Claims are the identity attributes Kinde asserts for a bearer token.
type Claims struct {
	ID                string `json:"id"`
	GivenName         string `json:"given_name"`
	FamilyName        string `json:"family_name"`
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
	Phone             string `json:"phone_number"`
}

// FullName resolves a display name from the claims with documented
// precedence: given+family, then name, then username, then a placeholder
// derived from the provider id.
func (c *Claims) FullName() string {
	if c.GivenName != "" || c.FamilyName != "" {
		if c.GivenName == "" {
			return c.FamilyName
		}
		if c.FamilyName == "" {
			return c.GivenName
		}
		return c.GivenName + " " + c.FamilyName
	}
	if c.Name != "" {
		return c.Name
	}
	if c.PreferredUsername != "" {
		return c.PreferredUsername
	}
	return "user-" + c.ID
}

// Client talks to the Kinde user-facing API. Verification happens by
// forwarding the bearer token to the user_profile endpoint; an invalid
// token simply comes back non-200.
type Client struct {
	domain     string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(cfg *config.KindeConfig, log *logrus.Logger) *Client {
	return &Client{
		domain: cfg.Domain,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		log: log,
	}
}

// UserProfile verifies the token against Kinde and returns the claims.
func (c *Client) UserProfile(ctx context.Context, token string) (*Claims, error) {
	url := fmt.Sprintf("%s/oauth2/user_profile", c.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kinde user_profile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("kinde user_profile returned %d", resp.StatusCode)
	}

	var claims Claims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("decode kinde user_profile response: %w", err)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("kinde user_profile response missing id")
	}
	return &claims, nil
}
