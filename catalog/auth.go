package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Session is what the remote auth service returns for a password grant.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// ErrInvalidCredentials marks a rejected sign-in attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SignIn exchanges operator credentials for a backend-issued session. The
// backend owns authentication entirely; this is a pass-through.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	payload := map[string]string{"email": email, "password": password}
	body, status, err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", payload, nil)
	if err != nil {
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode auth response")
	}
	if session.AccessToken == "" {
		return nil, ErrInvalidCredentials
	}
	return &session, nil
}
