package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eventflow-dev/eventflow/internal/client/session"
)

// Register creates a new account and returns the created profile.
func (c *Client) Register(ctx context.Context, user NewUser) (*session.User, error) {
	var created session.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	var resp TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// GetUser resolves a full profile by id. The session store uses it to turn
// a token subject into a user record.
func (c *Client) GetUser(ctx context.Context, id int) (*session.User, error) {
	var user session.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
