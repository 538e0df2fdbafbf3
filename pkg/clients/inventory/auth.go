package inventory

import (
	"context"

	"github.com/stockpilot/stockpilot/internal/domain/models"
)

// AuthAPI exposes the authentication endpoints plus the local-only logout.
type AuthAPI struct {
	c       *Client
	session Session
}

// Login authenticates against the server and, on success, persists the
// returned token and role as the active session.
func (a *AuthAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	out := new(models.LoginResponse)
	resp, err := a.c.request(ctx).SetBody(req).SetResult(out).Post("/auth/login")
	if err := checkResponse(resp, err, "login"); err != nil {
		return nil, err
	}

	if out.Token != "" {
		if err := a.session.SetSession(out.Token, out.Role); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Register creates a new account. It does not log the account in.
func (a *AuthAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	out := new(models.RegisterResponse)
	resp, err := a.c.request(ctx).SetBody(req).SetResult(out).Post("/auth/register")
	if err := checkResponse(resp, err, "register"); err != nil {
		return nil, err
	}
	return out, nil
}

// Logout clears the persisted session. It never calls the server.
func (a *AuthAPI) Logout() error {
	return a.session.Clear()
}
