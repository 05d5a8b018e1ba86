package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/studiofront/designer-console/internal/models"

	"go.uber.org/zap"
)

// Login exchanges credentials for a bearer token and user identity. It
// runs against the auth host and is the one call that never attaches a
// session token. Customer accounts are rejected: the console is for
// designers and admins only.
func (c *APIClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	url := fmt.Sprintf("%s/auth/login", c.authURL)

	var resp models.LoginResponse
	err := c.doJSON(ctx, http.MethodPost, url, models.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp, false)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if resp.Data.Token == "" {
		if resp.Message != "" {
			return nil, fmt.Errorf("login failed: %s", resp.Message)
		}
		return nil, fmt.Errorf("login failed: no token in response")
	}

	if resp.Data.User.Role == models.RoleCustomer {
		return nil, fmt.Errorf("access denied: customer accounts cannot use the console")
	}

	c.logger.Info("Login succeeded",
		zap.String("user_name", resp.Data.User.Name),
		zap.String("user_role", resp.Data.User.Role),
	)

	return &resp.Data, nil
}
