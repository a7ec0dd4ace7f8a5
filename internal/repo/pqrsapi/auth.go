package pqrsapi

import (
	"context"

	"github.com/pqrsdesk/omnidesk/internal/models"
)

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginData, error) {
	var resp models.LoginResponse
	if err := c.Post(ctx, "/api/auth/login/", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.Post(ctx, "/api/auth/logout/", nil, nil)
}

func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.Get(ctx, "/api/auth/profile/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
