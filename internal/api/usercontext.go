package api

import (
	"context"
	"net/http"

	"task-manager-cli/internal/models"
)

func (c *Client) GetContext(ctx context.Context) (*models.UserContext, error) {
	var out models.UserContext
	if err := c.do(ctx, http.MethodGet, "/context", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateContext sets the user's goals and/or notes. Nil fields are left
// unchanged server-side.
func (c *Client) UpdateContext(ctx context.Context, goals, notes *string) (*models.UserContext, error) {
	var out models.UserContext
	req := models.UpdateContextRequest{Goals: goals, Notes: notes}
	if err := c.do(ctx, http.MethodPut, "/context", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteContext(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/context", nil, nil)
}

// ValidateContext dry-runs a context update without persisting it.
func (c *Client) ValidateContext(ctx context.Context, goals, notes *string) error {
	req := models.UpdateContextRequest{Goals: goals, Notes: notes}
	return c.do(ctx, http.MethodPost, "/context/validate", req, nil)
}
