package api

import (
	"context"
	"net/http"

	"task-manager-cli/internal/models"
)

// Suggest asks the AI endpoint for task suggestions derived from the user's
// stored goals and notes.
func (c *Client) Suggest(ctx context.Context, query string) (*models.AISuggestion, error) {
	var out models.AISuggestion
	req := models.SuggestionRequest{Query: query}
	if err := c.do(ctx, http.MethodPost, "/ai/suggest", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SuggestAndCreate generates suggestions and creates them as tasks in one
// round trip.
func (c *Client) SuggestAndCreate(ctx context.Context, query string) (*models.SuggestAndCreateResult, error) {
	var out models.SuggestAndCreateResult
	req := models.SuggestionRequest{Query: query}
	if err := c.do(ctx, http.MethodPost, "/ai/suggest-and-create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AIHealth reports whether the server's AI backend is reachable. A 503 from
// the server surfaces as ErrUnavailable.
func (c *Client) AIHealth(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ai/health", nil, nil)
}

func (c *Client) SuggestionExamples(ctx context.Context) ([]string, error) {
	var out struct {
		Examples []string `json:"examples"`
	}
	if err := c.do(ctx, http.MethodGet, "/ai/examples", nil, &out); err != nil {
		return nil, err
	}
	return out.Examples, nil
}
