package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"task-manager-cli/internal/models"
)

// ListTasks fetches the task list, optionally pre-filtered server-side by
// completion status ("completed" or "pending").
func (c *Client) ListTasks(ctx context.Context, statusFilter string) (*models.TaskListResponse, error) {
	path := "/tasks"
	if statusFilter != "" {
		path += "?status_filter=" + url.QueryEscape(statusFilter)
	}
	var out models.TaskListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTask(ctx context.Context, id int) (*models.Task, error) {
	var out models.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTask(ctx context.Context, title string) (*models.Task, error) {
	var out models.Task
	req := models.CreateTaskRequest{Title: title}
	if err := c.do(ctx, http.MethodPost, "/tasks", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int, req models.UpdateTaskRequest) (*models.Task, error) {
	var out models.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

func (c *Client) GetStats(ctx context.Context) (*models.TaskStats, error) {
	var out models.TaskStats
	if err := c.do(ctx, http.MethodGet, "/tasks/stats/overview", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
