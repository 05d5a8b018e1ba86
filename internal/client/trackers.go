package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/studiofront/designer-console/internal/models"

	"go.uber.org/zap"
)

// ListTrackers fetches one page of the current designer's trackers. On
// failure it logs and returns an empty slice.
func (c *APIClient) ListTrackers(ctx context.Context, skip, limit int) []models.TimeTracker {
	url := fmt.Sprintf("%s/time-tracker/designer?limit=%d&skip=%d", c.baseURL, limit, skip)

	var trackers []models.TimeTracker
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &trackers, true); err != nil {
		c.logger.Error("Failed to fetch time trackers",
			zap.Int("skip", skip),
			zap.Int("limit", limit),
			zap.Error(err),
		)
		return []models.TimeTracker{}
	}

	return trackers
}

// GetTracker fetches one tracker by id. Returns nil on failure.
func (c *APIClient) GetTracker(ctx context.Context, trackerID string) *models.TimeTracker {
	url := fmt.Sprintf("%s/time-tracker/%s", c.baseURL, trackerID)

	var tracker models.TimeTracker
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &tracker, true); err != nil {
		c.logger.Error("Failed to fetch time tracker",
			zap.String("tracker_id", trackerID),
			zap.Error(err),
		)
		return nil
	}

	return &tracker
}

// SearchAdminTrackers runs the admin tracker search: free text plus an
// optional date range, paginated. On failure it logs and returns an empty
// slice.
func (c *APIClient) SearchAdminTrackers(ctx context.Context, text string, date models.DateRange, skip, limit int) []models.AdminTimeTracker {
	url := fmt.Sprintf("%s/time-tracker/admin?limit=%d&skip=%d", c.baseURL, limit, skip)

	body := map[string]interface{}{
		"query": map[string]interface{}{
			"text": text,
			"date": date,
		},
	}

	var trackers []models.AdminTimeTracker
	if err := c.doJSON(ctx, http.MethodPost, url, body, &trackers, true); err != nil {
		c.logger.Error("Failed to search admin time trackers",
			zap.String("text", text),
			zap.Int("skip", skip),
			zap.Error(err),
		)
		return []models.AdminTimeTracker{}
	}

	return trackers
}

// ListTasks fetches all tasks under a tracker. On failure it logs and
// returns an empty slice.
func (c *APIClient) ListTasks(ctx context.Context, trackerID string) []models.TimeTrackerState {
	url := fmt.Sprintf("%s/time-tracker/%s/state", c.baseURL, trackerID)

	var tasks []models.TimeTrackerState
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &tasks, true); err != nil {
		c.logger.Error("Failed to fetch tasks",
			zap.String("tracker_id", trackerID),
			zap.Error(err),
		)
		return []models.TimeTrackerState{}
	}

	return tasks
}

// ListTaskSessions fetches the session log of one task. On failure it
// logs and returns an empty slice.
func (c *APIClient) ListTaskSessions(ctx context.Context, taskID string) []models.TimeTrackerSession {
	url := fmt.Sprintf("%s/time-tracker/task/%s/sessions", c.baseURL, taskID)

	var sessions []models.TimeTrackerSession
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &sessions, true); err != nil {
		c.logger.Error("Failed to fetch task sessions",
			zap.String("task_id", taskID),
			zap.Error(err),
		)
		return []models.TimeTrackerSession{}
	}

	return sessions
}

// CreateTask opens a new task under a tracker. The task starts
// in-progress with a fresh session.
func (c *APIClient) CreateTask(ctx context.Context, trackerID, tag, note string) (*models.TimeTrackerState, error) {
	url := fmt.Sprintf("%s/time-tracker/state", c.baseURL)

	body := map[string]string{
		"tracker": trackerID,
		"tag":     tag,
		"note":    note,
	}

	var task models.TimeTrackerState
	if err := c.doJSON(ctx, http.MethodPost, url, body, &task, true); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &task, nil
}

// PauseTask stops the task's open session, preserving accumulated time
func (c *APIClient) PauseTask(ctx context.Context, taskID string) (*models.TimeTrackerState, error) {
	return c.updateTaskStatus(ctx, taskID, "pause")
}

// CompleteTask marks the task done via the status update endpoint
func (c *APIClient) CompleteTask(ctx context.Context, taskID string) (*models.TimeTrackerState, error) {
	return c.updateTaskStatus(ctx, taskID, "done")
}

func (c *APIClient) updateTaskStatus(ctx context.Context, taskID, status string) (*models.TimeTrackerState, error) {
	url := fmt.Sprintf("%s/time-tracker/task/%s/%s", c.baseURL, taskID, status)

	var task models.TimeTrackerState
	if err := c.doJSON(ctx, http.MethodPut, url, struct{}{}, &task, true); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return &task, nil
}

// ResumeTask opens a new session under a paused task
func (c *APIClient) ResumeTask(ctx context.Context, taskID string) (*models.TimeTrackerState, error) {
	url := fmt.Sprintf("%s/time-tracker/task/%s/resume/session", c.baseURL, taskID)

	var task models.TimeTrackerState
	if err := c.doJSON(ctx, http.MethodPut, url, struct{}{}, &task, true); err != nil {
		return nil, fmt.Errorf("failed to resume task: %w", err)
	}

	return &task, nil
}

// EndTask closes the task terminally
func (c *APIClient) EndTask(ctx context.Context, taskID string) (*models.TimeTrackerState, error) {
	url := fmt.Sprintf("%s/time-tracker/state/%s/end", c.baseURL, taskID)

	var task models.TimeTrackerState
	if err := c.doJSON(ctx, http.MethodPut, url, nil, &task, true); err != nil {
		return nil, fmt.Errorf("failed to end task: %w", err)
	}

	return &task, nil
}

// SetOvertimeReason records the designer's free-text reason for a tracker
// that ran past its budget.
func (c *APIClient) SetOvertimeReason(ctx context.Context, trackerID, reason string) (*models.TimeTracker, error) {
	url := fmt.Sprintf("%s/time-tracker/%s/overTime/reason", c.baseURL, trackerID)

	body := map[string]string{"reason": reason}

	var tracker models.TimeTracker
	if err := c.doJSON(ctx, http.MethodPut, url, body, &tracker, true); err != nil {
		return nil, fmt.Errorf("failed to set overtime reason: %w", err)
	}

	return &tracker, nil
}
