package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/studiofront/designer-console/internal/models"

	"go.uber.org/zap"
)

// notificationList tolerates both response shapes the backend produces:
// a bare array or a {"data": [...]} envelope.
type notificationList []models.Notification

func (n *notificationList) UnmarshalJSON(data []byte) error {
	var plain []models.Notification
	if err := json.Unmarshal(data, &plain); err == nil {
		*n = plain
		return nil
	}

	var envelope struct {
		Data []models.Notification `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	*n = envelope.Data
	return nil
}

// ListNotifications fetches one page of notifications. On failure it logs
// and returns an empty slice.
func (c *APIClient) ListNotifications(ctx context.Context, skip, limit int) []models.Notification {
	url := fmt.Sprintf("%s/notification/getAll?limit=%d&skip=%d", c.baseURL, limit, skip)

	var list notificationList
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &list, true); err != nil {
		c.logger.Error("Failed to fetch notifications",
			zap.Int("skip", skip),
			zap.Int("limit", limit),
			zap.Error(err),
		)
		return []models.Notification{}
	}

	return list
}

// CreateNotification creates a notification draft
func (c *APIClient) CreateNotification(ctx context.Context, draft models.NotificationDraft) (*models.Notification, error) {
	url := fmt.Sprintf("%s/notification/create", c.baseURL)

	var created models.Notification
	if err := c.doJSON(ctx, http.MethodPost, url, draft, &created, true); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return &created, nil
}

// UpdateNotification updates an existing notification
func (c *APIClient) UpdateNotification(ctx context.Context, id string, draft models.NotificationDraft) (*models.Notification, error) {
	url := fmt.Sprintf("%s/notification/update/%s", c.baseURL, id)

	var updated models.Notification
	if err := c.doJSON(ctx, http.MethodPatch, url, draft, &updated, true); err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}

	return &updated, nil
}

// DeleteNotification deletes a notification
func (c *APIClient) DeleteNotification(ctx context.Context, id string) error {
	url := fmt.Sprintf("%s/notification/delete/%s", c.baseURL, id)

	if err := c.doJSON(ctx, http.MethodDelete, url, nil, nil, true); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return nil
}

// PushNotification broadcasts a notification to an audience segment.
// Audience is "marketing", a named non-purchaser segment, or empty for
// the default audience.
func (c *APIClient) PushNotification(ctx context.Context, notificationID, audience string) error {
	url := fmt.Sprintf("%s/notification/push", c.baseURL)

	body := map[string]interface{}{
		"notificationId": notificationID,
	}
	if audience != "" {
		body["audience"] = audience
	}

	if err := c.doJSON(ctx, http.MethodPost, url, body, nil, true); err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}

	c.logger.Info("Notification pushed",
		zap.String("notification_id", notificationID),
		zap.String("audience", audience),
	)

	return nil
}
