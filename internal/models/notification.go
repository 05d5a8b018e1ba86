package models

import "time"

// Audience segments accepted by the notification push endpoint
const (
	AudienceMarketing     = "marketing"
	AudienceNonPurchasers = "nonPurchasers"
)

// Notification is one broadcast record in the notification console
type Notification struct {
	ID        string    `json:"_id"`
	Topic     string    `json:"topic"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Type      string    `json:"type"`
	Route     string    `json:"route"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NotificationDraft is the create/update payload for a notification
type NotificationDraft struct {
	Topic string `json:"topic"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Type  string `json:"type,omitempty"`
	Route string `json:"route,omitempty"`
}
