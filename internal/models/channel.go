package models

import "time"

// Channel is immutable reference data describing one communication medium.
// The full set is loaded once per session.
type Channel struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	ChannelType ChannelType `json:"channel_type"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
