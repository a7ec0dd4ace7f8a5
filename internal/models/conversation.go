package models

import "time"

// Conversation is one channel-bound thread between a contact and the
// organization. List and detail payloads share this shape; the detail payload
// additionally embeds the full message thread.
type Conversation struct {
	ID              int64              `json:"id"`
	ConversationID  string             `json:"conversation_id"`
	Contact         Contact            `json:"contact"`
	Channel         Channel            `json:"channel"`
	Agent           *User              `json:"agent"`
	Complaint       *Complaint         `json:"complaint"`
	Subject         string             `json:"subject"`
	Status          ConversationStatus `json:"status"`
	Priority        Priority           `json:"priority"`
	ChannelThreadID string             `json:"channel_thread_id"`
	Tags            []TagAssignment    `json:"tags"`
	UnreadCount     int                `json:"unread_count"`
	LastMessage     *MessagePreview    `json:"last_message"`
	LastActivity    time.Time          `json:"last_activity"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`

	// Messages is only populated on the detail endpoint.
	Messages []Message `json:"messages,omitempty"`
}

// MessagePreview is the denormalized last-message summary carried on each
// conversation list entry.
type MessagePreview struct {
	Content     string      `json:"content"`
	MessageType MessageType `json:"message_type"`
	SenderType  SenderType  `json:"sender_type"`
	SenderName  string      `json:"sender_name"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Tag labels conversations for triage.
type Tag struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type TagAssignment struct {
	ID         int64     `json:"id"`
	Tag        Tag       `json:"tag"`
	AssignedBy *User     `json:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at"`
}
