package models

import "time"

// Message is one entry in a conversation thread. Messages are immutable once
// created and append-only per conversation; the server's creation order is the
// only ordering the client ever shows.
type Message struct {
	ID             int64       `json:"id"`
	MessageID      string      `json:"message_id"`
	ConversationID int64       `json:"conversation"`
	SenderType     SenderType  `json:"sender_type"`
	SenderUser     *User       `json:"sender_user"`
	SenderName     string      `json:"sender_name"`
	MessageType    MessageType `json:"message_type"`
	Content        string      `json:"content"`

	Attachment     string `json:"attachment"`
	AttachmentName string `json:"attachment_name"`
	AttachmentSize int64  `json:"attachment_size"`
	AttachmentType string `json:"attachment_type"`

	IsRead      bool       `json:"is_read"`
	IsDelivered bool       `json:"is_delivered"`
	DeliveredAt *time.Time `json:"delivered_at"`
	ReadAt      *time.Time `json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Preview builds the denormalized list-entry summary for this message.
func (m *Message) Preview() *MessagePreview {
	return &MessagePreview{
		Content:     m.Content,
		MessageType: m.MessageType,
		SenderType:  m.SenderType,
		SenderName:  m.SenderName,
		CreatedAt:   m.CreatedAt,
	}
}

// Summary renders a short human-readable line for the message, one case per
// payload kind.
func (m *Message) Summary() string {
	switch m.MessageType {
	case MessageText:
		return m.Content
	case MessageImage:
		return "[image] " + m.AttachmentName
	case MessageFile:
		return "[file] " + m.AttachmentName
	case MessageAudio:
		return "[audio] " + m.AttachmentName
	case MessageVideo:
		return "[video] " + m.AttachmentName
	case MessageSystem:
		return "[system] " + m.Content
	default:
		return m.Content
	}
}
