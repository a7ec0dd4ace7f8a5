package models

// OutgoingMessage is the send_message request body. The attachment travels
// base64-encoded inside the same request as the text content.
type OutgoingMessage struct {
	Content        string      `json:"content"`
	MessageType    MessageType `json:"message_type"`
	Attachment     string      `json:"attachment,omitempty"`
	AttachmentName string      `json:"attachment_name,omitempty"`
	AttachmentType string      `json:"attachment_type,omitempty"`
	AttachmentSize int64       `json:"attachment_size,omitempty"`
	ClientGenID    string      `json:"client_gen_id,omitempty"`
}
