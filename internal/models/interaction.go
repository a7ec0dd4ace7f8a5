package models

import "time"

// Interaction is one server-generated audit trail record for a contact.
// Read-only on this side.
type Interaction struct {
	ID              int64           `json:"id"`
	Contact         *Contact        `json:"contact"`
	Conversation    *Conversation   `json:"conversation"`
	Complaint       *Complaint      `json:"complaint"`
	InteractionType InteractionType `json:"interaction_type"`
	Description     string          `json:"description"`
	Agent           *User           `json:"agent"`
	Channel         *Channel        `json:"channel"`
	CreatedAt       time.Time       `json:"created_at"`
}
