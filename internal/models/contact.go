package models

import "time"

// Contact is the customer on the other end of a conversation.
type Contact struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Document          string    `json:"document"`
	Address           string    `json:"address"`
	WhatsAppNumber    string    `json:"whatsapp_number"`
	FacebookID        string    `json:"facebook_id"`
	TwitterHandle     string    `json:"twitter_handle"`
	InstagramHandle   string    `json:"instagram_handle"`
	LinkedInProfile   string    `json:"linkedin_profile"`
	PrimaryIdentifier string    `json:"primary_identifier"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ContactSummary is a contact enriched with the interaction aggregates the
// server computes for the history sidebar.
type ContactSummary struct {
	Contact
	TotalConversations int            `json:"total_conversations"`
	TotalComplaints    int            `json:"total_complaints"`
	LastInteraction    *Interaction   `json:"last_interaction"`
	PreferredChannels  []ChannelUsage `json:"preferred_channels"`
	InteractionHistory []Interaction  `json:"interaction_history"`
}

type ChannelUsage struct {
	Channel    string `json:"channel"`
	UsageCount int    `json:"usage_count"`
}
