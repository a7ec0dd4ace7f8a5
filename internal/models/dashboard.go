package models

// DashboardStats is the aggregate payload behind the inbox dashboard tiles.
type DashboardStats struct {
	TotalConversations      int             `json:"total_conversations"`
	ActiveConversations     int             `json:"active_conversations"`
	ResolvedConversations   int             `json:"resolved_conversations"`
	ConversationsByChannel  []ChannelCount  `json:"conversations_by_channel"`
	ConversationsByPriority []PriorityCount `json:"conversations_by_priority"`
	RecentActivity          int             `json:"recent_activity"`
}

type ChannelCount struct {
	ChannelName string      `json:"channel__name"`
	ChannelType ChannelType `json:"channel__channel_type"`
	Count       int         `json:"count"`
}

type PriorityCount struct {
	Priority Priority `json:"priority"`
	Count    int      `json:"count"`
}
