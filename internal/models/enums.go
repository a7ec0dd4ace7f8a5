package models

import "fmt"

// ConversationStatus is the lifecycle state of a conversation.
type ConversationStatus string

const (
	StatusActive   ConversationStatus = "active"
	StatusWaiting  ConversationStatus = "waiting"
	StatusResolved ConversationStatus = "resolved"
	StatusClosed   ConversationStatus = "closed"

	// StatusAll is a filter-only pseudo value, never stored on a conversation.
	StatusAll ConversationStatus = "all"
)

func ParseConversationStatus(s string) (ConversationStatus, error) {
	switch ConversationStatus(s) {
	case StatusActive, StatusWaiting, StatusResolved, StatusClosed:
		return ConversationStatus(s), nil
	}
	return "", fmt.Errorf("unknown conversation status %q", s)
}

func (s ConversationStatus) Valid() bool {
	_, err := ParseConversationStatus(string(s))
	return err == nil
}

// Terminal reports whether no further user-initiated transition is allowed.
func (s ConversationStatus) Terminal() bool {
	return s == StatusClosed
}

func (s ConversationStatus) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusWaiting:
		return "Waiting on customer"
	case StatusResolved:
		return "Resolved"
	case StatusClosed:
		return "Closed"
	default:
		return string(s)
	}
}

// Priority of a conversation.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return string(p)
	}
}

// ChannelType identifies the communication medium behind a channel.
type ChannelType string

const (
	ChannelChat      ChannelType = "chat"
	ChannelEmail     ChannelType = "email"
	ChannelWhatsApp  ChannelType = "whatsapp"
	ChannelFacebook  ChannelType = "facebook"
	ChannelTwitter   ChannelType = "twitter"
	ChannelInstagram ChannelType = "instagram"
	ChannelLinkedIn  ChannelType = "linkedin"
	ChannelPhone     ChannelType = "phone"
	ChannelSMS       ChannelType = "sms"
)

func (t ChannelType) Label() string {
	switch t {
	case ChannelChat:
		return "Live chat"
	case ChannelEmail:
		return "Email"
	case ChannelWhatsApp:
		return "WhatsApp"
	case ChannelFacebook:
		return "Facebook"
	case ChannelTwitter:
		return "Twitter"
	case ChannelInstagram:
		return "Instagram"
	case ChannelLinkedIn:
		return "LinkedIn"
	case ChannelPhone:
		return "Phone call"
	case ChannelSMS:
		return "SMS"
	default:
		return string(t)
	}
}

// SenderType identifies who authored a message.
type SenderType string

const (
	SenderContact SenderType = "contact"
	SenderAgent   SenderType = "agent"
	SenderSystem  SenderType = "system"
	SenderBot     SenderType = "bot"
)

// MessageType identifies the payload kind of a message.
type MessageType string

const (
	MessageText   MessageType = "text"
	MessageImage  MessageType = "image"
	MessageFile   MessageType = "file"
	MessageAudio  MessageType = "audio"
	MessageVideo  MessageType = "video"
	MessageSystem MessageType = "system"
)

// InteractionType classifies server-generated audit trail entries.
type InteractionType string

const (
	InteractionComplaintCreated    InteractionType = "complaint_created"
	InteractionConversationStarted InteractionType = "conversation_started"
	InteractionMessageSent         InteractionType = "message_sent"
	InteractionCallMade            InteractionType = "call_made"
	InteractionEmailSent           InteractionType = "email_sent"
	InteractionStatusChanged       InteractionType = "status_changed"
	InteractionAgentAssigned       InteractionType = "agent_assigned"
	InteractionResolutionProvided  InteractionType = "resolution_provided"
	InteractionFollowUp            InteractionType = "follow_up"
	InteractionOther               InteractionType = "other"
)

func (t InteractionType) Label() string {
	switch t {
	case InteractionComplaintCreated:
		return "Complaint created"
	case InteractionConversationStarted:
		return "Conversation started"
	case InteractionMessageSent:
		return "Message sent"
	case InteractionCallMade:
		return "Call made"
	case InteractionEmailSent:
		return "Email sent"
	case InteractionStatusChanged:
		return "Status changed"
	case InteractionAgentAssigned:
		return "Agent assigned"
	case InteractionResolutionProvided:
		return "Resolution provided"
	case InteractionFollowUp:
		return "Follow-up"
	default:
		return string(t)
	}
}
