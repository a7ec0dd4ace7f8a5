package pqrsapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pqrsdesk/omnidesk/internal/models"
)

func (c *Client) ListChannels(ctx context.Context) ([]models.Channel, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/omnichannel/channels/", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Channel](body)
}

func (c *Client) ListConversations(ctx context.Context, filter models.ConversationFilter) ([]models.Conversation, error) {
	query := filter.Query()
	if c.pageSize > 0 {
		query.Set("page_size", strconv.Itoa(c.pageSize))
	}
	body, err := c.do(ctx, http.MethodGet, "/api/omnichannel/conversations/", query, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Conversation](body)
}

func (c *Client) GetConversation(ctx context.Context, id int64) (*models.Conversation, error) {
	var conv models.Conversation
	if err := c.Get(ctx, fmt.Sprintf("/api/omnichannel/conversations/%d/", id), nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (c *Client) ListMessages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	path := fmt.Sprintf("/api/omnichannel/conversations/%d/messages/", conversationID)
	body, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Message](body)
}

func (c *Client) SendMessage(ctx context.Context, conversationID int64, msg models.OutgoingMessage) (*models.Message, error) {
	path := fmt.Sprintf("/api/omnichannel/conversations/%d/send_message/", conversationID)
	var created models.Message
	if err := c.Post(ctx, path, msg, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateStatus(ctx context.Context, conversationID int64, status models.ConversationStatus) (*models.Conversation, error) {
	path := fmt.Sprintf("/api/omnichannel/conversations/%d/update_status/", conversationID)
	req := map[string]models.ConversationStatus{"status": status}
	var updated models.Conversation
	if err := c.Patch(ctx, path, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) ContactSummary(ctx context.Context, contactID int64) (*models.ContactSummary, error) {
	var summary models.ContactSummary
	path := fmt.Sprintf("/api/omnichannel/contacts/%d/interaction_summary/", contactID)
	if err := c.Get(ctx, path, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) ListInteractions(ctx context.Context, contactID int64) ([]models.Interaction, error) {
	query := url.Values{}
	query.Set("contact", strconv.FormatInt(contactID, 10))
	body, err := c.do(ctx, http.MethodGet, "/api/omnichannel/interactions/", query, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Interaction](body)
}

func (c *Client) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.Get(ctx, "/api/omnichannel/conversations/dashboard/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
