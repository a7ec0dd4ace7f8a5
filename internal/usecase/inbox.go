package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/google/uuid"

	"github.com/pqrsdesk/omnidesk/internal/config"
	"github.com/pqrsdesk/omnidesk/internal/models"
	"github.com/pqrsdesk/omnidesk/internal/store"
)

// InboxUsecase drives the conversation workspace: listing, selection,
// outgoing messages and status changes.
type InboxUsecase struct {
	api                OmniAPI
	store              *store.Store
	maxAttachmentBytes int64
}

func NewInboxUsecase(cfg *config.Config, api OmniAPI, st *store.Store) *InboxUsecase {
	return &InboxUsecase{
		api:                api,
		store:              st,
		maxAttachmentBytes: cfg.Inbox.MaxAttachmentBytes,
	}
}

func (uc *InboxUsecase) Store() *store.Store {
	return uc.store
}

// Refresh reloads the conversation list with the filter currently in effect.
func (uc *InboxUsecase) Refresh(ctx context.Context) error {
	return uc.store.LoadList(ctx, uc.store.Filter())
}

func (uc *InboxUsecase) Select(ctx context.Context, conversationID int64) error {
	return uc.store.Select(ctx, conversationID)
}

// Attachment is an outgoing file read from disk, not yet encoded.
type Attachment struct {
	Name string
	MIME string
	Data []byte
}

type SendMessageParams struct {
	Content    string
	Attachment *Attachment
}

// SendMessage submits a draft on the selected conversation. Empty drafts and
// drafts on closed conversations are dropped without a network call.
func (uc *InboxUsecase) SendMessage(ctx context.Context, params SendMessageParams) (*models.Message, error) {
	conv := uc.store.Selected()
	if conv == nil {
		return nil, nil
	}
	if strings.TrimSpace(params.Content) == "" && params.Attachment == nil {
		return nil, nil
	}
	if conv.Status.Terminal() {
		return nil, nil
	}

	out := models.OutgoingMessage{
		Content:     params.Content,
		MessageType: classifyMessage(params.Attachment),
		ClientGenID: uuid.NewString(),
	}
	if att := params.Attachment; att != nil {
		if int64(len(att.Data)) > uc.maxAttachmentBytes {
			return nil, &models.ValidationError{
				Field: "attachment",
				Message: fmt.Sprintf("%s is %d bytes, the limit is %d bytes (%dMB)",
					att.Name, len(att.Data), uc.maxAttachmentBytes, uc.maxAttachmentBytes/(1024*1024)),
			}
		}
		out.Attachment = base64.StdEncoding.EncodeToString(att.Data)
		out.AttachmentName = att.Name
		out.AttachmentType = att.MIME
		out.AttachmentSize = int64(len(att.Data))
	}

	created, err := uc.api.SendMessage(ctx, conv.ID, out)
	if err != nil {
		log.Warnw(ctx, "send message failed, draft kept",
			"conversation_id", conv.ID,
			"error", err,
		)
		return nil, err
	}

	uc.store.ApplyIncomingMessage(conv.ID, *created)
	log.Debugw(ctx, "message sent",
		"conversation_id", conv.ID,
		"message_id", created.ID,
		"message_type", created.MessageType,
	)
	return created, nil
}

func classifyMessage(att *Attachment) models.MessageType {
	switch {
	case att == nil:
		return models.MessageText
	case strings.HasPrefix(att.MIME, "image/"):
		return models.MessageImage
	default:
		return models.MessageFile
	}
}

// UpdateStatus moves a conversation to a new status. Closed conversations are
// final and rejected locally.
func (uc *InboxUsecase) UpdateStatus(ctx context.Context, conversationID int64, status models.ConversationStatus) (*models.Conversation, error) {
	if !status.Valid() {
		return nil, &models.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}
	if cur := uc.current(conversationID); cur != nil && cur.Status.Terminal() {
		return nil, &models.ValidationError{Field: "status", Message: "conversation is closed and can no longer change status"}
	}

	updated, err := uc.api.UpdateStatus(ctx, conversationID, status)
	if err != nil {
		return nil, err
	}

	uc.store.ApplyStatusChange(*updated)
	log.Infow(ctx, "conversation status updated",
		"conversation_id", conversationID,
		"status", status,
	)
	return updated, nil
}

func (uc *InboxUsecase) current(conversationID int64) *models.Conversation {
	if sel := uc.store.Selected(); sel != nil && sel.ID == conversationID {
		return sel
	}
	for _, conv := range uc.store.Conversations() {
		if conv.ID == conversationID {
			c := conv
			return &c
		}
	}
	return nil
}

func (uc *InboxUsecase) ContactSummary(ctx context.Context, contactID int64) (*models.ContactSummary, error) {
	summary, err := uc.api.ContactSummary(ctx, contactID)
	if err != nil {
		return nil, &models.LoadError{What: "contact summary", Err: err}
	}
	return summary, nil
}

func (uc *InboxUsecase) Interactions(ctx context.Context, contactID int64) ([]models.Interaction, error) {
	interactions, err := uc.api.ListInteractions(ctx, contactID)
	if err != nil {
		return nil, &models.LoadError{What: "interactions", Err: err}
	}
	return interactions, nil
}

func (uc *InboxUsecase) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := uc.api.Dashboard(ctx)
	if err != nil {
		return nil, &models.LoadError{What: "dashboard", Err: err}
	}
	return stats, nil
}
