package usecase

import (
	"context"

	"github.com/pqrsdesk/omnidesk/internal/models"
	"github.com/pqrsdesk/omnidesk/internal/repo/pqrsapi"
)

// OmniAPI is the remote API surface the inbox usecase depends on.
type OmniAPI interface {
	SendMessage(ctx context.Context, conversationID int64, msg models.OutgoingMessage) (*models.Message, error)
	UpdateStatus(ctx context.Context, conversationID int64, status models.ConversationStatus) (*models.Conversation, error)
	ContactSummary(ctx context.Context, contactID int64) (*models.ContactSummary, error)
	ListInteractions(ctx context.Context, contactID int64) ([]models.Interaction, error)
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}

// AuthAPI is the remote API surface the auth usecase depends on.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginData, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
}

var _ OmniAPI = (*pqrsapi.Client)(nil)
var _ AuthAPI = (*pqrsapi.Client)(nil)
