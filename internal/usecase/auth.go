package usecase

import (
	"context"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/go-playground/validator/v10"

	"github.com/pqrsdesk/omnidesk/internal/models"
	"github.com/pqrsdesk/omnidesk/internal/session"
)

// AuthUsecase handles login, logout and the persisted session.
type AuthUsecase struct {
	api      AuthAPI
	sessions *session.Manager
	validate *validator.Validate
}

func NewAuthUsecase(api AuthAPI, sessions *session.Manager) *AuthUsecase {
	return &AuthUsecase{
		api:      api,
		sessions: sessions,
		validate: validator.New(),
	}
}

func (uc *AuthUsecase) Login(ctx context.Context, username, password string) (*models.User, error) {
	req := models.LoginRequest{Username: username, Password: password}
	if err := uc.validate.Struct(req); err != nil {
		return nil, &models.ValidationError{Field: "credentials", Message: "username and password are required"}
	}

	data, err := uc.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Set(data.Token, &data.User); err != nil {
		return nil, err
	}
	log.Infow(ctx, "logged in", "username", data.User.Username)
	return &data.User, nil
}

// Logout revokes the server token and drops the local session. The local
// session is cleared even when the server call fails.
func (uc *AuthUsecase) Logout(ctx context.Context) error {
	if err := uc.api.Logout(ctx); err != nil && !models.IsUnauthorized(err) {
		log.Warnw(ctx, "logout request failed, clearing local session anyway", "error", err)
	}
	return uc.sessions.Clear()
}

func (uc *AuthUsecase) Profile(ctx context.Context) (*models.User, error) {
	user, err := uc.api.Profile(ctx)
	if err != nil {
		if models.IsUnauthorized(err) {
			_ = uc.sessions.Clear()
		}
		return nil, err
	}
	return user, nil
}

func (uc *AuthUsecase) CurrentUser() *models.User {
	return uc.sessions.User()
}

func (uc *AuthUsecase) Authenticated() bool {
	return uc.sessions.Authenticated()
}
