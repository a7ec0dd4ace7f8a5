package app

import (
	"fmt"

	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/pqrsdesk/omnidesk/internal/config"
	"github.com/pqrsdesk/omnidesk/internal/repo/pqrsapi"
	"github.com/pqrsdesk/omnidesk/internal/session"
	"github.com/pqrsdesk/omnidesk/internal/store"
	"github.com/pqrsdesk/omnidesk/internal/usecase"
)

// Invoke wires the console's dependency graph and runs funcs against it.
func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newSessionManager,
			newAPIClient,
			newStore,

			provideTokenProvider,
			provideStoreAPI,
			provideOmniAPI,
			provideAuthAPI,

			usecase.NewInboxUsecase,
			usecase.NewAuthUsecase,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}

// Run executes one-shot invoke functions and reports their error.
func Run(funcs ...any) error {
	application := Invoke(funcs...)
	if err := application.Err(); err != nil {
		return fmt.Errorf("omnidesk: %w", err)
	}
	return nil
}

// newSessionManager rehydrates the persisted session once at startup.
func newSessionManager(cfg *config.Config) (*session.Manager, error) {
	mgr, err := session.NewManager(cfg)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return mgr, nil
}

func provideTokenProvider(mgr *session.Manager) pqrsapi.TokenProvider {
	return mgr
}

func newAPIClient(cfg *config.Config, tokens pqrsapi.TokenProvider) *pqrsapi.Client {
	return pqrsapi.NewClient(cfg, tokens)
}

func provideStoreAPI(client *pqrsapi.Client) store.API {
	return client
}

func provideOmniAPI(client *pqrsapi.Client) usecase.OmniAPI {
	return client
}

func provideAuthAPI(client *pqrsapi.Client) usecase.AuthAPI {
	return client
}

func newStore(api store.API) *store.Store {
	return store.New(api)
}
