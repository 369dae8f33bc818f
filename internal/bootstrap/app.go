package bootstrap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/target/eventshell/config"
	"github.com/target/eventshell/internal/adapters/memdoc"
	"github.com/target/eventshell/internal/adapters/memstore"
	"github.com/target/eventshell/internal/adapters/redisstore"
	"github.com/target/eventshell/internal/adapters/restapi"
	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/ports"
	"github.com/target/eventshell/internal/service"
	"github.com/target/eventshell/internal/shell"
	"github.com/target/eventshell/internal/views"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth   *service.AuthService
	Events *service.EventService
	Users  *service.UserService
}

// App is the fully wired application.
type App struct {
	Config   config.AppConfig
	Logger   *slog.Logger
	Doc      *memdoc.Document
	Engine   *nav.Engine
	Views    *views.Set
	Services ServiceContainer

	closers []io.Closer
}

// Close releases the app's connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close app: %v", errs)
	}
	return nil
}

// BuildApp wires the session store, backend client, services, shell,
// views, and navigation engine from configuration.
func BuildApp(cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: logger}

	sessions, err := buildSessionStore(app, cfg, logger)
	if err != nil {
		return nil, err
	}

	client, err := restapi.NewClient(restapi.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("backend client: %w", err)
	}

	app.Services = ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Sessions: sessions,
			Users:    client.Users(),
			Logger:   logger,
		}),
		Events: service.NewEventService(service.EventServiceOptions{
			Events: client.Events(),
			Logger: logger,
		}),
		Users: service.NewUserService(service.UserServiceOptions{
			Users:  client.Users(),
			Events: client.Events(),
			Logger: logger,
		}),
	}

	app.Doc = memdoc.New()
	chrome := shell.NewController(shell.ControllerOptions{
		Doc:    app.Doc,
		Logger: logger,
	})

	routes := nav.NewTable()
	app.Engine = nav.NewEngine(nav.EngineOptions{
		Auth:   app.Services.Auth,
		Shell:  chrome,
		Routes: routes,
		Logger: logger,
	})

	app.Views = views.NewSet(views.Deps{
		Doc:    app.Doc,
		Nav:    app.Engine,
		Auth:   app.Services.Auth,
		Events: app.Services.Events,
		Users:  app.Services.Users,
		Logger: logger,
	})
	app.Views.Mount(routes)

	return app, nil
}

func buildSessionStore(app *App, cfg config.AppConfig, logger *slog.Logger) (ports.SessionStore, error) {
	switch cfg.Session.Store {
	case config.StoreModeMemory:
		logger.Info("using in-memory session store")
		return memstore.NewStore(), nil
	case config.StoreModeRedis:
		client, err := ConnectRedis(cfg.Session.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("session store: %w", err)
		}
		app.closers = append(app.closers, client)
		return redisstore.NewStoreWithKey(client, cfg.Session.Key), nil
	default:
		return nil, fmt.Errorf("unknown session store mode %q", cfg.Session.Store)
	}
}
