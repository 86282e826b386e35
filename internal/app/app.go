package app

import (
	"context"

	"foodieframe_client/internal/api"
	"foodieframe_client/internal/config"
	"foodieframe_client/internal/service"
	"foodieframe_client/internal/session"
	"foodieframe_client/pkg/logger"
	"foodieframe_client/pkg/monitoring"
	"foodieframe_client/pkg/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// App owns the wired client stack: config, session store, API client and the
// services on top of it. One App per process.
type App struct {
	Config   *config.Config
	Sessions *session.Store
	API      *api.Client

	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type services struct {
	auth        *service.AuthService
	recipe      *service.RecipeService
	interaction *service.InteractionService
	saved       *service.SavedRecipeService
	event       *service.EventService
	friend      *service.FriendService
	group       *service.GroupService
	category    *service.CategoryService
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initServices() *services {
	return &services{
		auth:        service.NewAuthService(a.API, a.Sessions),
		recipe:      service.NewRecipeService(a.API, a.Sessions, a.Config.Retry),
		interaction: service.NewInteractionService(a.API, a.Sessions),
		saved:       service.NewSavedRecipeService(a.API, a.Sessions),
		event:       service.NewEventService(a.API, a.Sessions),
		friend:      service.NewFriendService(a.API, a.Sessions),
		group:       service.NewGroupService(a.API, a.Sessions),
		category:    service.NewCategoryService(a.API, a.Sessions),
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	app := &App{Config: cfg}

	app.Sessions = session.NewStore(cfg.Session.File)

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	app.API = api.NewClient(api.Options{
		BaseURL:       cfg.API.BaseURL,
		UploadBaseURL: cfg.API.UploadBaseURL,
		TokenSource:   app.Sessions,
		Limiter:       limiter,
		OnUnauthorized: func() {
			logger.Log.Warn("Session rejected by server, clearing stored credentials")
			app.Sessions.Clear()
		},
	})
	app.API.SetTimeout(cfg.API.Timeout)

	monitoring.Init()
	if cfg.Metrics.Enabled {
		go func() {
			if err := monitoring.Serve(cfg.Metrics.Addr); err != nil {
				logger.Log.Error("Metrics endpoint stopped", zap.Error(err))
			}
		}()
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("foodieframe-client", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.services = app.initServices()

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.Reload(newCfg)
		app.API.SetBaseURLs(newCfg.API.BaseURL, newCfg.API.UploadBaseURL)
		app.API.SetTimeout(newCfg.API.Timeout)
		app.Config = newCfg
		logger.Log.Info("Configuration reloaded",
			zap.String("base_url", newCfg.API.BaseURL))
	})

	return app
}

// Reload applies a freshly loaded config to the running app. Wired as the
// configwatcher callback.
func (a *App) Reload(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// Shutdown flushes the tracer and logger. Safe to call when tracing is off.
func (a *App) Shutdown(ctx context.Context) {
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	logger.Log.Sync()
}

func (a *App) Auth() *service.AuthService                { return a.services.auth }
func (a *App) Recipes() *service.RecipeService           { return a.services.recipe }
func (a *App) Interactions() *service.InteractionService { return a.services.interaction }
func (a *App) Saved() *service.SavedRecipeService        { return a.services.saved }
func (a *App) Events() *service.EventService             { return a.services.event }
func (a *App) Friends() *service.FriendService           { return a.services.friend }
func (a *App) Groups() *service.GroupService             { return a.services.group }
func (a *App) Categories() *service.CategoryService      { return a.services.category }
