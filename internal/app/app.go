package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/leaguedesk/leaguedesk/internal/config"
	"github.com/leaguedesk/leaguedesk/internal/domain/sport"
	"github.com/leaguedesk/leaguedesk/internal/infrastructure/account/gatekeeper"
	"github.com/leaguedesk/leaguedesk/internal/infrastructure/alerting"
	cacherepo "github.com/leaguedesk/leaguedesk/internal/infrastructure/repository/cache"
	"github.com/leaguedesk/leaguedesk/internal/infrastructure/repository/postgres"
	"github.com/leaguedesk/leaguedesk/internal/interfaces/httpapi"
	basecache "github.com/leaguedesk/leaguedesk/internal/platform/cache"
	idgen "github.com/leaguedesk/leaguedesk/internal/platform/id"
	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
	"github.com/leaguedesk/leaguedesk/internal/platform/resilience"
	"github.com/leaguedesk/leaguedesk/internal/usecase"
)

// App bundles the running pieces main needs to manage.
type App struct {
	Server *http.Server
	DB     *sqlx.DB
}

// New wires storage, services and the HTTP router. The role registry is
// built eagerly: a misconfigured registry fails boot after alerting
// operators, it never degrades into per-request failures silently.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var sports sport.Repository = postgres.NewSportRepository(db)
	if cfg.CacheEnabled {
		sports = cacherepo.NewSportRepository(sports, basecache.NewStore(cfg.CacheTTL))
	}
	profiles := postgres.NewProfileRepository(db)
	registrations := postgres.NewRegistrationRepository(db)
	roleProfiles := postgres.NewRoleProfileRepository(db)
	sessions := postgres.NewSessionStore(db)
	txRunner := postgres.NewTxRunner(db)

	notifier := alerting.NewWebhookNotifier(alerting.WebhookNotifierConfig{
		URL:     cfg.AlertWebhookURL,
		Service: cfg.ServiceName,
		Timeout: cfg.AlertWebhookTimeout,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AlertCircuitEnabled,
			FailureThreshold: cfg.AlertCircuitFailureCount,
			OpenTimeout:      cfg.AlertCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AlertCircuitHalfOpenMaxReq,
		},
	}, logger)

	registry, err := usecase.BuildRoleRegistry(ctx, sports)
	if err != nil {
		notifier.NotifyRegistryMisconfigured(ctx, "", err)
		_ = db.Close()
		return nil, fmt.Errorf("build role registry: %w", err)
	}
	resolver := usecase.NewRegistrationResolver(registry, roleProfiles)

	routes := httpapi.NewRoutes()
	ids := idgen.NewUUIDGenerator()

	sportService := usecase.NewSportService(sports)
	profileService := usecase.NewProfileService(profiles, ids)
	registrationService := usecase.NewRegistrationService(registrations, sports, resolver, ids, logger)
	roleProfileService := usecase.NewRoleProfileService(roleProfiles, registrations, resolver, txRunner, ids, logger)
	summaryService := usecase.NewSummaryService(registrations, sports, resolver, routes)
	onboardingService := usecase.NewOnboardingService(profiles, registrations, resolver, sessions, routes, notifier, logger)
	reconcileService := usecase.NewReconcileService(registrations, resolver, notifier, logger, cfg.ReconcileWorkers)

	gatekeeperClient := gatekeeper.NewClient(
		&http.Client{Timeout: cfg.GatekeeperTimeout},
		cfg.GatekeeperBaseURL,
		cfg.GatekeeperIntrospectPath,
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.GatekeeperCircuitEnabled,
			FailureThreshold: cfg.GatekeeperCircuitFailureCount,
			OpenTimeout:      cfg.GatekeeperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GatekeeperCircuitHalfOpenMaxReq,
		},
		logger,
	)

	handler := httpapi.NewHandler(
		sportService,
		profileService,
		registrationService,
		roleProfileService,
		summaryService,
		onboardingService,
		reconcileService,
		logger,
	)
	router := httpapi.NewRouter(handler, gatekeeperClient, onboardingService, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, DB: db}, nil
}

// Close releases resources owned by the app after the server has
// stopped.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
