package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/takumines/meal-finder/internal/auth"
	"github.com/takumines/meal-finder/internal/llm"
	"github.com/takumines/meal-finder/internal/llm/openai"
	"github.com/takumines/meal-finder/internal/profiles"
	"github.com/takumines/meal-finder/internal/questions"
	"github.com/takumines/meal-finder/internal/recommendations"
	"github.com/takumines/meal-finder/internal/sessions"
	"github.com/takumines/meal-finder/internal/shared/config"
	"github.com/takumines/meal-finder/internal/shared/server"
	"github.com/takumines/meal-finder/internal/shared/storage/db"
	"github.com/takumines/meal-finder/internal/shared/telemetry"
)

// App is the assembled application.
type App struct {
	Engine *gin.Engine
	DB     *sql.DB
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Build wires config, storage, the LLM client and all feature handlers into
// a ready-to-serve app. Without a database it falls back to in-memory repos
// outside production.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	database, profileRepo, sessionRepo, recRepo, err := buildStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := buildLLMClient(cfg)

	profileSvc := &profiles.Service{Repo: profileRepo}
	generator := questions.NewGenerator(client)
	orchestrator := recommendations.NewOrchestrator(client)

	sessionSvc := sessions.NewService(sessionRepo, profileSvc, generator, orchestrator, recRepo)

	deps := server.RouterDeps{
		Cfg: cfg,
		DB:  database,
		Handlers: []server.RouteRegistrar{
			sessions.NewHandler(sessionSvc),
			recommendations.NewHandler(recRepo),
		},
		AuthRoutes: []server.RouteRegistrar{
			auth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL),
		},
	}

	return &App{
		Engine: server.NewRouter(deps),
		DB:     database,
	}, nil
}

func buildStorage(ctx context.Context, cfg config.Config) (*sql.DB, profiles.Repo, sessions.Repo, recommendations.Repo, error) {
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return nil, nil, nil, nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		telemetry.Warn("storage.memory_fallback", map[string]any{
			"env": cfg.Env,
		})
		return nil, profiles.NewMemoryRepo(), sessions.NewMemoryRepo(), recommendations.NewMemoryRepo(), nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.RunMigrations(ctx, database); err != nil {
		database.Close()
		return nil, nil, nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	return database, &profiles.PGRepo{DB: database}, &sessions.PGRepo{DB: database}, &recommendations.PGRepo{DB: database}, nil
}

func buildLLMClient(cfg config.Config) llm.Client {
	if cfg.LLMProvider == "openai" && cfg.OpenAIAPIKey != "" {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err == nil {
			return client
		}
		telemetry.Warn("llm.client_init_failed", map[string]any{
			"provider": cfg.LLMProvider,
			"err":      err.Error(),
		})
	}

	telemetry.Warn("llm.placeholder", map[string]any{
		"provider": cfg.LLMProvider,
	})
	return llm.PlaceholderClient{}
}
