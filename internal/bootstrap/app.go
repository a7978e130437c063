// Package bootstrap wires configuration, storage, the model client, and the
// HTTP router into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"legilight-backend/internal/analysis"
	"legilight-backend/internal/documents"
	"legilight-backend/internal/llm"
	"legilight-backend/internal/llm/gemini"
	"legilight-backend/internal/samples"
	"legilight-backend/internal/shared/config"
	"legilight-backend/internal/shared/server"
	"legilight-backend/internal/shared/storage/db"
	"legilight-backend/internal/shared/storage/object"
	localstore "legilight-backend/internal/shared/storage/object/local"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	DocumentsRepo    documents.Repo
	AnalysisService  *analysis.Service
	DocumentsService *documents.Service
	DocumentsHandler *documents.Handler
	SamplesHandler   *samples.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := localstore.New(cfg.LocalStoreDir)

	llmClient, err := buildLLMClient(cfg)
	if err != nil {
		return nil, err
	}

	var docRepo documents.Repo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}

	analysisSvc := &analysis.Service{
		Gateway:  &analysis.Gateway{Client: llmClient},
		Provider: cfg.LLMProvider,
		Model:    cfg.LLMModel,
	}
	docSvc := &documents.Service{
		Repo:     docRepo,
		Store:    store,
		Analyzer: analysisSvc,
	}

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Store:            store,
		DocumentsRepo:    docRepo,
		AnalysisService:  analysisSvc,
		DocumentsService: docSvc,
		DocumentsHandler: documents.NewHandler(docSvc),
		SamplesHandler:   samples.NewHandler(),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		DocumentsHandler: app.DocumentsHandler,
		SamplesHandler:   app.SamplesHandler,
		AIReady:          docSvc.Ready,
		DBConnected:      sqlDB != nil,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

// buildLLMClient returns a PlaceholderClient when no API key is configured so
// the server can still serve health, listing, and sample routes.
func buildLLMClient(cfg config.Config) (llm.Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.LLMProvider)) {
	case "", "gemini":
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			log.Printf("bootstrap: GEMINI_API_KEY empty; analysis endpoints disabled")
			return llm.PlaceholderClient{}, nil
		}
		return gemini.NewClient(cfg.GeminiAPIKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
