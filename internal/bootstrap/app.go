// Package bootstrap wires configuration, storage, mail and HTTP handlers
// into a runnable application.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/contact"
	"portfolio-backend/internal/health"
	"portfolio-backend/internal/mailer"
	"portfolio-backend/internal/resume"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/storage/docstore"
	"portfolio-backend/internal/shared/storage/object"
	localstore "portfolio-backend/internal/shared/storage/object/local"
	s3store "portfolio-backend/internal/shared/storage/object/s3"
	"portfolio-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine

	// Store is nil when the database connection was never established; the
	// handlers answer 503 in that case instead of crashing.
	Store  *docstore.Store
	Files  object.ObjectStore
	Mailer mailer.Mailer

	ResumeService  *resume.Service
	ContactService *contact.Service
	Health         *health.Service
}

// Build prepares all dependencies and the router. An unreachable database
// is not fatal here: the store degrades and inserts fail later, per the
// best-effort persistence policy.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	store, err := docstore.Connect(ctx, cfg.DatabaseURL, docstore.OptionsFromEnv(docstore.DefaultOptions()))
	if err != nil {
		telemetry.Error("bootstrap.docstore_unavailable", map[string]any{"error": err.Error()})
		store = nil
	}

	files, err := buildFiles(ctx, cfg)
	if err != nil {
		return nil, err
	}

	smtp := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailAddress, cfg.EmailPassword, files)

	app := &App{
		Config: cfg,
		Store:  store,
		Files:  files,
		Mailer: smtp,
	}

	var resumeRepo resume.Repo
	var contactRepo contact.Repo
	if store != nil {
		resumeRepo = &resume.DocstoreRepo{Store: store}
		contactRepo = &contact.DocstoreRepo{Store: store}
	}

	app.ResumeService = &resume.Service{
		Repo:           resumeRepo,
		Mailer:         smtp,
		ResumeKey:      cfg.ResumeKey,
		ResumeFilename: cfg.ResumeFilename,
		OwnerName:      cfg.OwnerName,
	}
	app.ContactService = &contact.Service{
		Repo:            contactRepo,
		Mailer:          smtp,
		OperatorAddress: cfg.EmailAddress,
	}
	app.Health = health.NewService(store, files, cfg.ResumeKey)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		ResumeHandler:  resume.NewHandler(app.ResumeService),
		ContactHandler: contact.NewHandler(app.ContactService),
		Health:         app.Health,
	})

	return app, nil
}

// Close releases long-lived resources. Safe to call once at shutdown.
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}

func buildFiles(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("build s3 object store: %w", err)
		}
		return store, nil
	default:
		return localstore.New(cfg.AssetsDir), nil
	}
}
