package main

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sdgportal/docs"
	"sdgportal/internal/config"
	"sdgportal/internal/database"
	"sdgportal/internal/database/migration"
	handlers "sdgportal/internal/http/handler"
	"sdgportal/internal/http/middleware"
	"sdgportal/internal/kv"
	"sdgportal/internal/otel"
	"sdgportal/internal/repository/kvstore"
	"sdgportal/internal/service"
	"sdgportal/internal/storage"
)

// @title SDG Document Portal API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// The postgres driver needs a pooled connection and its schema in place;
	// the file and memory drivers need neither.
	var db *sql.DB
	if cfg.Store.Driver == "postgres" {
		db, err = database.OpenPostgres(cfg.Store)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	store, err := kv.NewStore(cfg.Store, db)
	if err != nil {
		log.Fatalf("failed to open key-value store: %v", err)
	}

	// Reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	repo := kvstore.NewCollectionKV(store)
	clock := service.RealClock{}

	docSvc := service.NewDocumentService(objStore, repo, clock)
	adminSvc := service.NewAdminService(repo, cfg.Admin)
	contactSvc := service.NewContactService(repo, clock)
	siteSvc := service.NewSiteService(repo)

	if cfg.Seed {
		if err := docSvc.Initialize(ctx); err != nil {
			log.Fatalf("failed to seed document collection: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Request ID first so the logger and handlers can pick it up
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMw.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, store, docSvc, adminSvc, contactSvc, siteSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
