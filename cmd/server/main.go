// @title           YouAct Backend API
// @version         1.0.0
// @description     Backend API for annotating YouTube videos. Projects bind a video link; annotations are placed at playback positions and revealed as the video plays.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"youact-backend/docs"
	"youact-backend/internal/config"
	"youact-backend/internal/database"
	"youact-backend/internal/middleware"
	"youact-backend/internal/server"
	"youact-backend/internal/services"
	"youact-backend/internal/supabase"
	"youact-backend/internal/youtube"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a TOML configuration file",
		Sources: cli.EnvVars("YOUACT_CONFIG"),
	}

	app := &cli.Command{
		Name:   "youact",
		Usage:  "Annotate YouTube videos with timed notes",
		Flags:  []cli.Flag{configFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error { return serve(ctx, cmd, logger) },
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: func(ctx context.Context, cmd *cli.Command) error { return serve(ctx, cmd, logger) },
			},
			{
				Name:   "migrate",
				Usage:  "Apply pending database migrations and exit",
				Action: func(ctx context.Context, cmd *cli.Command) error { return migrate(ctx, cmd, logger) },
			},
			{
				Name:  "resolve",
				Usage: "Print the video id and thumbnail derived from a YouTube link",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "link"},
				},
				Action: resolve,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("application error", "err", err)
	}
}

func loadConfig(cmd *cli.Command, logger *log.Logger) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	logger.SetLevel(level)
	return cfg, nil
}

// openStore connects to Postgres and applies migrations, or falls back to
// the in-memory store when no database is configured.
func openStore(ctx context.Context, cfg *config.Config, logger *log.Logger) (database.Store, error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory store; data is lost on restart")
		return database.NewMemoryStore(), nil
	}

	store, err := database.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.NewMigrator(store.DB(), logger).Run(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("migrations completed successfully")
	return store, nil
}

func serve(ctx context.Context, cmd *cli.Command, logger *log.Logger) error {
	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	// Update Swagger docs with the public base URL
	if baseURL, err := url.Parse(cfg.BaseURL); err == nil && baseURL.Host != "" {
		docs.SwaggerInfo.Host = baseURL.Host
		if baseURL.Scheme == "https" {
			docs.SwaggerInfo.Schemes = []string{"https", "http"}
		} else {
			docs.SwaggerInfo.Schemes = []string{"http", "https"}
		}
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	var images services.ImageStore
	if cfg.StorageEnabled() {
		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
		if err != nil {
			return fmt.Errorf("failed to initialize storage client: %w", err)
		}
		images = storageClient
	} else {
		logger.Warn("Supabase storage not configured, image uploads are disabled")
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	router := server.NewRouter(server.Deps{
		Config:      cfg,
		Store:       store,
		Images:      images,
		RateLimiter: limiter,
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				limiter.Prune()
			}
		}
	}()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

func migrate(ctx context.Context, cmd *cli.Command, logger *log.Logger) error {
	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required to run migrations")
	}

	store, err := database.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	return database.NewMigrator(store.DB(), logger).Run(ctx)
}

func resolve(_ context.Context, cmd *cli.Command) error {
	link := cmd.StringArg("link")
	if link == "" {
		return errors.New("usage: youact resolve <link>")
	}

	ref := youtube.Resolve(link)
	if !ref.HasVideo() {
		fmt.Printf("no video id found (shape: %q)\n", ref.Shape)
		return nil
	}
	fmt.Printf("video_id:  %s\nshape:     %s\nthumbnail: %s\n", ref.VideoID, ref.Shape, ref.Thumbnail)
	return nil
}
