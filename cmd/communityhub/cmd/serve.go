package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"communityhub/config"
	"communityhub/internal/adapters/auth"
	"communityhub/internal/adapters/email"
	"communityhub/internal/adapters/session"
	delivery "communityhub/internal/delivery/http"
	"communityhub/internal/delivery/http/controllers"
	"communityhub/internal/delivery/http/middleware"
	"communityhub/internal/domain"
	"communityhub/internal/metrics"
	"communityhub/internal/repository/memory"
	"communityhub/internal/repository/postgres"
	"communityhub/internal/services"

	_ "communityhub/docs"

	"github.com/spf13/cobra"
)

const sessionSweepInterval = time.Minute

var (
	serverPort  string
	autoMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server and handle graceful shutdown on SIGINT/SIGTERM.

Examples:
  # In-memory storage on the default port
  communityhub serve

  # PostgreSQL storage, applying migrations first
  STORAGE_DRIVER=postgres DATABASE_URL=postgres://... communityhub serve --migrate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverPort, "port", "", "listen port (overrides PORT)")
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "apply pending migrations before serving (postgres only)")
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if serverPort != "" {
		cfg.Port = serverPort
	}

	logger := config.NewLogger(cfg)
	logger.Info("starting communityhub", "env", cfg.Environment, "storage", cfg.StorageDriver, "sessions", cfg.Session.Store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	sessionStore, closeSessions, err := openSessionStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
		Resend: email.ResendConfig{APIKey: cfg.Email.ResendAPIKey},
	}, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}

	signer := auth.NewJWTSigner(cfg.Session.Secret)
	recorder := metrics.ActivityRecorder{}
	sessions := services.NewSessionManager(sessionStore, signer, signer, cfg.Session.TTL)
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	authSvc := services.NewAuthService(store, auth.NewScryptHasher(), emailSvc, recorder, logger)

	var limiter *middleware.RateLimiter
	if cfg.LoginPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.LoginPerMinute)
		go limiter.RunCleanup(ctx)
	}

	cookie := controllers.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.IsProduction()}
	handler := delivery.NewRouter(delivery.RouterConfig{
		Logger:        logger,
		Sessions:      sessions,
		CookieName:    cfg.Session.CookieName,
		AuthLimiter:   limiter,
		AllowOrigins:  cfg.AllowedOrigins,
		Auth:          controllers.NewAuthController(logger, authSvc, sessions, cookie),
		Users:         controllers.NewUserController(logger, services.NewUserService(store)),
		Organizations: controllers.NewOrganizationController(logger, services.NewOrganizationService(store, recorder)),
		Events:        controllers.NewEventController(logger, services.NewEventService(store)),
		Attendees:     controllers.NewAttendeeController(logger, services.NewAttendeeService(store, recorder)),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.Store, func(), error) {
	if cfg.StorageDriver != config.StoragePostgres {
		return memory.NewStore(), func() {}, nil
	}
	if autoMigrate {
		if err := postgres.MigrateUp(cfg.DBUrl); err != nil {
			return nil, nil, err
		}
		logger.Info("migrations applied")
	}
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}
	return postgres.NewStore(db), func() { _ = db.Close() }, nil
}

func openSessionStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.SessionStore, func(), error) {
	if cfg.Session.Store != config.SessionRedis {
		store := session.NewMemoryStore()
		go store.RunSweeper(ctx, sessionSweepInterval, logger)
		return store, func() {}, nil
	}
	client, err := session.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return session.NewRedisStore(client), func() { _ = client.Close() }, nil
}
