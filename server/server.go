// Package server wires storage, handlers and middleware into the fiber app
// and runs it until the context is cancelled.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"karyawan/condb"
	"karyawan/config"
	"karyawan/controllers"
	"karyawan/logging"
	"karyawan/middleware"
	"karyawan/repositories"
	"karyawan/routes"
	"karyawan/utils"
	"karyawan/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	config    *config.Config
	logger    logging.Logger
	db        *condb.DB
	app       *fiber.App
	users     *repositories.UserRepository
	employees *repositories.EmployeeRepository
}

// New opens the store, applies migrations, seeds the admin account and
// builds the HTTP app. Each step runs once, in that order.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Server, error) {
	db, err := condb.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	applied, err := db.Migrate(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info(ctx, "schema ready", "dialect", string(db.Dialect), "applied", applied)

	created, err := SeedAdmin(ctx, db, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if created {
		logger.Info(ctx, "seed admin created", "username", cfg.AdminUsername)
	}

	s := &Server{
		config:    cfg,
		logger:    logger,
		db:        db,
		users:     repositories.NewUserRepository(db),
		employees: repositories.NewEmployeeRepository(db),
	}
	s.app = s.newApp()
	return s, nil
}

func (s *Server) newApp() *fiber.App {
	engine := html.NewFileSystem(http.FS(views.Files), ".html")

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ViewsLayout:           "layouts/main",
		ErrorHandler:          controllers.ErrorHandler(s.logger),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(s.logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.AllowOrigins,
		AllowMethods:     "GET,POST",
		AllowCredentials: true,
	}))
	app.Use(encryptcookie.New(encryptcookie.Config{Key: s.config.CookieKey()}))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(views.Files),
		PathPrefix: "static",
	}))

	tokens := utils.NewTokenManager(s.config.SecretKey, s.config.SessionTTL)
	cookies := utils.Cookies{Secure: s.config.CookieSecure}
	h := controllers.NewHandler(s.users, s.employees, tokens, cookies, s.logger)

	auth := middleware.JWTMiddleware(tokens, s.users, cookies)
	routes.RegisterRoutes(app, h, auth, s.loginLimiter(h))

	return app
}

func (s *Server) loginLimiter(h *controllers.Handler) fiber.Handler {
	if s.config.LoginRateLimit <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:          s.config.LoginRateLimit,
		Expiration:   time.Minute,
		LimitReached: h.LoginRateLimited,
	})
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully and
// closes the store.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "listening", "addr", s.config.Addr)
		errCh <- s.app.Listen(s.config.Addr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info(context.Background(), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		runErr = s.app.ShutdownWithContext(shutdownCtx)
	case err := <-errCh:
		runErr = err
	}

	if err := s.db.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Close releases the store without serving; used when Run is never called.
func (s *Server) Close() error {
	return s.db.Close()
}
