package app

import (
	"fmt"
	"strings"

	"career-advisor/internal/config"
	"career-advisor/internal/delivery/http/handler"
	"career-advisor/internal/delivery/http/middleware"
	"career-advisor/internal/delivery/http/routes"
	"career-advisor/internal/usecase"
	"career-advisor/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

// New builds the Fiber app. hub may be nil, which disables the live feed route.
func New(cfg config.Config, uc usecase.RecommendationUsecase, hub *ws.Hub, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, cfg, logger)
	registerRoutes(f, cfg, uc, hub, logger)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	if logger == nil {
		return nil, nil, fmt.Errorf("nil logger")
	}

	container := NewContainer(cfg, logger)
	app := New(cfg, container.Recommender, container.Hub, logger)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *zap.Logger) {
	if app == nil {
		return
	}

	accessLog := middleware.NewAccessLogMiddleware(logger.Named("http"))
	errMw := middleware.NewErrorMiddleware(logger.Named("http"))

	app.Use(accessLog.Middleware())
	app.Use(errMw.Middleware())
	app.Use(middleware.NewCORSMiddleware(cfg.CORS))
}

func registerRoutes(app *fiber.App, cfg config.Config, uc usecase.RecommendationUsecase, hub *ws.Hub, logger *zap.Logger) {
	if app == nil {
		return
	}

	rateLimit := middleware.NewRateLimitMiddleware(cfg.RateLimit)

	var wsHandler *ws.Handler
	if hub != nil {
		wsHandler = ws.NewHandler(hub, logger.Named("ws"))
	}

	routes.NewRegistry(
		handler.NewCareerHandler(uc),
		handler.NewRecommendationHandler(uc, rateLimit.Middleware()),
		wsHandler,
	).Register(app)
}

func ListenAddr(host, port string) (string, error) {
	p := strings.TrimPrefix(strings.TrimSpace(port), ":")
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	return strings.TrimSpace(host) + ":" + p, nil
}
