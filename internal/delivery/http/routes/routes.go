package routes

import (
	"career-advisor/internal/delivery/http/handler"
	"career-advisor/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health         *handler.HealthHandler
	careers        *handler.CareerHandler
	recommendation *handler.RecommendationHandler
	ws             *ws.Handler
}

func NewRegistry(careers *handler.CareerHandler, recommendation *handler.RecommendationHandler, wsHandler *ws.Handler) *Registry {
	return &Registry{
		health:         handler.NewHealthHandler(),
		careers:        careers,
		recommendation: recommendation,
		ws:             wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	if r.careers != nil {
		r.careers.RegisterRoutes(app)
	}
	if r.recommendation != nil {
		r.recommendation.RegisterRoutes(app)
	}
	if r.ws != nil {
		r.ws.RegisterRoutes(app)
	}
}
