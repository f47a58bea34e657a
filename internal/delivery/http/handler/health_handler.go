package handler

import (
	"career-advisor/internal/delivery/http/dto"
	"career-advisor/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Endpoints is the banner shown on GET /.
var Endpoints = []string{
	"POST /recommend - Get career recommendations",
	"GET /careers - List all available career paths",
	"GET /careers/stats - Recommendation counts per career path",
	"GET /health - Health check",
	"GET /ws/recommendations - Live recommendation feed (WebSocket)",
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Home)
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Home(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, dto.HomeResponse{
		Message:   "Career Advisor API is running!",
		Endpoints: Endpoints,
	})
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Message: "Career Advisor API is running smoothly!",
	})
}
