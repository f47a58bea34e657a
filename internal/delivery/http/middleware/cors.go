package middleware

import (
	"career-advisor/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/rs/cors"
)

// NewCORSMiddleware runs rs/cors in front of every route.
func NewCORSMiddleware(cfg config.CORSConfig) fiber.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID},
	})

	return adaptor.HTTPMiddleware(c.Handler)
}
