package handler

import (
	"career-advisor/internal/delivery/http/dto"
	"career-advisor/internal/pkg/response"
	"career-advisor/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	uc usecase.RecommendationUsecase
}

func NewCareerHandler(uc usecase.RecommendationUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/careers", h.List)
	r.Get("/careers/stats", h.Stats)
}

func (h *CareerHandler) List(c fiber.Ctx) error {
	items := h.uc.ListCareers(c.Context())

	out := make([]dto.CareerItem, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CareerItem{
			ID:          string(it.ID),
			CareerPath:  it.Title,
			Description: it.Description,
		})
	}
	return response.Success(c, fiber.StatusOK, dto.CareerListResponse{Careers: out})
}

func (h *CareerHandler) Stats(c fiber.Ctx) error {
	items, err := h.uc.CareerStats(c.Context())
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	out := make([]dto.CareerStatsItem, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CareerStatsItem{ID: string(it.ID), CareerPath: it.Title, Hits: it.Hits})
	}
	return response.Success(c, fiber.StatusOK, dto.CareerStatsResponse{Stats: out})
}
