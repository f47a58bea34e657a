package handler

import (
	"bytes"
	"errors"

	"career-advisor/internal/delivery/http/dto"
	"career-advisor/internal/delivery/http/middleware"
	"career-advisor/internal/pkg/response"
	"career-advisor/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc        usecase.RecommendationUsecase
	rateLimit fiber.Handler
}

// NewRecommendationHandler builds the handler; rateLimit may be nil.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, rateLimit fiber.Handler) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, rateLimit: rateLimit}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	if h.rateLimit != nil {
		r.Post("/recommend", h.rateLimit, h.Recommend)
		return
	}
	r.Post("/recommend", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageSkillsMissing, nil)
	}

	var req dto.RecommendationRequest
	if err := c.App().Config().JSONDecoder(body, &req); err != nil || req.Skills == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageSkillsMissing, err)
	}

	rec, err := h.uc.Recommend(c.Context(), *req.Skills)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, dto.RecommendationResponse{
		RecommendationID:    rec.ID.String(),
		CareerID:            string(rec.CareerID),
		UserSkills:          rec.Skills,
		CareerPath:          rec.Title,
		Description:         rec.Description,
		NextSteps:           rec.NextSteps,
		SalaryRange:         rec.SalaryRange,
		JobGrowth:           rec.JobGrowth,
		PersonalizedMessage: rec.Message,
		ConfidenceScore:     rec.Confidence,
		Status:              dto.StatusSuccess,
	})
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSkillsEmpty):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageSkillsEmpty, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", err)
	}
}
