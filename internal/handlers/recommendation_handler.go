package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davyken/Job-Fusion/internal/services"
)

type RecommendationHandler struct {
	pipeline services.CVPipelineService
}

func NewRecommendationHandler(pipeline services.CVPipelineService) *RecommendationHandler {
	return &RecommendationHandler{pipeline: pipeline}
}

// HandleGetRecommendations handles GET /recommendations. The scorer never
// fails on model outages; an error here means the job catalog itself was
// unreachable.
func (h *RecommendationHandler) HandleGetRecommendations(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing X-User-Id header",
		})
	}

	results, err := h.pipeline.Recommend(c.UserContext(), uid)
	if err != nil {
		return c.Status(statusFromError(err)).JSON(fiber.Map{
			"error": "failed to load recommendations",
		})
	}

	return c.JSON(fiber.Map{
		"recommendations": results,
		"count":           len(results),
	})
}
