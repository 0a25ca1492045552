package controllers

import (
	"vibevoice/backend/config"
	"vibevoice/backend/models"
	"vibevoice/backend/progress"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Engine *progress.Engine
	Cfg    *config.Config
}

func NewProgressController(engine *progress.Engine, cfg *config.Config) *ProgressController {
	return &ProgressController{Engine: engine, Cfg: cfg}
}

// GetStats godoc
// @Summary Get user stats
// @Description Returns streak, earned badges and interaction counters
// @Tags progress
// @Produce json
// @Success 200 {object} progress.Snapshot
// @Router /stats [get]
func (pc *ProgressController) GetStats(c *fiber.Ctx) error {
	return c.JSON(pc.Engine.Snapshot())
}

// GetBadges godoc
// @Summary Get badge progress
// @Description Returns every badge in catalog order with its earned status
// @Tags progress
// @Produce json
// @Success 200 {object} models.BadgesResponse
// @Router /badges [get]
func (pc *ProgressController) GetBadges(c *fiber.Ctx) error {
	return c.JSON(models.BadgesResponse{
		Badges: pc.Engine.BadgeProgress(),
	})
}
