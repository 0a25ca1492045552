package controllers

import (
	"fmt"
	"strings"
	"time"

	"vibevoice/backend/config"
	"vibevoice/backend/inference"
	"vibevoice/backend/models"
	"vibevoice/backend/progress"
	"vibevoice/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ThoughtController struct {
	Engine  *progress.Engine
	Gateway *inference.Gateway
	Cfg     *config.Config
	Now     func() time.Time
}

func NewThoughtController(engine *progress.Engine, gw *inference.Gateway, cfg *config.Config) *ThoughtController {
	return &ThoughtController{Engine: engine, Gateway: gw, Cfg: cfg, Now: time.Now}
}

// OrganizeThought godoc
// @Summary Organize a brain dump
// @Description Turns free-form thoughts into a short action plan
// @Tags thoughts
// @Accept json
// @Produce json
// @Param request body models.ThoughtRequest true "Brain dump"
// @Success 200 {object} models.ThoughtResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /organize-thought [post]
func (tc *ThoughtController) OrganizeThought(c *fiber.Ctx) error {
	var req models.ThoughtRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	req.ApplyDefaults()
	if strings.TrimSpace(req.BrainDump) == "" {
		return utils.ValidationError(c, map[string]string{"brain_dump": "brain_dump is required"})
	}

	prompt, err := renderPrompt(organizeThoughtPrompt, req)
	if err != nil {
		return utils.InternalServerError(c, fmt.Sprintf("failed to build prompt: %v", err))
	}

	tc.Engine.RecordInteraction(tc.Now())
	tc.Engine.IncrementCounter(progress.MetricTotalInteractions, 1)
	tc.Engine.IncrementCounter(progress.MetricThoughtsOrganized, 1)

	plan := tc.Gateway.GenerateText(c.UserContext(), prompt, req.Persona)

	snap := tc.Engine.Snapshot()
	return c.JSON(models.ThoughtResponse{
		OrganizedPlan:     plan,
		StreakCount:       snap.StreakCount,
		ThoughtsOrganized: snap.ThoughtsOrganized,
	})
}

// DailyBriefing godoc
// @Summary Get today's briefing
// @Description Generates a motivating briefing for the current date
// @Tags thoughts
// @Accept json
// @Produce json
// @Param request body models.DailyBriefingRequest false "Persona"
// @Success 200 {object} models.DailyBriefingResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /daily-briefing [post]
func (tc *ThoughtController) DailyBriefing(c *fiber.Ctx) error {
	var req models.DailyBriefingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}
	}
	req.ApplyDefaults()

	now := tc.Now()
	if tc.Cfg != nil && tc.Cfg.Timezone != nil {
		now = now.In(tc.Cfg.Timezone)
	}
	day := now.Format(BriefingDateLayout)

	prompt, err := renderPrompt(dailyBriefingPrompt, struct{ Day string }{day})
	if err != nil {
		return utils.InternalServerError(c, fmt.Sprintf("failed to build prompt: %v", err))
	}

	tc.Engine.RecordInteraction(now)
	tc.Engine.IncrementCounter(progress.MetricBriefingsViewed, 1)
	tc.Engine.EvaluateBadge(progress.BadgeEarlyBird)

	briefing := tc.Gateway.GenerateText(c.UserContext(), prompt, req.Persona)

	return c.JSON(models.DailyBriefingResponse{
		Briefing:    briefing,
		Date:        day,
		StreakCount: tc.Engine.Snapshot().StreakCount,
	})
}
