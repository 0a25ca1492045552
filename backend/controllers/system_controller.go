package controllers

import (
	"vibevoice/backend/config"
	"vibevoice/backend/inference"
	"vibevoice/backend/models"
	"vibevoice/backend/progress"
	"vibevoice/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type SystemController struct {
	Engine  *progress.Engine
	Gateway *inference.Gateway
	Cfg     *config.Config
	Usage   func() (utils.SystemUsage, error)
}

func NewSystemController(engine *progress.Engine, gw *inference.Gateway, cfg *config.Config) *SystemController {
	return &SystemController{Engine: engine, Gateway: gw, Cfg: cfg, Usage: utils.GetSystemUsage}
}

// Root godoc
// @Summary Service descriptor
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (sc *SystemController) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":  "VibeVoice API is running! 🚀",
		"features": []string{"Chat", "Voice", "Thought Organization", "Daily Briefing"},
		"models":   sc.modelNames(),
	})
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (sc *SystemController) Health(c *fiber.Ctx) error {
	snap := sc.Engine.Snapshot()
	resp := models.HealthResponse{
		Status:       "healthy",
		ModelsLoaded: sc.Gateway.ModelsLoaded(),
		StreakCount:  snap.StreakCount,
		BadgeCount:   len(snap.EarnedBadges),
	}

	// host metrics are informational; a failure does not make the service unhealthy
	if sc.Usage != nil {
		if usage, err := sc.Usage(); err == nil {
			resp.System = &usage
		} else if sc.Gateway.Logger != nil {
			sc.Gateway.Logger.Printf("system usage unavailable: %v", err)
		}
	}

	return c.JSON(resp)
}

func (sc *SystemController) modelNames() fiber.Map {
	names := fiber.Map{"chat": "disabled", "stt": "disabled", "tts": "disabled"}
	if sc.Gateway.Text != nil && sc.Cfg != nil {
		names["chat"] = sc.Cfg.OllamaModel
	}
	if sc.Gateway.STT != nil {
		names["stt"] = "Google Cloud Speech-to-Text"
	}
	if sc.Gateway.TTS != nil {
		names["tts"] = "Google Cloud Text-to-Speech"
	}
	return names
}
