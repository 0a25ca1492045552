package routes

import (
	"vibevoice/backend/config"
	"vibevoice/backend/controllers"
	"vibevoice/backend/inference"
	"vibevoice/backend/progress"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, engine *progress.Engine, gw *inference.Gateway, cfg *config.Config) {
	// System routes
	systemController := controllers.NewSystemController(engine, gw, cfg)
	app.Get("/", systemController.Root)
	app.Get("/health", systemController.Health)

	// Chat and speech routes
	chatController := controllers.NewChatController(engine, gw, cfg)
	app.Post("/chat", chatController.Chat)
	app.Post("/transcribe", chatController.Transcribe)

	// Thought routes
	thoughtController := controllers.NewThoughtController(engine, gw, cfg)
	app.Post("/organize-thought", thoughtController.OrganizeThought)
	app.Post("/daily-briefing", thoughtController.DailyBriefing)

	// Progress routes
	progressController := controllers.NewProgressController(engine, cfg)
	app.Get("/stats", progressController.GetStats)
	app.Get("/badges", progressController.GetBadges)
}
