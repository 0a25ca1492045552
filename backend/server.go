package main

import (
	"context"
	"io"
	"log"

	"vibevoice/backend/config"
	"vibevoice/backend/inference"
	"vibevoice/backend/middleware"
	"vibevoice/backend/progress"
	"vibevoice/backend/routes"
	"vibevoice/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// newApp builds the Fiber app with middleware and routes.
func newApp(cfg *config.Config, engine *progress.Engine, gw *inference.Gateway, logger *log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "VibeVoice",
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler: utils.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	routes.SetupRoutes(app, engine, gw, cfg)
	return app
}

// buildGateway creates the configured providers. A provider that cannot be
// created is left nil so its calls degrade to fallback values.
func buildGateway(ctx context.Context, cfg *config.Config, catalog *config.Catalog, logger *log.Logger) (*inference.Gateway, []io.Closer) {
	gw := &inference.Gateway{
		Personas: catalog,
		Voices:   catalog,
		Logger:   logger,
	}
	var closers []io.Closer

	switch cfg.LLMProvider {
	case "ollama":
		gw.Text = inference.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, cfg.LLMTimeout)
	case "none", "":
	default:
		logger.Printf("unknown LLM_PROVIDER %q, text generation disabled", cfg.LLMProvider)
	}

	switch cfg.SpeechProvider {
	case "google":
		stt, err := inference.NewGoogleTranscriber(ctx, cfg.GoogleCredentialsFile, cfg.SpeechLanguage)
		if err != nil {
			logger.Printf("speech-to-text disabled: %v", err)
		} else {
			gw.STT = stt
			closers = append(closers, stt)
		}

		tts, err := inference.NewGoogleSynthesizer(ctx, cfg.GoogleCredentialsFile, cfg.SpeechLanguage)
		if err != nil {
			logger.Printf("text-to-speech disabled: %v", err)
		} else {
			gw.TTS = tts
			closers = append(closers, tts)
		}
	case "none", "":
	default:
		logger.Printf("unknown SPEECH_PROVIDER %q, speech disabled", cfg.SpeechProvider)
	}

	return gw, closers
}
