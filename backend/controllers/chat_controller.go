package controllers

import (
	"encoding/base64"
	"io"
	"strings"
	"time"

	"vibevoice/backend/config"
	"vibevoice/backend/inference"
	"vibevoice/backend/models"
	"vibevoice/backend/progress"
	"vibevoice/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ChatController struct {
	Engine  *progress.Engine
	Gateway *inference.Gateway
	Cfg     *config.Config
	Now     func() time.Time
}

func NewChatController(engine *progress.Engine, gw *inference.Gateway, cfg *config.Config) *ChatController {
	return &ChatController{Engine: engine, Gateway: gw, Cfg: cfg, Now: time.Now}
}

// Chat godoc
// @Summary Chat with the assistant
// @Description Generates a reply; voice and hybrid modes also return base64 WAV audio
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /chat [post]
func (cc *ChatController) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	req.ApplyDefaults()

	errs := map[string]string{}
	if strings.TrimSpace(req.Message) == "" {
		errs["message"] = "message is required"
	}
	if !req.Mode.Valid() {
		errs["mode"] = "mode must be one of chat, voice, hybrid"
	}
	if len(errs) > 0 {
		return utils.ValidationError(c, errs)
	}

	cc.Engine.RecordInteraction(cc.Now())
	cc.Engine.IncrementCounter(progress.MetricTotalInteractions, 1)

	ctx := c.UserContext()
	reply := cc.Gateway.GenerateText(ctx, req.Message, req.Persona)

	var audio *string
	if req.Mode.Speaks() {
		// empty audio means nothing was produced; it is not a voice interaction
		if wav := cc.Gateway.SynthesizeSpeech(ctx, reply, req.VoiceName); len(wav) > 0 {
			encoded := base64.StdEncoding.EncodeToString(wav)
			audio = &encoded
			cc.Engine.IncrementCounter(progress.MetricVoiceInteractions, 1)
		}
	}

	newBadges := []string{}
	if latest, ok := cc.Engine.LatestBadge(); ok {
		newBadges = append(newBadges, latest)
	}

	return c.JSON(models.ChatResponse{
		Response:    reply,
		AudioBase64: audio,
		Mode:        req.Mode,
		StreakCount: cc.Engine.Snapshot().StreakCount,
		NewBadges:   newBadges,
	})
}

// Transcribe godoc
// @Summary Transcribe audio
// @Description Converts an uploaded audio file to text. Does not affect progress.
// @Tags speech
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file (WAV or FLAC)"
// @Success 200 {object} models.TranscribeResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /transcribe [post]
func (cc *ChatController) Transcribe(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "Audio file is required")
	}

	f, err := file.Open()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	defer f.Close()

	audio, err := io.ReadAll(f)
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return c.JSON(models.TranscribeResponse{
		Text: cc.Gateway.Transcribe(c.UserContext(), audio),
	})
}
