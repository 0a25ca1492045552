// Package inference talks to the model backends used for chat, speech
// recognition and speech synthesis.
package inference

import (
	"context"
	"errors"
	"log"
	"strings"
)

// FallbackReply is returned when text generation fails.
const FallbackReply = "I'm here to help! Tell me more about what's on your mind."

var ErrNoProvider = errors.New("provider not configured")

type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, prompt string) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type SpeechSynthesizer interface {
	SynthesizeSpeech(ctx context.Context, text, voice string) ([]byte, error)
}

// PersonaResolver maps a persona name to its system prompt.
type PersonaResolver interface {
	Persona(name string) (resolved string, systemPrompt string)
}

// VoiceResolver maps a voice alias to a provider voice name.
type VoiceResolver interface {
	Voice(alias string) string
}

// Gateway degrades provider failures to fallback values. Callers never see
// an error from it.
type Gateway struct {
	Text     TextGenerator
	STT      Transcriber
	TTS      SpeechSynthesizer
	Personas PersonaResolver
	Voices   VoiceResolver
	Logger   *log.Logger
}

// GenerateText answers prompt in the style of persona, or FallbackReply.
func (g *Gateway) GenerateText(ctx context.Context, prompt, persona string) string {
	if g.Text == nil {
		g.logf("text generation skipped: %v", ErrNoProvider)
		return FallbackReply
	}

	var systemPrompt string
	if g.Personas != nil {
		_, systemPrompt = g.Personas.Persona(persona)
	}

	reply, err := g.Text.GenerateText(ctx, systemPrompt, prompt)
	if err != nil {
		g.logf("text generation error: %v", err)
		return FallbackReply
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return FallbackReply
	}
	return reply
}

// Transcribe returns the recognized text, or "" on failure.
func (g *Gateway) Transcribe(ctx context.Context, audio []byte) string {
	if g.STT == nil {
		g.logf("transcription skipped: %v", ErrNoProvider)
		return ""
	}
	if len(audio) == 0 {
		return ""
	}

	text, err := g.STT.Transcribe(ctx, audio)
	if err != nil {
		g.logf("transcription error: %v", err)
		return ""
	}
	return strings.TrimSpace(text)
}

// SynthesizeSpeech returns WAV audio, or nil when no audio was produced.
func (g *Gateway) SynthesizeSpeech(ctx context.Context, text, voice string) []byte {
	if g.TTS == nil {
		g.logf("speech synthesis skipped: %v", ErrNoProvider)
		return nil
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if g.Voices != nil {
		voice = g.Voices.Voice(voice)
	}

	audio, err := g.TTS.SynthesizeSpeech(ctx, text, voice)
	if err != nil {
		g.logf("TTS error: %v", err)
		return nil
	}
	return audio
}

// ModelsLoaded reports whether every provider is configured.
func (g *Gateway) ModelsLoaded() bool {
	return g.Text != nil && g.STT != nil && g.TTS != nil
}

func (g *Gateway) logf(format string, args ...interface{}) {
	if g.Logger != nil {
		g.Logger.Printf(format, args...)
	}
}
