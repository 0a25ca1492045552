package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode(t *testing.T) {
	tests := []struct {
		mode   Mode
		valid  bool
		speaks bool
	}{
		{ModeChat, true, false},
		{ModeVoice, true, true},
		{ModeHybrid, true, true},
		{"", false, false},
		{"VOICE", false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.mode.Valid(), string(tt.mode))
		assert.Equal(t, tt.speaks, tt.mode.Speaks(), string(tt.mode))
	}
}

func TestRequestDefaults(t *testing.T) {
	chat := ChatRequest{Message: "hi"}
	chat.ApplyDefaults()
	assert.Equal(t, ChatRequest{Message: "hi", Mode: ModeChat, Persona: "friend", VoiceName: "Emma"}, chat)

	thought := ThoughtRequest{BrainDump: "x"}
	thought.ApplyDefaults()
	assert.Equal(t, "coach", thought.Persona)

	briefing := DailyBriefingRequest{Persona: "executive"}
	briefing.ApplyDefaults()
	assert.Equal(t, "executive", briefing.Persona)
}
