package models

type Mode string

const (
	ModeChat   Mode = "chat"
	ModeVoice  Mode = "voice"
	ModeHybrid Mode = "hybrid"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeChat, ModeVoice, ModeHybrid:
		return true
	}
	return false
}

// Speaks reports whether replies in this mode carry synthesized audio.
func (m Mode) Speaks() bool {
	return m == ModeVoice || m == ModeHybrid
}

type ChatRequest struct {
	Message   string `json:"message" example:"I can't focus today"`
	Mode      Mode   `json:"mode" example:"chat" enums:"chat,voice,hybrid"`
	Persona   string `json:"persona" example:"friend" enums:"coach,friend,executive"`
	VoiceName string `json:"voice_name" example:"Emma"`
}

// ApplyDefaults fills omitted fields.
func (r *ChatRequest) ApplyDefaults() {
	if r.Mode == "" {
		r.Mode = ModeChat
	}
	if r.Persona == "" {
		r.Persona = "friend"
	}
	if r.VoiceName == "" {
		r.VoiceName = "Emma"
	}
}

type ChatResponse struct {
	Response    string   `json:"response"`
	AudioBase64 *string  `json:"audio_base64"`
	Mode        Mode     `json:"mode"`
	StreakCount int      `json:"streak_count"`
	NewBadges   []string `json:"new_badges"`
}

type TranscribeResponse struct {
	Text string `json:"text"`
}
