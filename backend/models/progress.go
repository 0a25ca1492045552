package models

import (
	"vibevoice/backend/progress"
	"vibevoice/backend/utils"
)

type ThoughtRequest struct {
	BrainDump string `json:"brain_dump" example:"groceries, call mom, finish the report"`
	Persona   string `json:"persona" example:"coach"`
}

func (r *ThoughtRequest) ApplyDefaults() {
	if r.Persona == "" {
		r.Persona = "coach"
	}
}

type ThoughtResponse struct {
	OrganizedPlan     string `json:"organized_plan"`
	StreakCount       int    `json:"streak_count"`
	ThoughtsOrganized int    `json:"thoughts_organized"`
}

type DailyBriefingRequest struct {
	Persona string `json:"persona" example:"friend"`
}

func (r *DailyBriefingRequest) ApplyDefaults() {
	if r.Persona == "" {
		r.Persona = "friend"
	}
}

type DailyBriefingResponse struct {
	Briefing    string `json:"briefing"`
	Date        string `json:"date"`
	StreakCount int    `json:"streak_count"`
}

type BadgesResponse struct {
	Badges []progress.BadgeStatus `json:"badges"`
}

type HealthResponse struct {
	Status       string             `json:"status"`
	ModelsLoaded bool               `json:"models_loaded"`
	StreakCount  int                `json:"streak_count"`
	BadgeCount   int                `json:"badge_count"`
	System       *utils.SystemUsage `json:"system,omitempty"`
}
