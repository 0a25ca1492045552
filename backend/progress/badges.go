package progress

// Metric names a value of UserProgress that badges can be tied to.
type Metric string

const (
	MetricTotalInteractions Metric = "total_interactions"
	MetricStreakCount       Metric = "streak_count"
	MetricThoughtsOrganized Metric = "thoughts_organized"
	MetricVoiceInteractions Metric = "voice_interactions"
	MetricBriefingsViewed   Metric = "briefings_viewed"
)

type BadgeID string

const (
	BadgeFirstStep     BadgeID = "first_step"
	BadgeConsistent5   BadgeID = "consistent_5"
	BadgeConsistent10  BadgeID = "consistent_10"
	BadgeThoughtMaster BadgeID = "thought_master"
	BadgeVoiceUser     BadgeID = "voice_user"
	BadgeEarlyBird     BadgeID = "early_bird"
)

// Badge is a static catalog entry.
type Badge struct {
	ID          BadgeID `json:"id"`
	Name        string  `json:"name"`
	Threshold   int     `json:"requirement"`
	Description string  `json:"description"`
	Metric      Metric  `json:"metric"`
}

// Catalog lists every badge in declaration order. Reports iterate it in this order.
var Catalog = []Badge{
	{ID: BadgeFirstStep, Name: "🎯 First Step", Threshold: 1, Description: "Your first interaction", Metric: MetricTotalInteractions},
	{ID: BadgeConsistent5, Name: "🔥 On Fire", Threshold: 5, Description: "5-day streak", Metric: MetricStreakCount},
	{ID: BadgeConsistent10, Name: "⚡ Unstoppable", Threshold: 10, Description: "10-day streak", Metric: MetricStreakCount},
	{ID: BadgeThoughtMaster, Name: "🧠 Thought Master", Threshold: 10, Description: "Organized 10 thoughts", Metric: MetricThoughtsOrganized},
	{ID: BadgeVoiceUser, Name: "🎤 Voice Power", Threshold: 10, Description: "10 voice interactions", Metric: MetricVoiceInteractions},
	{ID: BadgeEarlyBird, Name: "🌅 Early Bird", Threshold: 1, Description: "Morning briefing", Metric: MetricBriefingsViewed},
}

// LookupBadge returns the catalog entry for id.
func LookupBadge(id BadgeID) (Badge, bool) {
	for _, b := range Catalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
