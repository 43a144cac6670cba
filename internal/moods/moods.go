// Package moods stores daily mood check-ins and maps each mood to its
// grounding ritual. The latest check-in is what the assistant falls back to
// when a message carries no explicit mood.
package moods

import (
	"database/sql"
	"time"

	"mente-assistant-backend/internal/engine"
)

// One ritual per mood, fixed copy. The ritual text travels with the mood into
// the assistant's "Remember: ..." wrapper, so changing these changes replies.
var rituals = map[engine.MoodLabel]string{
	engine.MoodFrozen:      "three slow breaths",
	engine.MoodDisoriented: "write down the one thing pulling at you",
	engine.MoodFlowing:     "keep your streak visible",
	engine.MoodInspired:    "capture the idea before it fades",
}

// RitualFor returns the grounding ritual for a mood.
func RitualFor(label engine.MoodLabel) string {
	return rituals[label]
}

// StateFor builds the engine-facing mood snapshot.
func StateFor(label engine.MoodLabel) *engine.MoodState {
	return &engine.MoodState{
		Label:           label,
		SuggestedRitual: rituals[label],
	}
}

// Checkin is a persisted mood report.
type Checkin struct {
	ID          int       `json:"id"`
	Mood        string    `json:"mood"`
	EnergyLevel int       `json:"energy_level"` // 1-10
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Latest returns today's most recent check-in as an engine mood state, or nil
// if the user hasn't checked in today.
func Latest(dbx *sql.DB, userID int, now time.Time) (*engine.MoodState, int) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var mood string
	var energy int
	err := dbx.QueryRow(`
		SELECT mood, energy_level
		FROM mood_checkins
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT 1
	`, userID, dayStart).Scan(&mood, &energy)
	if err != nil {
		return nil, 0
	}

	label, ok := engine.ParseMoodLabel(mood)
	if !ok {
		return nil, 0
	}
	return StateFor(label), energy
}
