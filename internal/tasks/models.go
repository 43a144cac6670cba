package tasks

import (
	"time"

	"mente-assistant-backend/internal/engine"
)

// Task is the persisted row. due_date stays TEXT end to end: the engine
// tolerates unparseable values and we don't want the DB layer to be stricter
// than the scorer.
type Task struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Type           string    `json:"type"`
	EnergyRequired string    `json:"energy_required"`
	DueDate        string    `json:"due_date,omitempty"`
	XPReward       int       `json:"xp_reward"`
	Status         string    `json:"status"` // active | done | abandoned
	CreatedAt      time.Time `json:"created_at"`
}

// ToEngine converts a row into the shape the recommendation core works with.
func (t Task) ToEngine() engine.Task {
	typ, _ := engine.ParseTaskType(t.Type)
	tier, _ := engine.ParseEnergyTier(t.EnergyRequired)
	return engine.Task{
		ID:             t.ID,
		Title:          t.Title,
		Type:           typ,
		EnergyRequired: tier,
		DueDate:        t.DueDate,
		XPReward:       t.XPReward,
		Status:         t.Status,
	}
}
