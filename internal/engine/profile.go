package engine

import "time"

// BehavioralProfile is the session-local memory of a user's preferences and
// completion patterns. It only grows during a session; there is no decay, and
// the host may throw it away at any time.
type BehavioralProfile struct {
	PreferredTaskTypes      []TaskType `json:"preferred_task_types"`
	PeakEnergyHours         []int      `json:"peak_energy_hours"`
	AverageTaskDuration     float64    `json:"average_task_duration"`
	ProcrastinationTriggers []string   `json:"procrastination_triggers"`
	CompletionRate          float64    `json:"completion_rate"`
}

func NewProfile() *BehavioralProfile {
	return &BehavioralProfile{
		PreferredTaskTypes:      []TaskType{},
		PeakEnergyHours:         []int{},
		ProcrastinationTriggers: []string{},
	}
}

// RecordOutcome updates the profile after a completed or abandoned task.
//
// The duration update is a two-point running average, (old+new)/2, which
// weights the latest sample at 50%. That recency bias is intentional and
// ranking depends on it; do not replace it with a cumulative mean.
func (p *BehavioralProfile) RecordOutcome(task Task, timeSpentMinutes float64, succeeded bool, now time.Time) {
	if succeeded {
		if !p.PrefersType(task.Type) {
			p.PreferredTaskTypes = append(p.PreferredTaskTypes, task.Type)
		}
		hour := now.Hour()
		if !containsInt(p.PeakEnergyHours, hour) {
			p.PeakEnergyHours = append(p.PeakEnergyHours, hour)
		}
	}

	p.AverageTaskDuration = (p.AverageTaskDuration + timeSpentMinutes) / 2

	if succeeded {
		p.CompletionRate += 0.10
		if p.CompletionRate > 1.0 {
			p.CompletionRate = 1.0
		}
	} else {
		p.CompletionRate -= 0.05
		if p.CompletionRate < 0 {
			p.CompletionRate = 0
		}
	}
}

// RecordTrigger remembers a phrase the user associates with putting work off.
func (p *BehavioralProfile) RecordTrigger(trigger string) {
	if trigger == "" {
		return
	}
	for _, t := range p.ProcrastinationTriggers {
		if t == trigger {
			return
		}
	}
	p.ProcrastinationTriggers = append(p.ProcrastinationTriggers, trigger)
}

// PrefersType reports whether the type is already a known preference.
func (p *BehavioralProfile) PrefersType(t TaskType) bool {
	for _, pt := range p.PreferredTaskTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Export is the inspection shape for the /assistant/profile endpoint.
func (p *BehavioralProfile) Export() map[string]any {
	types := make([]string, 0, len(p.PreferredTaskTypes))
	for _, t := range p.PreferredTaskTypes {
		types = append(types, string(t))
	}
	return map[string]any{
		"preferred_task_types":  types,
		"peak_energy_hours":     p.PeakEnergyHours,
		"average_task_duration": p.AverageTaskDuration,
		"completion_rate":       p.CompletionRate,
	}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
