package engine

import (
	"log"
	"math"
	"sort"
	"time"
)

const (
	baseScore = 50.0
	minScore  = 0.0
	maxScore  = 100.0

	urgentWindow = 24 * time.Hour
)

// moodEnergyMatrix is the emotional core of the ranking: a fixed signed
// adjustment per (mood, energy tier) pair. A frozen user must never be pushed
// toward heavy tasks, a flowing one should ride the wave.
var moodEnergyMatrix = map[MoodLabel]map[EnergyTier]float64{
	MoodFrozen: {
		EnergyVeryLow:  +30,
		EnergyLow:      +15,
		EnergyMedium:   -10,
		EnergyHigh:     -30,
		EnergyVeryHigh: -40,
	},
	MoodDisoriented: {
		EnergyVeryLow:  +20,
		EnergyLow:      +25,
		EnergyMedium:   +10,
		EnergyHigh:     -15,
		EnergyVeryHigh: -25,
	},
	MoodFlowing: {
		EnergyVeryLow:  -5,
		EnergyLow:      +5,
		EnergyMedium:   +20,
		EnergyHigh:     +35,
		EnergyVeryHigh: +40,
	},
	MoodInspired: {
		EnergyVeryLow:  0,
		EnergyLow:      +10,
		EnergyMedium:   +25,
		EnergyHigh:     +30,
		EnergyVeryHigh: +35,
	},
}

// MoodEnergyDelta returns the fixed matrix adjustment for a pair.
func MoodEnergyDelta(mood MoodLabel, energy EnergyTier) float64 {
	return moodEnergyMatrix[mood][energy]
}

// Due-date layouts the clients actually send.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDueDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dueDateBonus picks the closest bracket: +25 within a day, +15 within three,
// +5 within a week. Unparseable dates just skip the bonus.
func dueDateBonus(task Task, now time.Time) float64 {
	due, ok := parseDueDate(task.DueDate)
	if !ok {
		if task.DueDate != "" {
			log.Printf("[WARN] unparseable due_date on task %d: %q", task.ID, task.DueDate)
		}
		return 0
	}

	until := due.Sub(now)
	switch {
	case until <= 24*time.Hour:
		return 25
	case until <= 72*time.Hour:
		return 15
	case until <= 7*24*time.Hour:
		return 5
	}
	return 0
}

func xpBonus(task Task) float64 {
	return math.Min(float64(task.XPReward)/10, 15)
}

// scoreTask sums the independent adjustments on top of the neutral base and
// clamps the result into [0,100].
func scoreTask(task Task, mood *MoodState, profile *BehavioralProfile, now time.Time) float64 {
	score := baseScore

	score += dueDateBonus(task, now)
	score += xpBonus(task)

	if profile != nil && profile.PrefersType(task.Type) {
		score += 10
	}

	if mood != nil {
		score += MoodEnergyDelta(mood.Label, task.EnergyRequired)
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

// RankTasks scores every task and returns them sorted by predicted score,
// descending. The sort is stable: tasks tied on score keep their input order.
// The input slice is treated as an immutable snapshot.
func RankTasks(tasks []Task, mood *MoodState, profile *BehavioralProfile, now time.Time) []ScoredTask {
	ranked := make([]ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		ranked = append(ranked, ScoredTask{
			Task:           t,
			PredictedScore: scoreTask(t, mood, profile, now),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PredictedScore > ranked[j].PredictedScore
	})

	return ranked
}

// IsUrgent reports whether a task pre-empts the scored ranking entirely:
// overdue, or due within 24 hours, and not already done. This is a priority
// override, not a score boost.
func IsUrgent(task Task, now time.Time) bool {
	if task.Status == "done" {
		return false
	}
	due, ok := parseDueDate(task.DueDate)
	if !ok {
		return false
	}
	return due.Before(now) || due.Sub(now) <= urgentWindow
}

// SplitUrgent partitions a snapshot into the urgent bucket (input order
// preserved) and the rest.
func SplitUrgent(tasks []Task, now time.Time) (urgent, rest []Task) {
	for _, t := range tasks {
		if IsUrgent(t, now) {
			urgent = append(urgent, t)
		} else {
			rest = append(rest, t)
		}
	}
	return urgent, rest
}
