package engine

import "time"

// Emotional tags derived from intents, used to track the session's trend.
var intentEmotions = map[Intent]string{
	IntentOverwhelm:       "overwhelmed",
	IntentEmotionalState:  "emotional",
	IntentEnergyLow:       "tired",
	IntentProcrastination: "avoidant",
	IntentMotivation:      "unmotivated",
	IntentEnergyHigh:      "energized",
	IntentCelebration:     "proud",
}

// SessionInsights accumulates for the life of one chat session and is reset
// when the session ends. It powers soft, proactive nudges; never a blocker.
type SessionInsights struct {
	StartTime        time.Time `json:"start_time"`
	MessageCount     int       `json:"message_count"`
	DominantEmotions []string  `json:"dominant_emotions"`
	SuggestedActions []string  `json:"suggested_actions"`

	emotionCounts map[string]int
	intentCounts  map[Intent]int
	nudgesGiven   map[string]bool
}

func NewSessionInsights(start time.Time) *SessionInsights {
	return &SessionInsights{
		StartTime:        start,
		DominantEmotions: []string{},
		SuggestedActions: []string{},
		emotionCounts:    map[string]int{},
		intentCounts:     map[Intent]int{},
		nudgesGiven:      map[string]bool{},
	}
}

// RecordMessage folds one classified message into the rolling session state.
func (s *SessionInsights) RecordMessage(result IntentResult) {
	s.MessageCount++
	s.intentCounts[result.Intent]++

	if emotion, ok := intentEmotions[result.Intent]; ok {
		s.emotionCounts[emotion]++
		s.refreshDominant()
	}
}

func (s *SessionInsights) refreshDominant() {
	s.DominantEmotions = s.DominantEmotions[:0]
	for emotion, count := range s.emotionCounts {
		if count >= 2 {
			s.DominantEmotions = append(s.DominantEmotions, emotion)
		}
	}
}

// Nudge identifiers, each given at most once per session.
const (
	nudgeLongSession  = "long_session"
	nudgeHeavyEmotion = "heavy_emotion"
	nudgeTaskLoop     = "task_loop"
)

// NextNudge returns at most one new insight sentence, or "" when the session
// has nothing to say. Each nudge fires once per session.
func (s *SessionInsights) NextNudge(now time.Time) string {
	type candidate struct {
		key  string
		when bool
		text string
	}

	candidates := []candidate{
		{
			nudgeLongSession,
			now.Sub(s.StartTime) > 45*time.Minute,
			"By the way, we've been at this for a while — a short break would not be cheating.",
		},
		{
			nudgeHeavyEmotion,
			s.emotionCounts["overwhelmed"]+s.emotionCounts["emotional"]+s.emotionCounts["tired"] >= 3,
			"I've noticed today feels heavier than usual. Being kind to yourself is also productive.",
		},
		{
			nudgeTaskLoop,
			s.intentCounts[IntentTaskSelection] >= 3,
			"You've asked me what to do a few times now — maybe the real move is committing to the last suggestion for just ten minutes.",
		},
	}

	for _, c := range candidates {
		if c.when && !s.nudgesGiven[c.key] {
			s.nudgesGiven[c.key] = true
			s.SuggestedActions = append(s.SuggestedActions, c.key)
			return c.text
		}
	}
	return ""
}
