package engine

import "strings"

// ----------------------
//       INTENTS
// ----------------------

// Intent is the classified purpose of a user utterance.
type Intent string

const (
	IntentAppHelp             Intent = "app_help"
	IntentUnderstandingCheck  Intent = "understanding_check"
	IntentWhySuggestion       Intent = "why_suggestion"
	IntentProjectApproach     Intent = "project_approach"
	IntentTextCommands        Intent = "text_commands"
	IntentProjectOrganization Intent = "project_organization"
	IntentTextProcessing      Intent = "text_processing"
	IntentTaskSelection       Intent = "task_selection"
	IntentOverwhelm           Intent = "overwhelm"
	IntentProcrastination     Intent = "procrastination"
	IntentFocus               Intent = "focus"
	IntentEnergyLow           Intent = "energy_low"
	IntentEnergyHigh          Intent = "energy_high"
	IntentMotivation          Intent = "motivation"
	IntentTimeManagement      Intent = "time_management"
	IntentEmotionalState      Intent = "emotional_state"
	IntentProgressCheck       Intent = "progress_check"
	IntentStrategyRequest     Intent = "strategy_request"
	IntentBreakRequest        Intent = "break_request"
	IntentGreeting            Intent = "greeting"
	IntentGratitude           Intent = "gratitude"
	IntentCelebration         Intent = "celebration"
	IntentConfusion           Intent = "confusion"
	IntentFarewell            Intent = "farewell"

	// IntentUnclear is the default when nothing matched.
	IntentUnclear Intent = "unclear"
)

// ----------------------
//   SEMANTIC CONTEXT
// ----------------------

// Signal is one of the fixed keyword-group categories.
type Signal string

const (
	SignalUrgency    Signal = "urgency"
	SignalDifficulty Signal = "difficulty"
	SignalEmotion    Signal = "emotion"
	SignalTime       Signal = "time"
	SignalEnergy     Signal = "energy"
)

// SemanticContext maps a signal to a normalized score in [0,1].
// Groups with a zero raw count are omitted entirely.
type SemanticContext map[Signal]float64

// IntentResult is the outcome of one classification. Never persisted.
type IntentResult struct {
	Intent     Intent          `json:"intent"`
	Confidence float64         `json:"confidence"`
	Context    SemanticContext `json:"context,omitempty"`
}

// ----------------------
//        MOOD
// ----------------------

// MoodLabel is one of four fixed emotional/energy archetypes.
type MoodLabel string

const (
	MoodFrozen      MoodLabel = "frozen"
	MoodDisoriented MoodLabel = "disoriented"
	MoodFlowing     MoodLabel = "flowing"
	MoodInspired    MoodLabel = "inspired"
)

// MoodState is supplied by the mood provider; read-only here.
type MoodState struct {
	Label           MoodLabel `json:"label"`
	SuggestedRitual string    `json:"suggested_ritual"`
}

// ParseMoodLabel validates a client-supplied mood label.
func ParseMoodLabel(s string) (MoodLabel, bool) {
	switch MoodLabel(strings.ToLower(strings.TrimSpace(s))) {
	case MoodFrozen:
		return MoodFrozen, true
	case MoodDisoriented:
		return MoodDisoriented, true
	case MoodFlowing:
		return MoodFlowing, true
	case MoodInspired:
		return MoodInspired, true
	}
	return "", false
}

// ----------------------
//        TASKS
// ----------------------

// TaskType describes what kind of work a task is.
type TaskType string

const (
	TypeAction        TaskType = "action"
	TypeReflection    TaskType = "reflection"
	TypeCommunication TaskType = "communication"
	TypeCreative      TaskType = "creative"
	TypeOrganizing    TaskType = "organizing"
)

// ParseTaskType validates a client-supplied task type.
func ParseTaskType(s string) (TaskType, bool) {
	switch TaskType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeAction:
		return TypeAction, true
	case TypeReflection:
		return TypeReflection, true
	case TypeCommunication:
		return TypeCommunication, true
	case TypeCreative:
		return TypeCreative, true
	case TypeOrganizing:
		return TypeOrganizing, true
	}
	return "", false
}

// EnergyTier is one of five fixed levels of effort a task demands.
type EnergyTier string

const (
	EnergyVeryLow  EnergyTier = "very_low"
	EnergyLow      EnergyTier = "low"
	EnergyMedium   EnergyTier = "medium"
	EnergyHigh     EnergyTier = "high"
	EnergyVeryHigh EnergyTier = "very_high"
)

// ParseEnergyTier validates an energy tier. The mobile client historically
// sent Italian values, so those aliases stay accepted.
func ParseEnergyTier(s string) (EnergyTier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "very_low", "molto_bassa":
		return EnergyVeryLow, true
	case "low", "bassa":
		return EnergyLow, true
	case "medium", "media":
		return EnergyMedium, true
	case "high", "alta":
		return EnergyHigh, true
	case "very_high", "molto_alta":
		return EnergyVeryHigh, true
	}
	return "", false
}

// Task is the read-only snapshot the engine scores. DueDate stays a raw
// string: the client is not reliable about formats, and an unparseable date
// must only cost the task its urgency bonus, never fail the request.
type Task struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Type           TaskType   `json:"type"`
	EnergyRequired EnergyTier `json:"energy_required"`
	DueDate        string     `json:"due_date,omitempty"`
	XPReward       int        `json:"xp_reward"`
	Status         string     `json:"status"`
}

// ScoredTask carries the transient 0-100 predicted score. Not persisted.
type ScoredTask struct {
	Task
	PredictedScore float64 `json:"predicted_score"`
}

// ----------------------
//    REQUEST CONTEXT
// ----------------------

// Context is the ambient snapshot sent along with an utterance.
// Every field is optional; absence just skips the related branch.
type Context struct {
	Mood            *MoodState `json:"mood,omitempty"`
	EnergyLevel     int        `json:"energy_level,omitempty"` // 1-10, 0 = unset
	FocusModeActive bool       `json:"focus_mode_active,omitempty"`
	ActiveTaskCount int        `json:"active_task_count,omitempty"`
	TimeOfDay       string     `json:"time_of_day,omitempty"` // morning|afternoon|evening|night
}

// Request is one assistant turn.
type Request struct {
	Utterance string  `json:"utterance"`
	Context   Context `json:"context"`
	Tasks     []Task  `json:"tasks"`
}

// Response is what the rendering layer displays. SuggestedAction is only set
// when confidence clears the action threshold; the engine itself performs no
// side effects.
type Response struct {
	Text               string  `json:"text"`
	SuggestedAction    string  `json:"suggested_action,omitempty"`
	Confidence         float64 `json:"confidence"`
	Intent             Intent  `json:"intent"`
	RecommendedTaskIDs []int   `json:"recommended_task_ids,omitempty"`
	UrgentTaskIDs      []int   `json:"urgent_task_ids,omitempty"`
}
