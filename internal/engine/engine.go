// Package engine is the local intent-classification and mood-aware
// task-recommendation core. No network, no storage, no external inference:
// everything is keyword tables, fixed matrices and session-local counters.
//
// Pipeline per utterance:
//
//	utterance → semantic context + pattern scan → intent + confidence
//	         → (if the intent wants tasks) urgent split + mood/energy ranking
//	         → composed reply {text, suggested_action?, confidence}
package engine

import (
	"math/rand"
	"time"
)

// Engine ties the classifier, scorer and composer together. Safe for a single
// logical session at a time; concurrent sessions get their own profile and
// insights, the engine itself keeps no per-user state.
type Engine struct {
	classifier *Classifier
	rng        *rand.Rand
	now        func() time.Time
}

func New() *Engine {
	return &Engine{
		classifier: NewClassifier(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
	}
}

// newDeterministic pins randomness and the clock; tests only.
func newDeterministic(seed int64, now time.Time) *Engine {
	return &Engine{
		classifier: NewClassifier(),
		rng:        rand.New(rand.NewSource(seed)),
		now:        func() time.Time { return now },
	}
}

// Classify exposes the bare classifier (no composition, no side effects).
func (e *Engine) Classify(utterance string) IntentResult {
	return e.classifier.Classify(utterance)
}

// wantsTaskSuggestions: these intents answer with a concrete task pick.
func wantsTaskSuggestions(intent Intent) bool {
	switch intent {
	case IntentTaskSelection, IntentEnergyLow, IntentEnergyHigh:
		return true
	}
	return false
}

// Respond runs the full pipeline for one turn. The profile and insights
// belong to the caller's session and are mutated in place (insights always,
// profile never — profile mutation happens on task outcomes, not on chat).
func (e *Engine) Respond(req Request, profile *BehavioralProfile, insights *SessionInsights) Response {
	result := e.classifier.Classify(req.Utterance)
	if insights != nil {
		insights.RecordMessage(result)
	}

	resp := Response{
		Intent:     result.Intent,
		Confidence: result.Confidence,
	}

	if wantsTaskSuggestions(result.Intent) {
		now := e.now()
		urgent, rest := SplitUrgent(req.Tasks, now)

		if len(urgent) > 0 {
			// Priority override: an overdue or imminent task bypasses the
			// scored ranking entirely.
			for _, t := range urgent {
				resp.UrgentTaskIDs = append(resp.UrgentTaskIDs, t.ID)
			}
			resp.Text = urgentReply(urgent[0])
			if result.Confidence > actionThreshold {
				resp.SuggestedAction = "show_urgent_task"
			}
			return resp
		}

		if len(req.Tasks) == 0 {
			resp.Text = NoTasksReply(req.Context.Mood)
			return resp
		}

		ranked := RankTasks(rest, req.Context.Mood, profile, now)
		for _, t := range ranked {
			resp.RecommendedTaskIDs = append(resp.RecommendedTaskIDs, t.ID)
		}
	}

	comp := e.Compose(result, req.Context, profile, insights)
	resp.Text = comp.Text
	resp.SuggestedAction = comp.Action
	return resp
}

// urgentReply is the fixed high-urgency framing for the override path.
func urgentReply(task Task) string {
	return "⚠️ Before anything else: \"" + task.Title + "\" is due very soon or already overdue. Everything else can wait until this one is handled."
}
