package engine

import (
	"fmt"
	"strings"
	"unicode"
)

// actionThreshold: below this confidence the composer emits text only and the
// rendering layer performs no side effect.
const actionThreshold = 0.7

// ----------------------
//   RESPONSE TEMPLATES
// ----------------------

// One template is picked uniformly at random per reply. Random on purpose:
// the highest-ranked canned phrase every time reads like a broken record.
var responseTemplates = map[Intent][]string{
	IntentAppHelp: {
		"You can talk to me like you would to a friend: tell me how you feel, ask what to do next, or just vent. I'll suggest one task at a time.",
		"Ask me anything about your tasks or your day. I keep track of what works for you and try to suggest the next small step.",
	},
	IntentUnderstandingCheck: {
		"I think I follow you. Want me to repeat it back in my own words?",
		"Got it so far. If I misread something, just correct me.",
	},
	IntentWhySuggestion: {
		"I picked that one because it fits your current energy and it's been waiting the longest. You can always ask for a different one.",
		"That suggestion came from your mood, the deadlines, and what has worked for you before. Nothing is mandatory.",
	},
	IntentProjectApproach: {
		"Big things start stupidly small. What's the tiniest first piece you could finish in ten minutes?",
		"Let's not plan the whole thing. Pick one concrete edge of it and we start there.",
	},
	IntentTextCommands: {
		"Commands I know: /task for a suggestion, /break for a timer, /focus for focus mode, /mood to check in, /stats for progress.",
	},
	IntentProjectOrganization: {
		"Let's slice it up. Name the project and I'll help you cut it into steps you can actually finish.",
		"One big blob becomes three small tasks. Tell me what the project is about.",
	},
	IntentTextProcessing: {
		"Paste the text and tell me what you want: shorter, clearer, or just different.",
		"Sure, drop the text here and I'll rework it.",
	},
	IntentTaskSelection: {
		"Let me look at your list and your energy. Here's what I'd start with.",
		"One thing at a time. Based on today, this is my pick for you.",
		"I checked what's open. This one gives you the best effort-to-reward right now.",
	},
	IntentOverwhelm: {
		"Stop. Breathe. You don't have to do everything, you have to do one thing. Let's shrink the list to a single step.",
		"When everything screams, nothing gets picked. Let me mute the list and hand you just one item.",
	},
	IntentProcrastination: {
		"Starting is the whole battle. Give it two honest minutes and you're allowed to stop after.",
		"Avoidance usually means the task is too big or too vague. Let's make it smaller and insultingly concrete.",
	},
	IntentFocus: {
		"Let's protect a short window: notifications off, one task, a timer. Twenty minutes is plenty.",
		"Distraction isn't a character flaw, it's an environment problem. Want me to set up a focus session?",
	},
	IntentEnergyLow: {
		"Low battery is real data, not laziness. Let's find something gentle that still counts.",
		"Okay, no heavy lifting today. A very small task keeps the streak alive without draining you.",
	},
	IntentEnergyHigh: {
		"Love it. Let's spend that energy on the hardest thing on your list while it lasts.",
		"Great time to attack something big. Strike now, coast later.",
	},
	IntentMotivation: {
		"Motivation follows action more often than it precedes it. Start microscopic and let it catch up.",
		"You don't need to feel like it. You need a first step small enough that feelings don't get a vote.",
	},
	IntentTimeManagement: {
		"Let's plan around your real energy, not an ideal day. Two or three anchored tasks beat a perfect schedule.",
		"Time boxes work better than to-do piles. Pick a slot, pick a task, ignore the rest.",
	},
	IntentEmotionalState: {
		"Thanks for telling me. Feelings are signals, not verdicts. Want to talk it through or switch to something doable?",
		"That sounds heavy. We can sit with it for a minute, or find one small thing that gives you back some control.",
	},
	IntentProgressCheck: {
		"You've done more than it feels like. Let me pull up what you've completed recently.",
		"Progress check: the trend matters more than any single day. Here's how you're doing.",
	},
	IntentStrategyRequest: {
		"One tactic that works for you: do the short ugly task first, then ride the momentum.",
		"Try pairing a boring task with something pleasant. Your brain negotiates better with rewards on the table.",
	},
	IntentBreakRequest: {
		"Granted. A real break, not doomscrolling: water, window, walk. I'll be here when you're back.",
		"Good call. Rest is part of the work. Take fifteen and come back lighter.",
	},
	IntentGreeting: {
		"Hey! Good to see you. How are you arriving today?",
		"Hi there. No pressure, just tell me how today feels so far.",
	},
	IntentGratitude: {
		"Anytime. Showing up is your part, the rest we figure out together.",
		"You're welcome. Now go be gently productive.",
	},
	IntentCelebration: {
		"Yes! That one's done and nobody can take it from you. Savor it for a second before the next thing.",
		"Done is beautiful. Log it, enjoy it, and let it make the next task easier.",
	},
	IntentConfusion: {
		"My fault, let me say it simpler.",
		"Fair, that was muddy. Short version coming up.",
	},
	IntentFarewell: {
		"See you soon. Whatever got done today was enough.",
		"Good night. The list will keep, you go rest.",
	},
	IntentUnclear: {
		"I'm not sure I got that. You can tell me how you feel, ask what to do next, or type /help.",
		"Hmm, that one went over my head. Try asking for a task, a break, or just tell me how you're doing.",
	},
}

// ----------------------
//    MOOD OVERRIDES
// ----------------------

// Exact (mood, intent) override phrases. Anything not listed here falls back
// to the generic mood wrapper.
var moodOverrides = map[MoodLabel]map[Intent]string{
	MoodFrozen: {
		IntentTaskSelection: "Frozen days need tiny keys, not big doors. I'll hand you the smallest real task you have.",
		IntentOverwhelm:     "You're frozen and flooded, that's a brutal combo. We do exactly one microscopic thing, then reassess.",
		IntentMotivation:    "When you're frozen, motivation is the wrong lever. Warmth first: one tiny win, zero judgment.",
	},
	MoodDisoriented: {
		IntentTaskSelection: "Feeling scattered? Let's skip deciding: I'll pick one clear, low-stakes task for you.",
		IntentFocus:         "Disoriented days hate open tabs. One task, one timer, everything else closed.",
	},
	MoodFlowing: {
		IntentTaskSelection: "You're in flow, let's not waste it on busywork. Here's the meatiest thing on your list.",
		IntentEnergyHigh:    "Flow plus energy? That's rare fuel. Point it at the big scary task.",
	},
	MoodInspired: {
		IntentTaskSelection: "Inspired is the best time for creative work. I'll push those to the top.",
		IntentMotivation:    "You're already inspired, so let's anchor it: pick the idea that excites you most and make it a task right now.",
	},
}

// ----------------------
//   CONTEXTUAL CLAUSES
// ----------------------

// Each clause is independent; all that apply are appended.
const (
	clauseLateLowEnergy  = "It's late and your tank is low, so anything gentle you do now counts double."
	clauseFocusOverwhelm = "Focus mode is already on: everything except one task can wait."
	clauseManyTasks      = "Also, your active list is pretty long right now, and nobody thinks clearly in front of a wall of tasks."
)

// ----------------------
//  BEHAVIOR INJECTIONS
// ----------------------

// Phrase injections driven by the session profile, the behavioral counterpart
// of the mood overrides: suggestion replies lean on the learned preferred
// type, progress talk on the completion rate. A fresh profile injects nothing.
const (
	behaviorPreferredType  = "Lately %s work has been going well for you, so I leaned that way."
	behaviorStrongFinisher = "For the record: you've been finishing almost everything you start lately."
)

const strongFinishRate = 0.7

func behaviorClause(intent Intent, profile *BehavioralProfile) string {
	if profile == nil {
		return ""
	}
	switch intent {
	case IntentTaskSelection, IntentEnergyLow, IntentEnergyHigh:
		if n := len(profile.PreferredTaskTypes); n > 0 {
			// the most recent success is the freshest signal
			return fmt.Sprintf(behaviorPreferredType, profile.PreferredTaskTypes[n-1])
		}
	case IntentProgressCheck, IntentMotivation:
		if profile.CompletionRate >= strongFinishRate {
			return behaviorStrongFinisher
		}
	}
	return ""
}

// ----------------------
//     ACTION MAPPING
// ----------------------

// Fixed 1:1 intent → UI action identifier, emitted only above the threshold.
var intentActions = map[Intent]string{
	IntentTaskSelection:       "show_recommended_task",
	IntentOverwhelm:           "activate_focus_mode",
	IntentProcrastination:     "start_micro_timer",
	IntentFocus:               "start_focus_session",
	IntentEnergyLow:           "suggest_low_energy_task",
	IntentEnergyHigh:          "suggest_high_energy_task",
	IntentTimeManagement:      "open_planner",
	IntentProjectOrganization: "open_project_board",
	IntentProgressCheck:       "show_progress_summary",
	IntentBreakRequest:        "start_break_timer",
	IntentEmotionalState:      "open_journal",
	IntentMotivation:          "show_streak",
}

// No-tasks replies, mood-aware where a mood is present.
var noTasksByMood = map[MoodLabel]string{
	MoodFrozen:      "Your list is empty, and on a frozen day that's a gift. Rest without guilt.",
	MoodDisoriented: "Nothing open right now. Maybe jot down one small intention so tomorrow-you has a handle to grab.",
	MoodFlowing:     "Your list is empty but you're in flow. Perfect moment to capture the next project while it's cheap.",
	MoodInspired:    "No open tasks, and you're inspired. Write the ideas down before they evaporate!",
}

const noTasksDefault = "Your list is empty. Add a task or two and I'll help you pick where to start."

// Composition is the composer output.
type Composition struct {
	Text   string
	Action string
}

// Compose merges the winning intent's template with mood overrides,
// contextual clauses, a behavior injection from the session profile and at
// most one session insight.
func (e *Engine) Compose(result IntentResult, ctx Context, profile *BehavioralProfile, insights *SessionInsights) Composition {
	base := e.pickTemplate(result.Intent)

	text := base
	if ctx.Mood != nil {
		if override, ok := moodOverrides[ctx.Mood.Label][result.Intent]; ok {
			text = override
		} else {
			text = fmt.Sprintf("Considering you feel %s today, %s. Remember: %s",
				ctx.Mood.Label, lowerFirst(strings.TrimRight(base, ".")), ctx.Mood.SuggestedRitual)
		}
	}

	text = appendClauses(text, result.Intent, ctx)

	if clause := behaviorClause(result.Intent, profile); clause != "" {
		text = text + " " + clause
	}

	if insights != nil {
		if nudge := insights.NextNudge(e.now()); nudge != "" {
			text = text + " " + nudge
		}
	}

	comp := Composition{Text: text}
	if result.Confidence > actionThreshold {
		comp.Action = intentActions[result.Intent]
	}
	return comp
}

func appendClauses(text string, intent Intent, ctx Context) string {
	lateDay := ctx.TimeOfDay == "evening" || ctx.TimeOfDay == "night"
	lowEnergy := intent == IntentEnergyLow || (ctx.EnergyLevel > 0 && ctx.EnergyLevel <= 3)

	if lateDay && lowEnergy {
		text += " " + clauseLateLowEnergy
	}
	if ctx.FocusModeActive && intent == IntentOverwhelm {
		text += " " + clauseFocusOverwhelm
	}
	if ctx.ActiveTaskCount > 5 && intent == IntentOverwhelm {
		text += " " + clauseManyTasks
	}
	return text
}

// NoTasksReply is used when an intent asks for suggestions but the snapshot
// is empty. Mood-aware, never an error.
func NoTasksReply(mood *MoodState) string {
	if mood != nil {
		if msg, ok := noTasksByMood[mood.Label]; ok {
			return msg
		}
	}
	return noTasksDefault
}

func (e *Engine) pickTemplate(intent Intent) string {
	templates := responseTemplates[intent]
	if len(templates) == 0 {
		templates = responseTemplates[IntentUnclear]
	}
	return templates[e.rng.Intn(len(templates))]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
