package engine

import (
	"strings"
	"unicode"
)

// intentRule is one entry of the priority list: the first matching rule wins
// ties, but a later rule with a strictly higher base confidence can still
// take over during the scan.
type intentRule struct {
	intent     Intent
	confidence float64
	phrases    []string // any-of alternation
}

func (r intentRule) matches(text string) bool {
	for _, p := range r.phrases {
		if containsPhrase(text, p) {
			return true
		}
	}
	return false
}

// containsPhrase matches multi-word phrases as substrings and single words on
// word boundaries, so "hi" does not fire inside "this".
func containsPhrase(text, phrase string) bool {
	if strings.ContainsAny(phrase, " '") {
		return strings.Contains(text, phrase)
	}
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	}) {
		if w == phrase {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// intentRules is the fixed priority list. Order matters twice: it is the
// tie-break for equal confidences, and the intents up to greeting must stay
// exactly in this sequence.
var intentRules = []intentRule{
	{IntentAppHelp, 0.78, []string{
		"how does this app", "how do i use", "what can you do", "come funziona",
		"app help", "tutorial", "istruzioni", "what is this app",
	}},
	{IntentUnderstandingCheck, 0.85, []string{
		"do you understand", "did you get", "does that make sense", "am i clear",
		"hai capito", "mi hai capito", "capisci",
	}},
	{IntentWhySuggestion, 0.88, []string{
		"why this task", "why did you suggest", "why are you suggesting",
		"why this one", "perché questo", "perché mi proponi", "why not another",
	}},
	{IntentProjectApproach, 0.80, []string{
		"how should i approach", "where do i start with", "how to tackle",
		"da dove comincio", "come affronto", "how do i approach",
	}},
	{IntentTextCommands, 0.92, []string{
		"/help", "/task", "/break", "/focus", "/mood", "/stats",
	}},
	{IntentProjectOrganization, 0.82, []string{
		"organize my project", "organize my tasks", "split this project",
		"break this down", "organizzare il progetto", "suddividere", "subtasks",
	}},
	{IntentTextProcessing, 0.86, []string{
		"summarize", "rewrite", "rephrase", "shorten this", "riassumi",
		"riscrivi", "make this shorter",
	}},
	{IntentTaskSelection, 0.85, []string{
		"what should i do", "what to do now", "which task", "next task",
		"what now", "cosa faccio", "cosa dovrei fare", "quale task",
		"da cosa inizio", "what's next", "pick for me",
	}},
	{IntentOverwhelm, 0.90, []string{
		"overwhelmed", "too much", "too many things", "can't handle",
		"drowning", "sopraffatto", "troppe cose", "non ce la faccio",
	}},
	{IntentProcrastination, 0.85, []string{
		"procrastinating", "keep putting off", "keep avoiding", "can't start",
		"procrastinando", "rimando", "non riesco a iniziare", "keep postponing",
	}},
	{IntentFocus, 0.84, []string{
		"can't focus", "can't concentrate", "distracted", "focus mode",
		"concentrarmi", "distratto", "mi distraggo", "concentrazione",
	}},
	{IntentEnergyLow, 0.88, []string{
		"tired", "exhausted", "no energy", "drained", "worn out", "stanco",
		"stanca", "esausto", "non ho energia", "senza energie", "sfinito",
	}},
	{IntentEnergyHigh, 0.86, []string{
		"full of energy", "feeling energized", "pumped", "unstoppable",
		"pieno di energia", "carico", "in forma", "ready for anything",
	}},
	{IntentMotivation, 0.82, []string{
		"no motivation", "unmotivated", "what's the point", "give up",
		"motivazione", "non ho voglia", "demotivato", "why bother",
	}},
	{IntentTimeManagement, 0.80, []string{
		"not enough time", "manage my time", "plan my day", "schedule",
		"gestire il tempo", "pianificare", "organizzare la giornata",
	}},
	{IntentEmotionalState, 0.78, []string{
		"i feel", "feeling", "mi sento", "sono triste", "anxious", "ansia",
		"stressed", "frustrated", "sad",
	}},
	{IntentProgressCheck, 0.80, []string{
		"how am i doing", "my progress", "how many tasks", "did i improve",
		"i miei progressi", "come sto andando", "statistiche",
	}},
	{IntentStrategyRequest, 0.78, []string{
		"any advice", "any tips", "strategy", "how can i improve",
		"qualche consiglio", "strategia", "suggerimenti",
	}},
	{IntentBreakRequest, 0.86, []string{
		"need a break", "take a break", "pause", "rest for a bit",
		"una pausa", "mi fermo un attimo", "riposare",
	}},
	{IntentGreeting, 0.90, []string{
		"hello", "hey", "good morning", "good evening", "ciao",
		"buongiorno", "buonasera", "salve", "hola",
	}},
	{IntentGratitude, 0.85, []string{
		"thank you", "thanks", "grazie", "appreciated", "ti ringrazio",
	}},
	{IntentCelebration, 0.82, []string{
		"i did it", "finished it", "completed it", "finally done",
		"ce l'ho fatta", "finito", "completato",
	}},
	{IntentConfusion, 0.75, []string{
		"confused", "don't understand", "what do you mean", "confuso",
		"non capisco", "non ho capito",
	}},
	{IntentFarewell, 0.85, []string{
		"goodbye", "see you", "good night", "a domani", "buonanotte",
		"ci vediamo",
	}},
}

// Vocabulary for the fallback chain.
var taskVocabulary = []string{
	"task", "todo", "to-do", "activity", "attività", "compito", "lavoro",
	"fare", "do something",
}

var helpVocabulary = []string{
	"help", "aiuto", "aiutami", "help me",
}

func containsAnyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if containsPhrase(text, p) {
			return true
		}
	}
	return false
}
