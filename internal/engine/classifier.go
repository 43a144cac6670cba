package engine

import (
	"strings"
	"unicode/utf8"
)

// Fallback confidences, per the ordered fallback chain.
const (
	fallbackTaskConfidence     = 0.7
	fallbackEmotionConfidence  = 0.65
	fallbackGreetingConfidence = 0.6
	shortUtteranceRunes        = 10
)

// Semantic boosts applied on top of the winning rule.
const (
	urgencyBoost = 0.05
	emotionBoost = 0.03
	energyBoost  = 0.04
)

// Classifier resolves an utterance to an intent. It is stateless and safe to
// share; all the knowledge lives in the rule and keyword tables.
type Classifier struct {
	rules []intentRule
}

func NewClassifier() *Classifier {
	return &Classifier{rules: intentRules}
}

// Classify normalizes the utterance, extracts the semantic context, scans the
// priority list keeping the highest-confidence match (first seen wins ties),
// applies semantic boosts and finally walks the fallback chain if nothing
// matched. Never fails: the worst case is the unclear intent at confidence 0.
func (c *Classifier) Classify(utterance string) IntentResult {
	text := strings.ToLower(strings.TrimSpace(utterance))
	sem := ExtractContext(text)

	result := IntentResult{Intent: IntentUnclear, Confidence: 0, Context: sem}
	if text == "" {
		return result
	}

	// Single pass over the whole list: a later rule only takes over with a
	// strictly higher base confidence.
	for _, rule := range c.rules {
		if rule.confidence > result.Confidence && rule.matches(text) {
			result.Intent = rule.intent
			result.Confidence = rule.confidence
		}
	}

	if result.Confidence > 0 {
		result.Confidence = applyBoosts(result.Intent, result.Confidence, sem)
		return result
	}

	return c.fallback(text, sem)
}

func applyBoosts(intent Intent, confidence float64, sem SemanticContext) float64 {
	switch {
	case sem[SignalUrgency] > 0 && intent == IntentTaskSelection:
		confidence += urgencyBoost
	case sem[SignalEmotion] > 0 && intent == IntentEmotionalState:
		confidence += emotionBoost
	case sem[SignalEnergy] > 0 && (intent == IntentEnergyLow || intent == IntentEnergyHigh):
		confidence += energyBoost
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// fallback is the ordered heuristic chain for utterances no rule matched.
func (c *Classifier) fallback(text string, sem SemanticContext) IntentResult {
	result := IntentResult{Context: sem}

	switch {
	case containsAnyPhrase(text, taskVocabulary) || sem[SignalUrgency] > 0:
		result.Intent = IntentTaskSelection
		result.Confidence = fallbackTaskConfidence
	case sem[SignalEmotion] > 0:
		result.Intent = IntentEmotionalState
		result.Confidence = fallbackEmotionConfidence
	case containsAnyPhrase(text, helpVocabulary):
		result.Intent = IntentGreeting
		result.Confidence = fallbackGreetingConfidence
	case utf8.RuneCountInString(text) < shortUtteranceRunes:
		result.Intent = IntentGreeting
		result.Confidence = fallbackGreetingConfidence
	default:
		result.Intent = IntentUnclear
		result.Confidence = 0
	}

	return result
}
