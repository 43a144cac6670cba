package engine

import "strings"

// Keyword groups for the semantic context extractor. Substring matching on
// purpose: it catches inflected Italian forms ("stanchissimo" → "stanc" would
// not, but "stanco"/"stanca" are both listed) without dragging in a stemmer.
// Lists are bilingual because the app ships in English and Italian.
var signalKeywords = map[Signal][]string{
	SignalUrgency: {
		"urgent", "asap", "deadline", "right now", "immediately", "late",
		"urgente", "subito", "scadenza", "in ritardo", "entro oggi",
	},
	SignalDifficulty: {
		"hard", "difficult", "complicated", "impossible", "stuck", "can't",
		"difficile", "complicato", "impossibile", "bloccato", "non riesco",
	},
	SignalEmotion: {
		"anxious", "anxiety", "stressed", "sad", "frustrated", "worried",
		"overwhelmed", "afraid", "ansia", "stress", "triste", "frustrato",
		"preoccupato", "sopraffatto", "paura",
	},
	SignalTime: {
		"today", "tomorrow", "tonight", "week", "hour", "minutes", "later",
		"oggi", "domani", "stasera", "settimana", "minuti", "dopo",
	},
	SignalEnergy: {
		"tired", "exhausted", "energy", "sleepy", "drained", "energized",
		"stanco", "stanca", "esausto", "energia", "sonno", "carico",
	},
}

// ExtractContext scores an utterance against the fixed keyword groups.
// Each group's raw hit count is divided by the group's size; groups that
// never fire are left out of the map. Pure function.
func ExtractContext(utterance string) SemanticContext {
	text := strings.ToLower(strings.TrimSpace(utterance))
	ctx := make(SemanticContext)
	if text == "" {
		return ctx
	}

	for signal, keywords := range signalKeywords {
		count := 0
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				count++
			}
		}
		if count > 0 {
			ctx[signal] = float64(count) / float64(len(keywords))
		}
	}

	return ctx
}
