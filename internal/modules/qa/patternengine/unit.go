package patternengine

import (
	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
)

type unitHintRule struct {
	vocabulary []string
	question   string
	answer     string
}

var unitHints = map[int]unitHintRule{
	4: {
		vocabulary: []string{"happy", "sad", "angry", "tired", "excited", "scared", "bored", "how are you", "feel", "feeling"},
		question:   "How are you today?",
		answer:     "I am happy/sad/angry/tired/excited.",
	},
	17: {
		vocabulary: []string{"weather", "sunny", "rainy", "cloudy", "snowy", "windy", "stormy", "foggy", "rain", "snow", "sun", "wind"},
		question:   "How is the weather today?",
		answer:     "The weather is sunny/rainy/cloudy/snowy/windy.",
	},
	18: {
		vocabulary: []string{"can", "swim", "run", "jump", "dance", "sing", "ride", "climb", "skate", "ski", "draw", "cook", "fly", "play"},
		question:   "Can you do this activity?",
		answer:     "Yes, I can. / No, I can't.",
	},
}

// unitHint falls back to the unit's theme when the filename has a word from
// it and names no classroom object.
func unitHint(in *input) (qa.Result, bool) {
	rule, ok := unitHints[in.unit]
	if !ok {
		return qa.Result{}, false
	}
	if _, hasObject := findObject(in.lower); hasObject {
		return qa.Result{}, false
	}
	for _, w := range rule.vocabulary {
		if qa.ContainsWord(in.lower, w) {
			return qa.NewResult(rule.question, rule.answer), true
		}
	}
	return qa.Result{}, false
}
