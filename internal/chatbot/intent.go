package chatbot

import (
	"sort"
	"strings"
)

// MatchIntent scores the static intent catalog against a user message and
// returns the best match, or nil when no keyword of any intent appears in
// the input. Matching is plain substring containment, so "assistant" also
// matches inside "assistantship"; the catalogs are small enough that this
// looseness works in practice.
func MatchIntent(userMessage string) *Intent {
	return matchIntent(userMessage, intents)
}

func matchIntent(userMessage string, catalog []Intent) *Intent {
	input := strings.ToLower(strings.TrimSpace(userMessage))
	if input == "" {
		return nil
	}

	type scoredIntent struct {
		intent Intent
		score  float64 // matched keywords / total keywords
	}

	var candidates []scoredIntent
	for _, intent := range catalog {
		matched := 0
		for _, keyword := range intent.Keywords {
			if strings.Contains(input, keyword) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}
		candidates = append(candidates, scoredIntent{
			intent: intent,
			score:  float64(matched) / float64(len(intent.Keywords)),
		})
	}

	if len(candidates) == 0 {
		return nil
	}

	// Priority dominates; the keyword ratio only breaks ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].intent.Priority != candidates[j].intent.Priority {
			return candidates[i].intent.Priority > candidates[j].intent.Priority
		}
		return candidates[i].score > candidates[j].score
	})

	top := candidates[0].intent
	return &top
}
