package chatbot

import "strings"

// contextualRule matches when every keyword group contributes at least one
// substring hit on the lowercased input.
type contextualRule struct {
	groups   [][]string
	response string
}

func (r contextualRule) matches(input string) bool {
	for _, group := range r.groups {
		if !containsAny(input, group) {
			return false
		}
	}
	return true
}

func containsAny(input string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(input, phrase) {
			return true
		}
	}
	return false
}

// ContextualResponse runs the hand-written situational rules (client
// inquiries, pricing, availability) in fixed order and returns the canned
// reply of the first one that fires, or "" when none do.
func ContextualResponse(userMessage string) string {
	return contextualResponse(userMessage, contextualRules)
}

func contextualResponse(userMessage string, rules []contextualRule) string {
	input := strings.ToLower(userMessage)
	for _, rule := range rules {
		if rule.matches(input) {
			return rule.response
		}
	}
	return ""
}
