package chatbot

import "strings"

// DetectProjectQuery checks whether the user message names one of the known
// projects. The keyword table is walked in its defined order and the first
// trigger found as a substring of the lowercased input wins.
func DetectProjectQuery(userMessage string) *ProjectKeywordEntry {
	return detectProjectQuery(userMessage, projectKeywords)
}

func detectProjectQuery(userMessage string, entries []ProjectKeywordEntry) *ProjectKeywordEntry {
	input := strings.ToLower(userMessage)
	for _, entry := range entries {
		if strings.Contains(input, entry.Keyword) {
			match := entry
			return &match
		}
	}
	return nil
}
