package chatbot

import (
	"sort"
	"strings"
)

const (
	defaultTopK = 3

	// Snippet window around the first matched query token.
	snippetLead   = 50
	snippetWindow = 150
)

// SearchDocuments scores every document section against the query and
// returns the topK best hits with extracted snippets. Sections that score
// zero are dropped; ties keep catalog order.
func SearchDocuments(query string, topK int) []SearchResult {
	return searchDocuments(query, topK, documentSections)
}

func searchDocuments(query string, topK int, sections []DocumentSection) []SearchResult {
	if topK <= 0 {
		topK = defaultTopK
	}

	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}
	tokens := strings.Fields(normalized)

	var results []SearchResult
	for _, section := range sections {
		score := scoreSection(section, normalized, tokens)
		if score <= 0 {
			continue
		}
		results = append(results, SearchResult{
			Score:   score,
			Section: section,
			Snippet: generateSnippet(section.Content, tokens),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

func scoreSection(section DocumentSection, query string, tokens []string) int {
	content := strings.ToLower(section.Content)
	title := strings.ToLower(section.Title)

	score := 0
	if strings.Contains(content, query) {
		score += 10
	}
	if strings.Contains(title, query) {
		score += 15
	}

	for _, token := range tokens {
		if strings.Contains(content, token) {
			score += 2
		}
		if strings.Contains(title, token) {
			score += 3
		}
		for _, keyword := range section.Keywords {
			if strings.Contains(keyword, token) {
				score += 4
				break
			}
		}
	}

	// Keyword sub-words get a bidirectional partial match against each
	// query token, e.g. "postgres" vs the keyword word "postgresql".
	for _, keyword := range section.Keywords {
		for _, word := range strings.Fields(keyword) {
			for _, token := range tokens {
				if strings.Contains(word, token) || strings.Contains(token, word) {
					score += 3
					break
				}
			}
		}
	}

	return score
}

// generateSnippet extracts a window of content around the first query token
// found in it: snippetLead characters of leading context through
// snippetWindow characters past the match, ellipsized on truncated ends.
// When no token occurs, the first snippetWindow characters are returned.
func generateSnippet(content string, tokens []string) string {
	lower := strings.ToLower(content)

	for _, token := range tokens {
		idx := strings.Index(lower, token)
		if idx < 0 {
			continue
		}

		start := idx - snippetLead
		if start < 0 {
			start = 0
		}
		end := idx + snippetWindow
		if end > len(content) {
			end = len(content)
		}

		snippet := content[start:end]
		if start > 0 {
			snippet = "..." + snippet
		}
		if end < len(content) {
			snippet += "..."
		}
		return snippet
	}

	if len(content) > snippetWindow {
		return content[:snippetWindow] + "..."
	}
	return content
}
