package chatbot

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Minimum document score before a search hit is trusted enough to answer
// with. Below this the random fallback is used instead.
const documentScoreThreshold = 2

// Responder resolves user messages into replies. Resolution is a fixed
// precedence chain: project lookup, contextual rules, intent matching,
// document search, random fallback. Everything except the final fallback
// pick is deterministic.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder returns a Responder seeded from the clock. Pass a fixed-seed
// source via NewResponderWithSource in tests.
func NewResponder() *Responder {
	return NewResponderWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewResponderWithSource(src rand.Source) *Responder {
	return &Responder{rng: rand.New(src)}
}

// Resolve produces exactly one reply for one user utterance.
func (r *Responder) Resolve(userMessage string) Reply {
	if match := DetectProjectQuery(userMessage); match != nil {
		return Reply{
			Response: fmt.Sprintf(
				"%s is one of Carlos' projects. %s\n\nWant to know more? Ask a follow-up or check the project page for the full write-up.",
				match.Title, match.Snippet),
			Source:      SourceProject,
			ProjectSlug: match.Slug,
		}
	}

	// Contextual rule hits share the fallback tag with the random tier.
	if response := ContextualResponse(userMessage); response != "" {
		return Reply{Response: response, Source: SourceFallback}
	}

	if intent := MatchIntent(userMessage); intent != nil {
		return Reply{Response: intent.Response, Source: SourceIntent, IntentID: intent.ID}
	}

	if results := SearchDocuments(userMessage, defaultTopK); len(results) > 0 && results[0].Score > documentScoreThreshold {
		top := results[0]
		return Reply{
			Response: fmt.Sprintf("Here's what I found under \"%s\":\n\n%s", top.Section.Title, top.Snippet),
			Source:   SourceDocument,
		}
	}

	return Reply{Response: r.pickFallback(), Source: SourceFallback}
}

func (r *Responder) pickFallback() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fallbackResponses[r.rng.Intn(len(fallbackResponses))]
}

// FallbackResponses exposes a copy of the canned fallback strings so
// callers can recognize them (the admin dashboard lists them).
func FallbackResponses() []string {
	out := make([]string, len(fallbackResponses))
	copy(out, fallbackResponses)
	return out
}
