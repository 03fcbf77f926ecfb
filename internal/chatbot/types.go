package chatbot

// Intent is a keyword-triggered canned response. Higher priority wins over
// keyword ratio when several intents match the same input.
type Intent struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Response string   `json:"response"`
	Priority int      `json:"priority"`
	Category string   `json:"category"` // about, skills, projects, experience, contact, cv
}

// DocumentSection is a static topic blurb searchable by keyword and content
// relevance scoring.
type DocumentSection struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
}

// SearchResult is a scored document hit with an extracted snippet. Computed
// per query, never persisted.
type SearchResult struct {
	Score   int             `json:"score"`
	Section DocumentSection `json:"section"`
	Snippet string          `json:"snippet"`
}

// ProjectKeywordEntry maps a short trigger string to a project for direct
// lookup from chat input.
type ProjectKeywordEntry struct {
	Keyword string `json:"keyword"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Reply is the outcome of resolving one user message.
type Reply struct {
	Response    string `json:"response"`
	Source      string `json:"source"`
	IntentID    string `json:"intent,omitempty"`
	ProjectSlug string `json:"projectSlug,omitempty"`
}

// Source tags attached to every reply.
const (
	SourceIntent   = "intent"
	SourceDocument = "document"
	SourceFallback = "fallback"
	SourceProject  = "project"
)
