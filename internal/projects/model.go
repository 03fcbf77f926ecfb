package projects

import "time"

// Project is one portfolio entry as stored in the projects JSON file.
// IDs are decimal-string-encoded integers; slugs are unique.
type Project struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Tier        string   `json:"tier"`
	ImpactScore int      `json:"impactScore"`
	Difficulty  int      `json:"difficulty"` // 1-5
	ProjectType string   `json:"projectType"`
	Featured    bool     `json:"featured"`
	IsNew       bool     `json:"isNew"`
	IsTrending  bool     `json:"isTrending"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	CompletedAt string   `json:"completedAt,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	RepoURL     string   `json:"repoUrl,omitempty"`
}

// createdTime parses CreatedAt for sorting. Missing or malformed dates
// sort as the epoch rather than erroring.
func (p Project) createdTime() time.Time {
	if p.CreatedAt == "" {
		return time.Unix(0, 0)
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, p.CreatedAt); err == nil {
			return t
		}
	}
	return time.Unix(0, 0)
}
