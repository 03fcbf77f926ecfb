package chatbot

import "testing"

func TestDetectProjectQuery_KnownTrigger(t *testing.T) {
	got := DetectProjectQuery("tell me about cmh")
	if got == nil {
		t.Fatal("expected a project match for 'cmh'")
	}
	if got.Slug != "cmh-data-management-system" {
		t.Errorf("slug = %s, want cmh-data-management-system", got.Slug)
	}
	if got.Title == "" || got.Snippet == "" {
		t.Error("project match missing title or snippet")
	}
}

func TestDetectProjectQuery_CaseInsensitive(t *testing.T) {
	got := DetectProjectQuery("What is STOCKTRACK?")
	if got == nil || got.Slug != "stocktrack-inventory" {
		t.Fatalf("expected stocktrack-inventory, got %v", got)
	}
}

func TestDetectProjectQuery_NoMatch(t *testing.T) {
	if got := DetectProjectQuery("how is the weather"); got != nil {
		t.Errorf("expected nil, got %s", got.Slug)
	}
}

func TestDetectProjectQuery_FirstMatchWins(t *testing.T) {
	entries := []ProjectKeywordEntry{
		{Keyword: "track", Slug: "first"},
		{Keyword: "stocktrack", Slug: "second"},
	}
	// Both triggers are present; the earlier entry wins.
	got := detectProjectQuery("stocktrack status", entries)
	if got == nil || got.Slug != "first" {
		t.Fatalf("expected first entry to win, got %v", got)
	}
}
