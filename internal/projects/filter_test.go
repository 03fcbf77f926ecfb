package projects

import (
	"reflect"
	"testing"
)

func sampleProjects() []Project {
	return []Project{
		{
			ID: "1", Slug: "cmh-data-management-system", Title: "CMH Data Management System",
			Description: "Records management for a community health network",
			Category:    "web", Tags: []string{"react", "node", "postgresql"},
			Tier: "flagship", ImpactScore: 18, Difficulty: 5, ProjectType: "client",
			Featured: true, CreatedAt: "2023-06-01",
		},
		{
			ID: "2", Slug: "stocktrack-inventory", Title: "StockTrack Inventory",
			Description: "Barcode-driven inventory tracking",
			Category:    "web", Tags: []string{"go", "websockets"},
			Tier: "major", ImpactScore: 14, Difficulty: 4, ProjectType: "client",
			Featured: true, IsNew: true, CreatedAt: "2024-02-15",
		},
		{
			ID: "3", Slug: "routewise-logistics-planner", Title: "RouteWise Logistics Planner",
			Description: "Route planning and dispatch for delivery fleets",
			Category:    "tools", Tags: []string{"typescript", "maps"},
			Tier: "major", ImpactScore: 11, Difficulty: 3, ProjectType: "client",
			CreatedAt: "2022-11-20",
		},
		{
			ID: "4", Slug: "lumen-analytics-dashboard", Title: "Lumen Analytics Dashboard",
			Description: "Self-serve analytics with drag-and-drop charts",
			Category:    "data", Tags: []string{"react", "redis"},
			Tier: "side", ImpactScore: 7, Difficulty: 2, ProjectType: "personal",
			IsNew: true, CreatedAt: "2024-07-03",
		},
		{
			ID: "5", Slug: "legacy-snippets", Title: "Assorted Snippets",
			Description: "Old experiments, no date recorded",
			Category:    "tools", Tags: []string{"misc"},
			Tier: "side", ImpactScore: 2, Difficulty: 1, ProjectType: "personal",
		},
	}
}

func slugs(list []Project) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Slug
	}
	return out
}

func TestFilter_DefaultsReturnAllNewestFirst(t *testing.T) {
	all := sampleProjects()
	got := Filter(all, DefaultFilterState())
	if len(got) != len(all) {
		t.Fatalf("default filter changed length: %d -> %d", len(all), len(got))
	}
	want := []string{
		"lumen-analytics-dashboard",   // 2024-07-03
		"stocktrack-inventory",        // 2024-02-15
		"cmh-data-management-system",  // 2023-06-01
		"routewise-logistics-planner", // 2022-11-20
		"legacy-snippets",             // missing date -> epoch
	}
	if !reflect.DeepEqual(slugs(got), want) {
		t.Errorf("order = %v, want %v", slugs(got), want)
	}
}

func TestFilter_SearchMatchesTitleDescriptionTags(t *testing.T) {
	all := sampleProjects()

	tests := []struct {
		query string
		want  []string
	}{
		{"stocktrack", []string{"stocktrack-inventory"}},                               // title
		{"dispatch", []string{"routewise-logistics-planner"}},                          // description
		{"redis", []string{"lumen-analytics-dashboard"}},                               // tag
		{"REACT", []string{"lumen-analytics-dashboard", "cmh-data-management-system"}}, // case-insensitive tag, newest first
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		state := DefaultFilterState()
		state.SearchQuery = tt.query
		got := slugs(Filter(all, state))
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("search %q = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilter_SetMembershipStages(t *testing.T) {
	all := sampleProjects()

	state := DefaultFilterState()
	state.Categories = []string{"tools"}
	got := Filter(all, state)
	for _, p := range got {
		if p.Category != "tools" {
			t.Errorf("category filter leaked %s", p.Slug)
		}
	}
	if len(got) != 2 {
		t.Errorf("tools category: got %d projects, want 2", len(got))
	}

	state = DefaultFilterState()
	state.Tiers = []string{"major"}
	state.ProjectTypes = []string{"client"}
	got = Filter(all, state)
	if len(got) != 2 {
		t.Errorf("tier+type: got %d projects, want 2", len(got))
	}
}

func TestFilter_DifficultyRangeInclusive(t *testing.T) {
	all := sampleProjects()
	state := DefaultFilterState()
	state.DifficultyRange = [2]int{3, 4}
	got := Filter(all, state)
	for _, p := range got {
		if p.Difficulty < 3 || p.Difficulty > 4 {
			t.Errorf("difficulty %d outside [3,4] for %s", p.Difficulty, p.Slug)
		}
	}
	if len(got) != 2 {
		t.Errorf("got %d projects, want 2", len(got))
	}
}

func TestFilter_FeaturedOnlyIsIdempotent(t *testing.T) {
	all := sampleProjects()
	state := DefaultFilterState()
	state.ShowFeaturedOnly = true

	once := Filter(all, state)
	for _, p := range once {
		if !p.Featured {
			t.Errorf("non-featured project %s in featured-only result", p.Slug)
		}
	}

	twice := Filter(once, state)
	if !reflect.DeepEqual(slugs(once), slugs(twice)) {
		t.Errorf("filtering twice diverged: %v vs %v", slugs(once), slugs(twice))
	}
}

func TestFilter_NewOnly(t *testing.T) {
	all := sampleProjects()
	state := DefaultFilterState()
	state.ShowNewOnly = true
	for _, p := range Filter(all, state) {
		if !p.IsNew {
			t.Errorf("non-new project %s in new-only result", p.Slug)
		}
	}
}

func TestFilter_ImpactSortsMirror(t *testing.T) {
	all := sampleProjects() // impact scores are all distinct

	high := DefaultFilterState()
	high.SortBy = SortImpactHigh
	low := DefaultFilterState()
	low.SortBy = SortImpactLow

	hi := slugs(Filter(all, high))
	lo := slugs(Filter(all, low))

	for i := range hi {
		if hi[i] != lo[len(lo)-1-i] {
			t.Fatalf("impact-high reversed != impact-low:\n%v\n%v", hi, lo)
		}
	}
}

func TestFilter_NameSorts(t *testing.T) {
	all := sampleProjects()
	state := DefaultFilterState()
	state.SortBy = SortNameAsc
	got := Filter(all, state)
	for i := 1; i < len(got); i++ {
		if got[i-1].Title > got[i].Title {
			t.Fatalf("name-asc out of order: %q before %q", got[i-1].Title, got[i].Title)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	all := sampleProjects()
	before := slugs(all)
	state := DefaultFilterState()
	state.SortBy = SortNameDesc
	Filter(all, state)
	if !reflect.DeepEqual(slugs(all), before) {
		t.Error("Filter reordered the input slice")
	}
}
