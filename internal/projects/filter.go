package projects

import (
	"sort"
	"strings"
)

// SortOrder selects one of the six supported orderings.
type SortOrder string

const (
	SortDateNewest SortOrder = "date-newest"
	SortDateOldest SortOrder = "date-oldest"
	SortNameAsc    SortOrder = "name-asc"
	SortNameDesc   SortOrder = "name-desc"
	SortImpactHigh SortOrder = "impact-high"
	SortImpactLow  SortOrder = "impact-low"
)

// FilterState is the complete set of filter/sort parameters for the
// project list. Empty sets mean "no restriction".
type FilterState struct {
	SearchQuery      string    `json:"searchQuery"`
	Categories       []string  `json:"categories"`
	Tiers            []string  `json:"tiers"`
	ProjectTypes     []string  `json:"projectTypes"`
	DifficultyRange  [2]int    `json:"difficultyRange"` // inclusive [min, max]
	ShowFeaturedOnly bool      `json:"showFeaturedOnly"`
	ShowNewOnly      bool      `json:"showNewOnly"`
	SortBy           SortOrder `json:"sortBy"`
	ViewMode         string    `json:"viewMode"` // grid or list, render hint only
}

// DefaultFilterState matches the dashboard's initial state: everything
// visible, newest first.
func DefaultFilterState() FilterState {
	return FilterState{
		DifficultyRange: [2]int{1, 5},
		SortBy:          SortDateNewest,
		ViewMode:        "grid",
	}
}

// Filter applies every filter stage in order (AND semantics) and then
// sorts the survivors. The input slice is never mutated.
func Filter(list []Project, state FilterState) []Project {
	result := make([]Project, 0, len(list))

	query := strings.ToLower(strings.TrimSpace(state.SearchQuery))
	for _, p := range list {
		if query != "" && !matchesSearch(p, query) {
			continue
		}
		if len(state.Categories) > 0 && !contains(state.Categories, p.Category) {
			continue
		}
		if len(state.Tiers) > 0 && !contains(state.Tiers, p.Tier) {
			continue
		}
		if len(state.ProjectTypes) > 0 && !contains(state.ProjectTypes, p.ProjectType) {
			continue
		}
		if p.Difficulty < state.DifficultyRange[0] || p.Difficulty > state.DifficultyRange[1] {
			continue
		}
		if state.ShowFeaturedOnly && !p.Featured {
			continue
		}
		if state.ShowNewOnly && !p.IsNew {
			continue
		}
		result = append(result, p)
	}

	sortProjects(result, state.SortBy)
	return result
}

func matchesSearch(p Project, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func sortProjects(list []Project, order SortOrder) {
	switch order {
	case SortDateOldest:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].createdTime().Before(list[j].createdTime())
		})
	case SortNameAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Title < list[j].Title
		})
	case SortNameDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Title > list[j].Title
		})
	case SortImpactHigh:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].ImpactScore > list[j].ImpactScore
		})
	case SortImpactLow:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].ImpactScore < list[j].ImpactScore
		})
	default: // SortDateNewest
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].createdTime().After(list[j].createdTime())
		})
	}
}
