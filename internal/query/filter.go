package query

import (
	"slices"
	"strings"

	"brutalist/internal/dataset"
)

// FilterState is one combination of search text and facet selections. Empty
// fields do not restrict the result.
type FilterState struct {
	Search       string                   `json:"search"`
	Types        []dataset.BuildingType   `json:"types"`
	Statuses     []dataset.BuildingStatus `json:"statuses"`
	Decades      []int                    `json:"decades"`
	CollectionID string                   `json:"collectionId,omitempty"`
}

// Active reports whether any criterion is set.
func (f FilterState) Active() bool {
	return f.Search != "" ||
		len(f.Types) > 0 ||
		len(f.Statuses) > 0 ||
		len(f.Decades) > 0 ||
		f.CollectionID != ""
}

// Decade buckets a construction year to its decade, 1967 -> 1960. The second
// result is false when the year is unknown.
func Decade(year *int) (int, bool) {
	if year == nil {
		return 0, false
	}
	return (*year / 10) * 10, true
}

// FilterAll applies f to every building in the catalog.
func (e *Engine) FilterAll(f FilterState) []dataset.Building {
	return e.Filter(e.catalog.Buildings(), f)
}

// Filter returns the buildings matching every criterion in f, keeping their
// relative order. A collection id that does not resolve applies no
// restriction. Buildings with an unknown year never match a decade selection.
func (e *Engine) Filter(buildings []dataset.Building, f FilterState) []dataset.Building {
	search := strings.ToLower(f.Search)

	restrictCollection := false
	if f.CollectionID != "" {
		_, restrictCollection = e.catalog.Collection(f.CollectionID)
	}

	out := make([]dataset.Building, 0, len(buildings))
	for _, b := range buildings {
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Name), search) &&
			!strings.Contains(strings.ToLower(b.Area), search) {
			continue
		}
		if len(f.Types) > 0 && !slices.Contains(f.Types, b.Type) {
			continue
		}
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, b.Status) {
			continue
		}
		if len(f.Decades) > 0 {
			decade, known := Decade(b.Year)
			if !known || !slices.Contains(f.Decades, decade) {
				continue
			}
		}
		if restrictCollection && !e.catalog.InCollection(f.CollectionID, b.ID) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// ParseFilter builds a FilterState from raw surface input. Type and status
// values are matched case-insensitively; an unknown value is an error.
func ParseFilter(search string, types, statuses []string, decades []int, collectionID string) (FilterState, error) {
	f := FilterState{
		Search:       search,
		Decades:      append([]int(nil), decades...),
		CollectionID: collectionID,
	}
	for _, raw := range types {
		t, err := dataset.ParseBuildingType(raw)
		if err != nil {
			return FilterState{}, err
		}
		f.Types = append(f.Types, t)
	}
	for _, raw := range statuses {
		s, err := dataset.ParseBuildingStatus(raw)
		if err != nil {
			return FilterState{}, err
		}
		f.Statuses = append(f.Statuses, s)
	}
	return f, nil
}
