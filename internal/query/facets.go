package query

import (
	"strconv"

	"brutalist/internal/dataset"
)

// FacetCount is one selectable filter value with the number of buildings
// carrying it.
type FacetCount struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Facets struct {
	Types    []FacetCount `json:"types"`
	Statuses []FacetCount `json:"statuses"`
	Decades  []FacetCount `json:"decades"`
}

// Facets counts buildings per type, status and decade. Every canonical value
// is listed in display order, including those with a zero count. Buildings
// with an unknown year are not counted under any decade.
func (e *Engine) Facets(buildings []dataset.Building) Facets {
	types := make(map[dataset.BuildingType]int)
	statuses := make(map[dataset.BuildingStatus]int)
	decades := make(map[int]int)
	for _, b := range buildings {
		types[b.Type]++
		statuses[b.Status]++
		if d, ok := Decade(b.Year); ok {
			decades[d]++
		}
	}

	out := Facets{
		Types:    make([]FacetCount, 0, len(dataset.BuildingTypes)),
		Statuses: make([]FacetCount, 0, len(dataset.BuildingStatuses)),
		Decades:  make([]FacetCount, 0, len(dataset.Decades)),
	}
	for _, opt := range dataset.BuildingTypes {
		out.Types = append(out.Types, FacetCount{Value: string(opt.Value), Label: opt.Label, Count: types[opt.Value]})
	}
	for _, opt := range dataset.BuildingStatuses {
		out.Statuses = append(out.Statuses, FacetCount{Value: string(opt.Value), Label: opt.Label, Count: statuses[opt.Value]})
	}
	for _, d := range dataset.Decades {
		out.Decades = append(out.Decades, FacetCount{Value: strconv.Itoa(d), Label: dataset.DecadeLabel(d), Count: decades[d]})
	}
	return out
}
