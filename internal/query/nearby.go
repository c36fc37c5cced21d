package query

import (
	"cmp"
	"slices"

	"brutalist/internal/dataset"
	"brutalist/internal/geo"
)

type Neighbor struct {
	Building dataset.Building `json:"building"`
	Distance float64          `json:"distance"`
}

// Nearby ranks every other building in the catalog by haversine distance
// from b and returns the closest count. Equal distances keep dataset order.
// A count of zero or less returns nothing.
func (e *Engine) Nearby(b dataset.Building, count int) []Neighbor {
	if count <= 0 {
		return []Neighbor{}
	}

	origin := b.Point()
	all := e.catalog.Buildings()
	ranked := make([]Neighbor, 0, len(all))
	for _, other := range all {
		if other.ID == b.ID {
			continue
		}
		ranked = append(ranked, Neighbor{
			Building: other,
			Distance: geo.Distance(origin, other.Point()),
		})
	}

	slices.SortStableFunc(ranked, func(x, y Neighbor) int {
		return cmp.Compare(x.Distance, y.Distance)
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	return ranked
}
