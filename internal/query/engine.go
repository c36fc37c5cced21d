// Package query filters buildings and ranks them by distance.
package query

import "brutalist/internal/dataset"

// DefaultNearbyCount is the number of neighbours shown when the caller does
// not ask for a specific count.
const DefaultNearbyCount = 3

// Catalog is the read-only view of the dataset the engine needs.
type Catalog interface {
	Buildings() []dataset.Building
	Collection(id string) (dataset.Collection, bool)
	InCollection(collectionID, buildingID string) bool
}

type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}
