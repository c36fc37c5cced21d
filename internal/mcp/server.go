package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"brutalist/internal/dataset"
	"brutalist/internal/query"
)

// Catalog is the dataset view the tools read. *dataset.Dataset satisfies it.
type Catalog interface {
	Buildings() []dataset.Building
	Collections() []dataset.Collection
	Building(id string) (dataset.Building, bool)
	Collection(id string) (dataset.Collection, bool)
	InCollection(collectionID, buildingID string) bool
	BuildingsByCollection(collectionID string) []dataset.Building
	CollectionSize(collectionID string) int
}

type Server struct {
	catalog     Catalog
	engine      *query.Engine
	nearbyCount int
	mcp         *sdk.Server
}

// NewServer registers the building tools. nearbyCount is used when a
// nearby_buildings call gives no count.
func NewServer(catalog Catalog, version string, nearbyCount int) *Server {
	if nearbyCount <= 0 {
		nearbyCount = query.DefaultNearbyCount
	}
	s := &Server{
		catalog:     catalog,
		engine:      query.NewEngine(catalog),
		nearbyCount: nearbyCount,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "brutalist",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
