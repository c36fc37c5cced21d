package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"brutalist/internal/dataset"
	"brutalist/internal/geo"
	"brutalist/internal/query"
)

type FilterBuildingsInput struct {
	Search       string   `json:"search,omitempty" jsonschema:"case-insensitive text matched against name and area"`
	Types        []string `json:"types,omitempty" jsonschema:"building types to include"`
	Statuses     []string `json:"statuses,omitempty" jsonschema:"statuses to include"`
	Decades      []int    `json:"decades,omitempty" jsonschema:"decades to include, e.g. 1960"`
	CollectionID string   `json:"collection_id,omitempty" jsonschema:"restrict to a collection"`
}

type GetBuildingInput struct {
	ID string `json:"id" jsonschema:"building id"`
}

type NearbyBuildingsInput struct {
	ID    string `json:"id" jsonschema:"building id"`
	Count int    `json:"count,omitempty" jsonschema:"number of neighbours to return"`
}

type ListCollectionsInput struct{}

type GetCollectionInput struct {
	ID string `json:"id" jsonschema:"collection id"`
}

type GetFacetsInput struct{}

type PhotoOutput struct {
	URL     string `json:"url"`
	Credit  string `json:"credit"`
	License string `json:"license"`
}

type SourceOutput struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type BuildingOutput struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Area       string         `json:"area"`
	Lat        float64        `json:"lat"`
	Lng        float64        `json:"lng"`
	Type       string         `json:"type"`
	Year       *int           `json:"year"`
	Architect  *string        `json:"architect"`
	Status     string         `json:"status"`
	ShortBlurb string         `json:"short_blurb"`
	Tags       []string       `json:"tags"`
	Photos     []PhotoOutput  `json:"photos"`
	Sources    []SourceOutput `json:"sources"`
	Image      *string        `json:"image,omitempty"`
	ImageAlt   *string        `json:"image_alt,omitempty"`
}

type BuildingSummaryOutput struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Area   string `json:"area"`
	Type   string `json:"type"`
	Year   *int   `json:"year"`
	Status string `json:"status"`
}

type FilterBuildingsOutput struct {
	Buildings []BuildingSummaryOutput `json:"buildings"`
}

type NeighborOutput struct {
	Building       BuildingSummaryOutput `json:"building"`
	DistanceMeters float64               `json:"distance_meters"`
	Distance       string                `json:"distance"`
}

type NearbyBuildingsOutput struct {
	Origin    BuildingSummaryOutput `json:"origin"`
	Neighbors []NeighborOutput      `json:"neighbors"`
}

type CollectionSummaryOutput struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	BuildingCount int    `json:"building_count"`
}

type ListCollectionsOutput struct {
	Collections []CollectionSummaryOutput `json:"collections"`
}

type CollectionOutput struct {
	Collection CollectionSummaryOutput `json:"collection"`
	Buildings  []BuildingSummaryOutput `json:"buildings"`
}

type FacetsOutput struct {
	Types    []query.FacetCount `json:"types"`
	Statuses []query.FacetCount `json:"statuses"`
	Decades  []query.FacetCount `json:"decades"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "filter_buildings",
		Description: "List buildings matching search text and type, status, decade or collection filters",
	}, s.handleFilterBuildings)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_building",
		Description: "Retrieve a building and all its details",
	}, s.handleGetBuilding)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "nearby_buildings",
		Description: "Rank the buildings closest to a building by straight-line distance",
	}, s.handleNearbyBuildings)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_collections",
		Description: "List curated collections with their building counts",
	}, s.handleListCollections)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_collection",
		Description: "Retrieve a collection and its member buildings",
	}, s.handleGetCollection)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_facets",
		Description: "Return the filter values for types, statuses and decades with building counts",
	}, s.handleGetFacets)
}

func (s *Server) handleFilterBuildings(ctx context.Context, req *sdk.CallToolRequest, input FilterBuildingsInput) (*sdk.CallToolResult, FilterBuildingsOutput, error) {
	filter, err := query.ParseFilter(input.Search, input.Types, input.Statuses, input.Decades, input.CollectionID)
	if err != nil {
		return nil, FilterBuildingsOutput{}, err
	}

	matches := s.engine.FilterAll(filter)
	return nil, FilterBuildingsOutput{Buildings: summariesFromBuildings(matches)}, nil
}

func (s *Server) handleGetBuilding(ctx context.Context, req *sdk.CallToolRequest, input GetBuildingInput) (*sdk.CallToolResult, BuildingOutput, error) {
	if input.ID == "" {
		return nil, BuildingOutput{}, fmt.Errorf("id is required")
	}
	b, ok := s.catalog.Building(input.ID)
	if !ok {
		return nil, BuildingOutput{}, fmt.Errorf("building not found")
	}
	return nil, buildingOutputFromDataset(b), nil
}

func (s *Server) handleNearbyBuildings(ctx context.Context, req *sdk.CallToolRequest, input NearbyBuildingsInput) (*sdk.CallToolResult, NearbyBuildingsOutput, error) {
	if input.ID == "" {
		return nil, NearbyBuildingsOutput{}, fmt.Errorf("id is required")
	}
	if input.Count < 0 {
		return nil, NearbyBuildingsOutput{}, fmt.Errorf("count must not be negative")
	}
	b, ok := s.catalog.Building(input.ID)
	if !ok {
		return nil, NearbyBuildingsOutput{}, fmt.Errorf("building not found")
	}

	count := input.Count
	if count == 0 {
		count = s.nearbyCount
	}

	neighbors := s.engine.Nearby(b, count)
	output := make([]NeighborOutput, 0, len(neighbors))
	for _, n := range neighbors {
		output = append(output, NeighborOutput{
			Building:       summaryFromBuilding(n.Building),
			DistanceMeters: n.Distance,
			Distance:       geo.FormatDistance(n.Distance),
		})
	}
	return nil, NearbyBuildingsOutput{Origin: summaryFromBuilding(b), Neighbors: output}, nil
}

func (s *Server) handleListCollections(ctx context.Context, req *sdk.CallToolRequest, input ListCollectionsInput) (*sdk.CallToolResult, ListCollectionsOutput, error) {
	collections := s.catalog.Collections()
	output := make([]CollectionSummaryOutput, 0, len(collections))
	for _, c := range collections {
		output = append(output, s.collectionSummary(c))
	}
	return nil, ListCollectionsOutput{Collections: output}, nil
}

func (s *Server) handleGetCollection(ctx context.Context, req *sdk.CallToolRequest, input GetCollectionInput) (*sdk.CallToolResult, CollectionOutput, error) {
	if input.ID == "" {
		return nil, CollectionOutput{}, fmt.Errorf("id is required")
	}
	c, ok := s.catalog.Collection(input.ID)
	if !ok {
		return nil, CollectionOutput{}, fmt.Errorf("collection not found")
	}
	return nil, CollectionOutput{
		Collection: s.collectionSummary(c),
		Buildings:  summariesFromBuildings(s.catalog.BuildingsByCollection(c.ID)),
	}, nil
}

func (s *Server) handleGetFacets(ctx context.Context, req *sdk.CallToolRequest, input GetFacetsInput) (*sdk.CallToolResult, FacetsOutput, error) {
	facets := s.engine.Facets(s.catalog.Buildings())
	return nil, FacetsOutput{
		Types:    facets.Types,
		Statuses: facets.Statuses,
		Decades:  facets.Decades,
	}, nil
}

func (s *Server) collectionSummary(c dataset.Collection) CollectionSummaryOutput {
	return CollectionSummaryOutput{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		BuildingCount: s.catalog.CollectionSize(c.ID),
	}
}

func buildingOutputFromDataset(b dataset.Building) BuildingOutput {
	photos := make([]PhotoOutput, 0, len(b.Photos))
	for _, p := range b.Photos {
		photos = append(photos, PhotoOutput{URL: p.URL, Credit: p.Credit, License: p.License})
	}
	sources := make([]SourceOutput, 0, len(b.Sources))
	for _, src := range b.Sources {
		sources = append(sources, SourceOutput{Label: src.Label, URL: src.URL})
	}
	return BuildingOutput{
		ID:         b.ID,
		Name:       b.Name,
		Area:       b.Area,
		Lat:        b.Lat,
		Lng:        b.Lng,
		Type:       string(b.Type),
		Year:       b.Year,
		Architect:  b.Architect,
		Status:     string(b.Status),
		ShortBlurb: b.ShortBlurb,
		Tags:       append([]string{}, b.Tags...),
		Photos:     photos,
		Sources:    sources,
		Image:      b.Image,
		ImageAlt:   b.ImageAlt,
	}
}

func summaryFromBuilding(b dataset.Building) BuildingSummaryOutput {
	return BuildingSummaryOutput{
		ID:     b.ID,
		Name:   b.Name,
		Area:   b.Area,
		Type:   string(b.Type),
		Year:   b.Year,
		Status: string(b.Status),
	}
}

func summariesFromBuildings(buildings []dataset.Building) []BuildingSummaryOutput {
	out := make([]BuildingSummaryOutput, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, summaryFromBuilding(b))
	}
	return out
}
