// Package data holds the building and collection records bundled into the binary.
package data

import "embed"

// FS contains buildings.json and collections.json.
//
//go:embed buildings.json collections.json
var FS embed.FS

const (
	BuildingsFile   = "buildings.json"
	CollectionsFile = "collections.json"
)
