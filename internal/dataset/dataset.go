// Package dataset holds the immutable building and collection snapshot and
// its identifier lookups.
package dataset

import "slices"

// Dataset is a read-only snapshot of buildings and collections. It is built
// once with New and is safe for concurrent readers.
type Dataset struct {
	buildings   []Building
	collections []Collection

	buildingIndex   map[string]int
	collectionIndex map[string]int
	members         map[string]map[string]struct{}
}

func New(buildings []Building, collections []Collection) *Dataset {
	d := &Dataset{
		buildings:       slices.Clone(buildings),
		collections:     slices.Clone(collections),
		buildingIndex:   make(map[string]int, len(buildings)),
		collectionIndex: make(map[string]int, len(collections)),
		members:         make(map[string]map[string]struct{}, len(collections)),
	}
	if d.buildings == nil {
		d.buildings = []Building{}
	}
	if d.collections == nil {
		d.collections = []Collection{}
	}

	for i, b := range d.buildings {
		if _, exists := d.buildingIndex[b.ID]; !exists {
			d.buildingIndex[b.ID] = i
		}
	}
	for i, c := range d.collections {
		if _, exists := d.collectionIndex[c.ID]; exists {
			continue
		}
		d.collectionIndex[c.ID] = i
		set := make(map[string]struct{}, len(c.BuildingIDs))
		for _, id := range c.BuildingIDs {
			set[id] = struct{}{}
		}
		d.members[c.ID] = set
	}
	return d
}

// Buildings returns every building in stored order.
func (d *Dataset) Buildings() []Building {
	return slices.Clone(d.buildings)
}

// Collections returns every collection in stored order.
func (d *Dataset) Collections() []Collection {
	return slices.Clone(d.collections)
}

// Building returns the first building whose id equals id exactly.
func (d *Dataset) Building(id string) (Building, bool) {
	i, ok := d.buildingIndex[id]
	if !ok {
		return Building{}, false
	}
	return d.buildings[i], true
}

// Collection returns the first collection whose id equals id exactly.
func (d *Dataset) Collection(id string) (Collection, bool) {
	i, ok := d.collectionIndex[id]
	if !ok {
		return Collection{}, false
	}
	return d.collections[i], true
}

// InCollection reports whether collectionID resolves and lists buildingID.
func (d *Dataset) InCollection(collectionID, buildingID string) bool {
	set, ok := d.members[collectionID]
	if !ok {
		return false
	}
	_, ok = set[buildingID]
	return ok
}

// BuildingsByCollection returns the buildings listed by the collection, in
// dataset order. Unknown collections and dangling ids yield nothing.
func (d *Dataset) BuildingsByCollection(collectionID string) []Building {
	set, ok := d.members[collectionID]
	if !ok {
		return []Building{}
	}
	out := make([]Building, 0, len(set))
	for _, b := range d.buildings {
		if _, ok := set[b.ID]; ok {
			out = append(out, b)
		}
	}
	return out
}

// CollectionSize counts the distinct ids in the collection that resolve to a
// building.
func (d *Dataset) CollectionSize(collectionID string) int {
	set, ok := d.members[collectionID]
	if !ok {
		return 0
	}
	n := 0
	for id := range set {
		if _, ok := d.buildingIndex[id]; ok {
			n++
		}
	}
	return n
}
