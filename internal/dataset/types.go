package dataset

import "brutalist/internal/geo"

type Photo struct {
	URL     string `json:"url" yaml:"url"`
	Credit  string `json:"credit" yaml:"credit"`
	License string `json:"license" yaml:"license"`
}

type Source struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Building is a single landmark record. Year, Architect, Image and ImageAlt
// are nil when unknown.
type Building struct {
	ID         string         `json:"id" yaml:"id"`
	Name       string         `json:"name" yaml:"name"`
	Area       string         `json:"area" yaml:"area"`
	Lat        float64        `json:"lat" yaml:"lat"`
	Lng        float64        `json:"lng" yaml:"lng"`
	Type       BuildingType   `json:"type" yaml:"type"`
	Year       *int           `json:"year" yaml:"year"`
	Architect  *string        `json:"architect" yaml:"architect"`
	Status     BuildingStatus `json:"status" yaml:"status"`
	ShortBlurb string         `json:"shortBlurb" yaml:"shortBlurb"`
	Tags       []string       `json:"tags" yaml:"tags"`
	Photos     []Photo        `json:"photos" yaml:"photos"`
	Sources    []Source       `json:"sources" yaml:"sources"`
	Image      *string        `json:"image,omitempty" yaml:"image,omitempty"`
	ImageAlt   *string        `json:"imageAlt,omitempty" yaml:"imageAlt,omitempty"`
}

func (b Building) Point() geo.Point {
	return geo.Point{Lat: b.Lat, Lng: b.Lng}
}

// Collection is a curated grouping of buildings. BuildingIDs may name
// buildings that are not in the dataset.
type Collection struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	BuildingIDs []string `json:"buildingIds" yaml:"buildingIds"`
}
