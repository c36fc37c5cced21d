package query

import "brutalist/internal/dataset"

func intPtr(v int) *int { return &v }

func building(id, name, area string, lat, lng float64, t dataset.BuildingType, s dataset.BuildingStatus, year *int) dataset.Building {
	return dataset.Building{ID: id, Name: name, Area: area, Lat: lat, Lng: lng, Type: t, Status: s, Year: year}
}

func exampleDataset() *dataset.Dataset {
	return dataset.New(
		[]dataset.Building{
			building("a", "Trellick Tower", "Kensington", 51.5223, -0.2044, dataset.TypeHousing, dataset.StatusStanding, intPtr(1972)),
			building("b", "Barbican Estate", "City of London", 51.5200, -0.0935, dataset.TypeMixedUse, dataset.StatusStanding, intPtr(1969)),
		},
		nil,
	)
}

func fullDataset() *dataset.Dataset {
	return dataset.New(
		[]dataset.Building{
			building("trellick", "Trellick Tower", "Kensington", 51.5223, -0.2044, dataset.TypeHousing, dataset.StatusStanding, intPtr(1972)),
			building("barbican", "Barbican Estate", "City of London", 51.5200, -0.0935, dataset.TypeMixedUse, dataset.StatusStanding, intPtr(1969)),
			building("balfron", "Balfron Tower", "Poplar", 51.5131, -0.0125, dataset.TypeHousing, dataset.StatusAltered, intPtr(1967)),
			building("rhg", "Robin Hood Gardens", "Poplar", 51.5104, -0.0102, dataset.TypeHousing, dataset.StatusDemolished, intPtr(1972)),
			building("park-hill", "Park Hill", "Sheffield", 53.3786, -1.4610, dataset.TypeHousing, dataset.StatusAltered, intPtr(1961)),
			building("anglia", "Anglia Square", "Norwich", 52.6360, 1.2950, dataset.TypeCommercial, dataset.StatusThreatened, nil),
			building("dunelm", "Dunelm House", "Durham", 54.7730, -1.5720, dataset.TypeEducation, dataset.StatusThreatened, intPtr(1966)),
			building("preston", "Preston Bus Station", "Preston", 53.7596, -2.6995, dataset.TypeTransport, dataset.StatusStanding, intPtr(1970)),
		},
		[]dataset.Collection{
			{ID: "east-end", Name: "EAST END", BuildingIDs: []string{"rhg", "balfron", "demolished-elsewhere"}},
			{ID: "dangling", Name: "DANGLING", BuildingIDs: []string{"nope"}},
		},
	)
}

func ids(buildings []dataset.Building) []string {
	out := make([]string, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, b.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
