package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

type BuildingType string

const (
	TypeHousing    BuildingType = "housing"
	TypeCivic      BuildingType = "civic"
	TypeMixedUse   BuildingType = "mixed_use"
	TypeEducation  BuildingType = "education"
	TypeTransport  BuildingType = "transport"
	TypeCommercial BuildingType = "commercial"
	TypeOther      BuildingType = "other"
)

type BuildingStatus string

const (
	StatusStanding   BuildingStatus = "standing"
	StatusAltered    BuildingStatus = "altered"
	StatusThreatened BuildingStatus = "threatened"
	StatusDemolished BuildingStatus = "demolished"
)

type TypeOption struct {
	Value BuildingType
	Label string
}

type StatusOption struct {
	Value BuildingStatus
	Label string
}

// BuildingTypes lists every type in display order.
var BuildingTypes = []TypeOption{
	{Value: TypeHousing, Label: "HOUSING"},
	{Value: TypeCivic, Label: "CIVIC"},
	{Value: TypeMixedUse, Label: "MIXED USE"},
	{Value: TypeEducation, Label: "EDUCATION"},
	{Value: TypeTransport, Label: "TRANSPORT"},
	{Value: TypeCommercial, Label: "COMMERCIAL"},
	{Value: TypeOther, Label: "OTHER"},
}

// BuildingStatuses lists every status in display order.
var BuildingStatuses = []StatusOption{
	{Value: StatusStanding, Label: "STANDING"},
	{Value: StatusAltered, Label: "ALTERED"},
	{Value: StatusThreatened, Label: "THREATENED"},
	{Value: StatusDemolished, Label: "DEMOLISHED"},
}

// Decades are the decade buckets offered as filter facets.
var Decades = []int{1950, 1960, 1970, 1980}

func (t BuildingType) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

func (t BuildingType) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return strings.ToUpper(string(t))
}

func (s BuildingStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s BuildingStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return strings.ToUpper(string(s))
}

func ParseBuildingType(value string) (BuildingType, error) {
	t := BuildingType(strings.ToLower(strings.TrimSpace(value)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown building type: %q", value)
	}
	return t, nil
}

func ParseBuildingStatus(value string) (BuildingStatus, error) {
	s := BuildingStatus(strings.ToLower(strings.TrimSpace(value)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown building status: %q", value)
	}
	return s, nil
}

// DecadeLabel renders a decade bucket the way facet chips show it, e.g. "1960S".
func DecadeLabel(decade int) string {
	return strconv.Itoa(decade) + "S"
}

var (
	typeLabels   = make(map[BuildingType]string, len(BuildingTypes))
	statusLabels = make(map[BuildingStatus]string, len(BuildingStatuses))
)

func init() {
	for _, opt := range BuildingTypes {
		typeLabels[opt.Value] = opt.Label
	}
	for _, opt := range BuildingStatuses {
		statusLabels[opt.Value] = opt.Label
	}
}
