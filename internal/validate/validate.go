// Package validate checks a loaded dataset for integrity problems.
package validate

import (
	"fmt"
	"time"

	"brutalist/internal/dataset"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeDuplicateID          = "duplicate_id"
	codeCoordinateOutOfRange = "coordinate_out_of_range"
	codeUnknownType          = "unknown_type"
	codeUnknownStatus        = "unknown_status"
	codeMissingName          = "missing_name"
	codeImplausibleYear      = "implausible_year"
	codeDanglingReference    = "dangling_reference"
	codeEmptyCollection      = "empty_collection"
)

// EarliestYear is the lowest construction year accepted without a warning.
const EarliestYear = 1900

type Issue struct {
	Severity   Severity
	Code       string
	Message    string
	Building   string
	Collection string
}

type Report struct {
	Issues []Issue
}

func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Catalog is the part of the dataset the checks read.
type Catalog interface {
	Buildings() []dataset.Building
	Collections() []dataset.Collection
	Building(id string) (dataset.Building, bool)
	CollectionSize(id string) int
}

func Run(catalog Catalog) (*Report, error) {
	if catalog == nil {
		return nil, fmt.Errorf("dataset is required")
	}

	latest := time.Now().Year()
	issues := make([]Issue, 0)

	seen := make(map[string]struct{})
	for _, b := range catalog.Buildings() {
		if _, dup := seen[b.ID]; dup {
			issues = append(issues, buildingIssue(b, SeverityError, codeDuplicateID, "duplicate building id"))
		}
		seen[b.ID] = struct{}{}
		issues = append(issues, validateBuilding(b, latest)...)
	}

	seenCollections := make(map[string]struct{})
	for _, c := range catalog.Collections() {
		if _, dup := seenCollections[c.ID]; dup {
			issues = append(issues, collectionIssue(c, SeverityError, codeDuplicateID, "duplicate collection id"))
		}
		seenCollections[c.ID] = struct{}{}
		issues = append(issues, validateCollection(catalog, c)...)
	}

	return &Report{Issues: issues}, nil
}

func validateBuilding(b dataset.Building, latestYear int) []Issue {
	var issues []Issue
	if b.Name == "" {
		issues = append(issues, buildingIssue(b, SeverityError, codeMissingName, "missing name"))
	}
	if b.Lat < -90 || b.Lat > 90 || b.Lng < -180 || b.Lng > 180 {
		issues = append(issues, buildingIssue(b, SeverityError, codeCoordinateOutOfRange,
			fmt.Sprintf("coordinates out of range: %g, %g", b.Lat, b.Lng)))
	}
	if !b.Type.Valid() {
		issues = append(issues, buildingIssue(b, SeverityError, codeUnknownType,
			fmt.Sprintf("unknown type: %s", b.Type)))
	}
	if !b.Status.Valid() {
		issues = append(issues, buildingIssue(b, SeverityError, codeUnknownStatus,
			fmt.Sprintf("unknown status: %s", b.Status)))
	}
	if b.Year != nil && (*b.Year < EarliestYear || *b.Year > latestYear) {
		issues = append(issues, buildingIssue(b, SeverityWarn, codeImplausibleYear,
			fmt.Sprintf("implausible construction year: %d", *b.Year)))
	}
	return issues
}

func validateCollection(catalog Catalog, c dataset.Collection) []Issue {
	var issues []Issue
	for _, id := range c.BuildingIDs {
		if _, ok := catalog.Building(id); !ok {
			issue := collectionIssue(c, SeverityWarn, codeDanglingReference,
				fmt.Sprintf("references unknown building: %s", id))
			issue.Building = id
			issues = append(issues, issue)
		}
	}
	if catalog.CollectionSize(c.ID) == 0 {
		issues = append(issues, collectionIssue(c, SeverityWarn, codeEmptyCollection, "no resolvable buildings"))
	}
	return issues
}

func buildingIssue(b dataset.Building, severity Severity, code, message string) Issue {
	return Issue{
		Severity: severity,
		Code:     code,
		Message:  message,
		Building: b.ID,
	}
}

func collectionIssue(c dataset.Collection, severity Severity, code, message string) Issue {
	return Issue{
		Severity:   severity,
		Code:       code,
		Message:    message,
		Collection: c.ID,
	}
}
