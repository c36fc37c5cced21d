package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"brutalist/internal/dataset"
)

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func joinValues(values []string) string {
	return strings.Join(values, ", ")
}

func formatYear(year *int) string {
	if year == nil {
		return "unknown"
	}
	return strconv.Itoa(*year)
}

func formatOptional(value *string) string {
	if value == nil || *value == "" {
		return "unknown"
	}
	return *value
}

func printBuildingLine(out io.Writer, b dataset.Building) {
	fmt.Fprintf(out, "%s (%s) [%s] %s, %s\n", b.Name, b.ID, b.Status, b.Area, formatYear(b.Year))
}
