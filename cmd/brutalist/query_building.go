package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"brutalist/internal/dataset"
	"brutalist/internal/geo"
	"brutalist/internal/query"
)

type neighborView struct {
	Building       dataset.Building `json:"building"`
	DistanceMeters float64          `json:"distanceMeters"`
	Distance       string           `json:"distance"`
}

type buildingView struct {
	Building dataset.Building `json:"building"`
	Nearby   []neighborView   `json:"nearby"`
}

func queryBuildingCmd() *cobra.Command {
	var nearby int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "building <id>",
		Short: "Display a building and the buildings nearest to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryBuilding(cmd, args[0], nearby, asJSON)
		},
	}
	cmd.Flags().IntVar(&nearby, "nearby", 0, "Number of nearby buildings to show (0 uses nearby.count)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func runQueryBuilding(cmd *cobra.Command, id string, nearby int, asJSON bool) error {
	if nearby < 0 {
		return fmt.Errorf("--nearby must not be negative")
	}

	cfg, ds, err := openDataset(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	b, ok := ds.Building(id)
	if !ok {
		fmt.Fprintf(out, "No building found for %q.\n", id)
		return nil
	}

	if nearby == 0 {
		nearby = cfg.Nearby.Count
	}
	neighbors := neighborViews(query.NewEngine(ds).Nearby(b, nearby))

	if asJSON {
		return writeJSON(out, buildingView{Building: b, Nearby: neighbors})
	}

	printBuilding(out, b)
	if len(neighbors) > 0 {
		fmt.Fprintln(out, "Nearby:")
		printNeighbors(out, neighbors)
	}
	return nil
}

func printBuilding(out io.Writer, b dataset.Building) {
	fmt.Fprintf(out, "Name: %s\n", b.Name)
	fmt.Fprintf(out, "ID: %s\n", b.ID)
	fmt.Fprintf(out, "Area: %s\n", b.Area)
	fmt.Fprintf(out, "Type: %s\n", b.Type.Label())
	fmt.Fprintf(out, "Status: %s\n", b.Status.Label())
	fmt.Fprintf(out, "Year: %s\n", formatYear(b.Year))
	fmt.Fprintf(out, "Architect: %s\n", formatOptional(b.Architect))
	fmt.Fprintf(out, "Location: %.4f, %.4f\n", b.Lat, b.Lng)
	if len(b.Tags) > 0 {
		fmt.Fprintf(out, "Tags: %s\n", joinValues(b.Tags))
	}
	if b.ShortBlurb != "" {
		fmt.Fprintf(out, "\n%s\n\n", b.ShortBlurb)
	}
	if len(b.Photos) > 0 {
		fmt.Fprintln(out, "Photos:")
		for _, p := range b.Photos {
			fmt.Fprintf(out, "  - %s (%s, %s)\n", p.URL, p.Credit, p.License)
		}
	}
	if len(b.Sources) > 0 {
		fmt.Fprintln(out, "Sources:")
		for _, s := range b.Sources {
			fmt.Fprintf(out, "  - %s: %s\n", s.Label, s.URL)
		}
	}
}

func neighborViews(neighbors []query.Neighbor) []neighborView {
	views := make([]neighborView, 0, len(neighbors))
	for _, n := range neighbors {
		views = append(views, neighborView{
			Building:       n.Building,
			DistanceMeters: n.Distance,
			Distance:       geo.FormatDistance(n.Distance),
		})
	}
	return views
}

func printNeighbors(out io.Writer, neighbors []neighborView) {
	for _, n := range neighbors {
		fmt.Fprintf(out, "  - %s (%s) %s away\n", n.Building.Name, n.Building.ID, n.Distance)
	}
}
