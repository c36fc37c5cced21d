package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brutalist/internal/query"
)

func queryNearbyCmd() *cobra.Command {
	var count int
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "nearby <id>",
		Short: "Rank the buildings closest to a building",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryNearby(cmd, args[0], count, asJSON)
		},
	}
	cmd.Flags().IntVar(&count, "count", 0, "Number of buildings to return (0 uses nearby.count)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func runQueryNearby(cmd *cobra.Command, id string, count int, asJSON bool) error {
	if count < 0 {
		return fmt.Errorf("--count must not be negative")
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

	if count == 0 {
		count = cfg.Nearby.Count
	}
	neighbors := neighborViews(query.NewEngine(ds).Nearby(b, count))

	if asJSON {
		return writeJSON(out, neighbors)
	}
	if len(neighbors) == 0 {
		fmt.Fprintln(out, "No other buildings found.")
		return nil
	}
	printNeighbors(out, neighbors)
	return nil
}
