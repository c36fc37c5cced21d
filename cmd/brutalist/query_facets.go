package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"brutalist/internal/query"
)

func queryFacetsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List filter values with building counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryFacets(cmd, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func runQueryFacets(cmd *cobra.Command, asJSON bool) error {
	_, ds, err := openDataset(cmd)
	if err != nil {
		return err
	}

	facets := query.NewEngine(ds).Facets(ds.Buildings())
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, facets)
	}

	printFacetGroup(out, "Types", facets.Types)
	fmt.Fprintln(out, "")
	printFacetGroup(out, "Statuses", facets.Statuses)
	fmt.Fprintln(out, "")
	printFacetGroup(out, "Decades", facets.Decades)
	return nil
}

func printFacetGroup(out io.Writer, title string, counts []query.FacetCount) {
	fmt.Fprintf(out, "%s:\n", title)
	for _, fc := range counts {
		fmt.Fprintf(out, "  %-12s %-12s %d\n", fc.Value, fc.Label, fc.Count)
	}
}
