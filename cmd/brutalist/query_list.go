package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brutalist/internal/query"
)

type listOptions struct {
	search     string
	types      []string
	statuses   []string
	decades    []int
	collection string
	json       bool
}

func queryListCmd() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List buildings matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryList(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.search, "search", "", "Text to match against name and area")
	cmd.Flags().StringSliceVar(&opts.types, "type", nil, "Building type to include (repeatable)")
	cmd.Flags().StringSliceVar(&opts.statuses, "status", nil, "Status to include (repeatable)")
	cmd.Flags().IntSliceVar(&opts.decades, "decade", nil, "Decade to include, e.g. 1960 (repeatable)")
	cmd.Flags().StringVar(&opts.collection, "collection", "", "Collection id to restrict to")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print JSON")
	return cmd
}

func runQueryList(cmd *cobra.Command, opts listOptions) error {
	filter, err := query.ParseFilter(opts.search, opts.types, opts.statuses, opts.decades, opts.collection)
	if err != nil {
		return err
	}

	_, ds, err := openDataset(cmd)
	if err != nil {
		return err
	}

	buildings := query.NewEngine(ds).FilterAll(filter)
	out := cmd.OutOrStdout()
	if opts.json {
		return writeJSON(out, buildings)
	}
	if len(buildings) == 0 {
		fmt.Fprintln(out, "No buildings found.")
		return nil
	}
	for _, b := range buildings {
		printBuildingLine(out, b)
	}
	return nil
}
