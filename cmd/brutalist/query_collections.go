package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brutalist/internal/dataset"
)

type collectionView struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	BuildingCount int                `json:"buildingCount"`
	Buildings     []dataset.Building `json:"buildings,omitempty"`
}

func queryCollectionsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List curated collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryCollections(cmd, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func queryCollectionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "collection <id>",
		Short: "Display a collection and its buildings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryCollection(cmd, args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func runQueryCollections(cmd *cobra.Command, asJSON bool) error {
	_, ds, err := openDataset(cmd)
	if err != nil {
		return err
	}

	collections := ds.Collections()
	views := make([]collectionView, 0, len(collections))
	for _, c := range collections {
		views = append(views, collectionView{
			ID:            c.ID,
			Name:          c.Name,
			Description:   c.Description,
			BuildingCount: ds.CollectionSize(c.ID),
		})
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, views)
	}
	if len(views) == 0 {
		fmt.Fprintln(out, "No collections found.")
		return nil
	}
	for _, v := range views {
		fmt.Fprintf(out, "%s (%s) %d buildings\n", v.Name, v.ID, v.BuildingCount)
	}
	return nil
}

func runQueryCollection(cmd *cobra.Command, id string, asJSON bool) error {
	_, ds, err := openDataset(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	c, ok := ds.Collection(id)
	if !ok {
		fmt.Fprintf(out, "No collection found for %q.\n", id)
		return nil
	}

	members := ds.BuildingsByCollection(c.ID)
	if asJSON {
		return writeJSON(out, collectionView{
			ID:            c.ID,
			Name:          c.Name,
			Description:   c.Description,
			BuildingCount: len(members),
			Buildings:     members,
		})
	}

	fmt.Fprintf(out, "Name: %s\n", c.Name)
	fmt.Fprintf(out, "ID: %s\n", c.ID)
	if c.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", c.Description)
	}
	fmt.Fprintf(out, "Buildings (%d):\n", len(members))
	for _, b := range members {
		fmt.Fprint(out, "  ")
		printBuildingLine(out, b)
	}
	return nil
}
