package main

import "github.com/spf13/cobra"

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the building catalogue from the CLI",
	}
	cmd.AddCommand(queryListCmd())
	cmd.AddCommand(queryBuildingCmd())
	cmd.AddCommand(queryNearbyCmd())
	cmd.AddCommand(queryCollectionsCmd())
	cmd.AddCommand(queryCollectionCmd())
	cmd.AddCommand(queryFacetsCmd())
	return cmd
}
