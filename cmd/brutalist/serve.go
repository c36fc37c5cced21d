package main

import (
	"github.com/spf13/cobra"

	"brutalist/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, ds, err := openDataset(cmd)
	if err != nil {
		return err
	}

	server := mcp.NewServer(ds, version, cfg.Nearby.Count)
	return server.Run(cmd.Context(), &sdk.StdioTransport{})
}
