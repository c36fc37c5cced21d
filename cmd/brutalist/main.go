package main

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "brutalist.yaml"

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "brutalist",
		Short:        "Query the Brutalist Britain building catalogue",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to the project config file")
	root.AddCommand(queryCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(initCmd())
	root.AddCommand(versionCmd())
	return root
}
