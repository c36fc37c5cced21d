package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"brutalist/internal/config"
)

func initCmd() *cobra.Command {
	var projectName string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter brutalist.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(cmd, projectName)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", config.DefaultConfig().Project, "Project name")
	return cmd
}

func runInit(cmd *cobra.Command, projectName string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	cfg := config.DefaultConfig()
	cfg.Project = projectName
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}
