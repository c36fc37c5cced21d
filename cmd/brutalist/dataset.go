package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"brutalist/internal/config"
	"brutalist/internal/dataset"
	"brutalist/internal/logger"
	"brutalist/internal/validate"
)

// loadConfig reads the project config and installs the logger it describes.
func loadConfig(cmd *cobra.Command) (*config.ProjectConfig, *slog.Logger, error) {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	log := logger.Setup(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	return cfg, log, nil
}

func loadDataset(ctx context.Context, cfg *config.ProjectConfig, log *slog.Logger) (*dataset.Dataset, error) {
	ds, err := dataset.Load(ctx, dataset.Sources{
		Buildings:   cfg.Dataset.Buildings,
		Collections: cfg.Dataset.Collections,
	})
	if err != nil {
		return nil, err
	}
	log.Info("dataset_loaded",
		"buildings", len(ds.Buildings()),
		"collections", len(ds.Collections()),
		"bundled", len(cfg.Dataset.Buildings) == 0 && len(cfg.Dataset.Collections) == 0,
	)
	return ds, nil
}

// openDataset loads the configured dataset and checks it. Issues are logged;
// in strict mode any error-level issue fails the load.
func openDataset(cmd *cobra.Command) (*config.ProjectConfig, *dataset.Dataset, error) {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	ds, err := loadDataset(cmd.Context(), cfg, log)
	if err != nil {
		return nil, nil, err
	}

	report, err := validate.Run(ds)
	if err != nil {
		return nil, nil, err
	}
	errorCount := 0
	for _, issue := range report.Issues {
		attrs := []any{"code", issue.Code, "building", issue.Building, "collection", issue.Collection}
		if issue.Severity == validate.SeverityError {
			errorCount++
			log.Error(issue.Message, attrs...)
			continue
		}
		log.Warn(issue.Message, attrs...)
	}
	if cfg.Dataset.Strict && errorCount > 0 {
		return nil, nil, fmt.Errorf("dataset has %d validation errors", errorCount)
	}
	return cfg, ds, nil
}
