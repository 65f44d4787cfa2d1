package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/config"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/export"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/repository"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/usecase"
)

// RunApp - runs the enumeration once and exports the result.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	runID := uuid.New().String()
	logger = logger.With("run_id", runID)
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	exporters, err := fileExporters(conf.Export, runID)
	if err != nil {
		return err
	}

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		classRepo := repository.NewClassRepository(redisStorage.Connection)
		exporters = append(exporters, export.NewStoreExporter(classRepo))
	}

	enumerator := usecase.NewEnumerator(
		logger.With("component", "enumerator"),
		tictactoe.NewWalker(conf.Workers),
		exporters...,
	)

	log.Info("Starting enumeration", "workers", conf.Workers, "exporters", len(exporters))

	summary, err := enumerator.Run(ctx)
	if err != nil {
		return fmt.Errorf("enumeration failed: %w", err)
	}

	log.Info("Enumeration finished",
		"records", summary.Totals.Terminal(),
		"classes", summary.ClassCount(),
		"export_dir", conf.Export.Dir,
	)

	return nil
}

func fileExporters(conf config.Export, runID string) ([]usecase.Exporter, error) {
	exporters := make([]usecase.Exporter, 0, len(conf.Formats)+1)

	for _, name := range conf.Formats {
		format, err := export.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("invalid export config: %w", err)
		}

		switch format {
		case export.FormatJSON:
			exporters = append(exporters, export.NewJSONExporter(conf.Dir))
		case export.FormatParquet:
			exporters = append(exporters, export.NewParquetExporter(conf.Dir, runID))
		}
	}

	return exporters, nil
}
