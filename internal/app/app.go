package app

import (
	"context"
	"fmt"
	"io"

	"github.com/riskibarqy/team-registry/internal/config"
	"github.com/riskibarqy/team-registry/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/team-registry/internal/interfaces/report"
	"github.com/riskibarqy/team-registry/internal/interfaces/seedfile"
	"github.com/riskibarqy/team-registry/internal/platform/logging"
	"github.com/riskibarqy/team-registry/internal/usecase"
)

// App is the wired object graph over one fresh in-memory registry.
type App struct {
	cfg      config.Config
	logger   *logging.Logger
	Registry *usecase.Registry
	Query    *usecase.QueryEngine
	importer *usecase.ImportService
	reports  *usecase.ReportService
	loader   *seedfile.Loader
}

func New(cfg config.Config, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.With("service", cfg.ServiceName, "env", cfg.AppEnv)

	teamRepo := memory.NewTeamRepository()
	playerRepo := memory.NewPlayerRepository()

	registry := usecase.NewRegistry(teamRepo, playerRepo, logger.Named("registry"))
	query := usecase.NewQueryEngine(registry)

	return &App{
		cfg:      cfg,
		logger:   logger,
		Registry: registry,
		Query:    query,
		importer: usecase.NewImportService(registry, cfg.ImportWorkers, logger.Named("import")),
		reports:  usecase.NewReportService(query),
		loader:   seedfile.NewLoader(),
	}
}

// Seed imports the configured batch. With neither SEED_FILE nor SEED_DEMO set
// the registry stays empty.
func (a *App) Seed(ctx context.Context) (usecase.ImportResult, error) {
	var batch usecase.ImportBatch
	switch {
	case a.cfg.SeedFile != "":
		loaded, err := a.loader.LoadFile(ctx, a.cfg.SeedFile)
		if err != nil {
			return usecase.ImportResult{}, fmt.Errorf("load seed file: %w", err)
		}
		batch = loaded
	case a.cfg.SeedDemo:
		batch = usecase.ImportBatch{
			Teams:    memory.SeedTeams(),
			Players:  memory.SeedPlayers(),
			Captains: memory.SeedCaptains(),
		}
	default:
		a.logger.InfoContext(ctx, "no seed configured")
		return usecase.ImportResult{}, nil
	}

	result, err := a.importer.Import(ctx, batch)
	if err != nil {
		return usecase.ImportResult{}, fmt.Errorf("import seed: %w", err)
	}

	return result, nil
}

// Run seeds the registry and writes the league report to w.
func (a *App) Run(ctx context.Context, w io.Writer) (usecase.ImportResult, error) {
	result, err := a.Seed(ctx)
	if err != nil {
		return usecase.ImportResult{}, err
	}

	league, err := a.reports.Build(ctx, a.cfg.ReportTopPlayers)
	if err != nil {
		return result, fmt.Errorf("build report: %w", err)
	}
	if err := report.Write(ctx, w, league); err != nil {
		return result, err
	}

	return result, nil
}
