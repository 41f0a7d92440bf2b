package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/skillpilot/internal/catalog"
	"github.com/alexanderramin/skillpilot/internal/cli"
	"github.com/alexanderramin/skillpilot/internal/config"
	"github.com/alexanderramin/skillpilot/internal/db"
	"github.com/alexanderramin/skillpilot/internal/repository"
	"github.com/alexanderramin/skillpilot/internal/roadmap"
	"github.com/alexanderramin/skillpilot/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Load the curriculum catalog before touching the database so a broken
	// catalog file fails fast.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	goalRepo := repository.NewSQLiteGoalRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	clock := roadmap.SystemClock{}
	generator := roadmap.NewGenerator(roadmap.WithCatalog(cat), roadmap.WithClock(clock))

	app := &cli.App{
		Plans:        service.NewPlanService(goalRepo, taskRepo, uow, generator, clock, observer),
		Tasks:        service.NewTaskService(goalRepo, taskRepo, clock, observer),
		Progress:     service.NewProgressService(goalRepo, taskRepo, clock, observer),
		Catalog:      cat,
		Clock:        clock,
		DefaultHours: cfg.DefaultHours,
	}

	// Detect interactive terminal for the wizard and the browse view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
