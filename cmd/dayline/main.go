package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/dayline/internal/catalog"
	"github.com/alexanderramin/dayline/internal/cli"
	"github.com/alexanderramin/dayline/internal/config"
	"github.com/alexanderramin/dayline/internal/db"
	"github.com/alexanderramin/dayline/internal/logger"
	"github.com/alexanderramin/dayline/internal/repository"
	"github.com/alexanderramin/dayline/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

func main() {
	app := &cli.App{}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var database *sql.DB
	app.Bootstrap = func(flags *pflag.FlagSet) error {
		var err error
		database, err = bootstrap(app, flags)
		return err
	}
	app.Shutdown = func() error {
		if database == nil {
			return nil
		}
		return database.Close()
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		if database != nil {
			database.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads config, starts logging, opens the database and wires the
// services into app.
func bootstrap(app *cli.App, flags *pflag.FlagSet) (*sql.DB, error) {
	cfgFile, _ := flags.GetString("config")
	v := config.New(cfgFile)
	if err := v.BindPFlag("log.debug", flags.Lookup("debug")); err != nil {
		return nil, err
	}
	if f := flags.Lookup("db"); f != nil && f.Changed {
		v.Set("db_path", f.Value.String())
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(logger.Config{Debug: cfg.Log.Debug, Dir: cfg.Log.Dir}); err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	if cfg.File != "" {
		logger.Debug("config loaded", "file", cfg.File)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	slotDefs, err := cfg.SlotDefinitions()
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Wire repositories
	directiveRepo := repository.NewSQLiteDirectiveRepo(database)
	mealRepo := repository.NewSQLiteMealRepo(database)
	workoutRepo := repository.NewSQLiteWorkoutRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(logger.Logger)
	reward := service.NewLogRewardSignal(logger.Logger)

	app.Timeline = service.NewTimelineService(profileRepo, directiveRepo, mealRepo, workoutRepo, slotDefs, observer)
	app.Completion = service.NewCompletionService(profileRepo, directiveRepo, uow, cat, reward, slotDefs, observer)
	app.Directives = service.NewDirectiveService(directiveRepo, uow, observer)
	app.Activity = service.NewActivityService(mealRepo, workoutRepo, uow, cat, observer)
	app.Profile = service.NewProfileService(profileRepo, observer)
	app.Foods = service.NewFoodService(cat)
	app.Location = loc

	return database, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	logger.Info("catalog loaded", "path", path, "foods", cat.General.Len())
	return cat, nil
}
