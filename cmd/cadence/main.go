package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/alexanderramin/cadence/internal/agenda"
	"github.com/alexanderramin/cadence/internal/calendar"
	"github.com/alexanderramin/cadence/internal/cli"
	"github.com/alexanderramin/cadence/internal/config"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.NoColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// CADENCE_DB overrides the configured database location.
	dbPath := os.Getenv("CADENCE_DB")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	activityRepo := repository.NewSQLiteActivityRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire the remote calendar when credentials exist; otherwise the agenda
	// runs against an empty event list and commits fail with a clear error.
	var source calendar.EventSource = calendar.NoSource{}
	var creator agenda.EventCreator
	caldavCfg := calendar.CalDAVConfig{
		Endpoint:   cfg.CalDAV.Endpoint,
		Username:   cfg.CalDAV.Username,
		Password:   cfg.CalDAV.Password,
		CalendarID: cfg.CalDAV.CalendarID,
	}
	if caldavCfg.Configured() {
		var observer calendar.Observer = calendar.NoopObserver{}
		if os.Getenv("CADENCE_LOG_CALDAV") != "" {
			observer = calendar.NewLogObserver(os.Stderr)
		}
		client := calendar.NewCalDAVClient(caldavCfg, observer)
		source = client
		creator = client
	}

	agendaSvc := service.NewAgendaService(activityRepo, profileRepo, source, nil)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Activities: service.NewActivityService(activityRepo),
		Profiles:   service.NewProfileService(profileRepo),
		Agendas:    agendaSvc,
		Commits:    service.NewCommitService(agendaSvc, creator, cfg.CalDAV.CalendarID),
		Import:     service.NewImportService(uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
