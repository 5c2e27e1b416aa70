package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jstrick/dojo/internal/cli"
	"github.com/jstrick/dojo/internal/constants"
	apperrors "github.com/jstrick/dojo/internal/errors"
	"github.com/jstrick/dojo/internal/logger"
	"github.com/jstrick/dojo/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	DataDir string `help:"Data directory, or a .db file for SQLite storage." type:"path" default:"~/.config/dojo"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize dojo storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit   cli.HabitCmd   `cmd:"" help:"Track daily habits."`
	Journal cli.JournalCmd `cmd:"" help:"Keep a philosophical journal."`
	Urge    cli.UrgeCmd    `cmd:"" help:"Ride out cravings with urge surfing."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal self-improvement tracker: habit streaks, philosophical journaling, urge surfing"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	// A path ending in .db selects the SQLite store; anything else is a
	// directory of JSON collection files
	var store storage.Provider
	logDir := CLI.DataDir
	if strings.HasSuffix(CLI.DataDir, ".db") {
		store = storage.NewSQLiteStore(CLI.DataDir)
		logDir = filepath.Dir(CLI.DataDir)
	} else {
		store = storage.NewJSONStore(CLI.DataDir)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	apperrors.Fatal(store.Init())
	defer store.Close()

	appCtx := cli.NewContext(store)
	apperrors.Fatal(ctx.Run(appCtx))
}
