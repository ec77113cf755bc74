// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/modpad/modpad/internal/assetfile"
	"github.com/modpad/modpad/internal/config"
	"github.com/modpad/modpad/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. All Cobra command
	// handlers receive an App reference and go through it for config,
	// document storage, and output streams.
	App struct {
		Config config.Provider
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer

		flags rootFlagValues

		// Set by the root command before any subcommand runs.
		cfg     *config.Config
		store   *assetfile.Store
		logger  *log.Logger
		verbose bool
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp creates an App from deps.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	app.cfg = config.DefaultConfig()
	app.logger = newLogger(app.stderr, false)
	app.store = assetfile.NewStore(assetfile.WithLogger(app.logger))
	return app
}

// setup loads configuration and builds the logger and store. A config that
// fails to load is reported as a warning and defaults are used.
func (a *App) setup(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.flags.verbose))
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg
	applyColorScheme(cfg.UI.ColorScheme)
	a.verbose = a.flags.verbose || cfg.UI.Verbose
	a.logger = newLogger(a.stderr, a.verbose)
	a.store = assetfile.NewStore(
		assetfile.WithTableOptions(cfg.TableOptions()),
		assetfile.WithLogger(a.logger),
	)
}

func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: types.FilesystemPath(a.flags.configPath)}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "modpad"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
