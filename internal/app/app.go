package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/dialsim/internal/cli"
	"github.com/agbru/dialsim/internal/config"
	"github.com/agbru/dialsim/internal/dial"
	apperrors "github.com/agbru/dialsim/internal/errors"
	"github.com/agbru/dialsim/internal/logging"
	"github.com/agbru/dialsim/internal/ui"
)

// Application represents the dialsim application instance.
type Application struct {
	Config    config.AppConfig
	Factory   dial.CounterFactory
	Logger    logging.Logger
	ErrWriter io.Writer
	// In is read when the input path is "-" and by the REPL.
	In io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CounterFactory for the application.
func WithFactory(f dial.CounterFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets the logger used by the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets the reader used for standard input.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = dial.NewDefaultFactory()
	}

	programName := "dialsim"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = newLogger(cfg, errWriter)
	}
	return app, nil
}

// newLogger builds the diagnostic logger selected by --log-format.
func newLogger(cfg config.AppConfig, w io.Writer) logging.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return logging.NewLogger(w, "dialsim", cfg.Verbose)
	}
	return logging.NewConsoleLogger(w, "dialsim", cfg.Verbose)
}

// Run executes the application based on the configured mode and returns the
// process exit code. Failures are reported on ErrWriter.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var err error
	if a.Config.REPL {
		err = a.runREPL(ctx, out)
	} else {
		err = a.runCount(ctx, out)
	}
	if err != nil {
		a.Logger.Debug("run failed", logging.Err(err))
	}
	return apperrors.HandleError(err, a.ErrWriter, cli.CLIColorProvider{})
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session on a.In.
func (a *Application) runREPL(ctx context.Context, out io.Writer) error {
	repl := cli.NewREPL(a.Factory)
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start(ctx)
	return nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
