// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/invowk/subsys/internal/config"
	"github.com/invowk/subsys/internal/execctx"
	"github.com/invowk/subsys/internal/hostenv"
	"github.com/invowk/subsys/internal/platform"
	"github.com/invowk/subsys/internal/toolchain"
)

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Loaded, error)
	}

	// App wires CLI services and shared dependencies. All Cobra command handlers
	// receive an App reference and reach the host only through it.
	App struct {
		Config  ConfigProvider
		environ func() []string
		locator toolchain.Locator
		goos    string
		stdout  io.Writer
		stderr  io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config  ConfigProvider
		Environ func() []string
		Locator toolchain.Locator
		// GOOS overrides runtime.GOOS for platform auto-detection.
		GOOS   string
		Stdout io.Writer
		Stderr io.Writer
	}

	// rootFlags are the persistent flags of one command tree.
	rootFlags struct {
		configPath string
		platform   string
		verbose    bool
	}

	// session is the per-invocation state shared by subcommands.
	session struct {
		cfg      *config.Config
		cfgPath  string
		logger   *log.Logger
		platform platform.Platform
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Environ == nil {
		deps.Environ = os.Environ
	}
	if deps.Locator == nil {
		deps.Locator = toolchain.PathLocator{}
	}
	if deps.GOOS == "" {
		deps.GOOS = runtime.GOOS
	}

	return &App{
		Config:  deps.Config,
		environ: deps.Environ,
		locator: deps.Locator,
		goos:    deps.GOOS,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
	}
}

func (a *App) hostEnv() hostenv.Env {
	return hostenv.FromEnviron(a.environ())
}

// newSession loads configuration, applies flag overrides and selects the platform.
func (a *App) newSession(ctx context.Context, flags *rootFlags) (*session, error) {
	loaded, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return nil, err
	}
	cfg := loaded.Config
	if flags.platform != "" {
		cfg.Platform = config.PlatformName(flags.platform)
	}

	logger := newLogger(a.stderr, cfg.LogLevel, flags.verbose)
	opts := []platform.Option{
		platform.WithLogger(logger),
		platform.WithLocator(a.locator),
		platform.WithEnviron(a.environ),
		platform.WithShell(string(cfg.Shell)),
		platform.WithTranslator(string(cfg.PathTranslator)),
	}

	var p platform.Platform
	if cfg.Platform == config.PlatformAuto {
		p = platform.Detect(a.hostEnv(), a.goos, opts...)
	} else {
		p, err = platform.Lookup(string(cfg.Platform), opts...)
		if err != nil {
			return nil, classifyError(err, "select platform", string(cfg.Platform))
		}
	}
	logger.Debug("platform selected", "platform", p.Name(), "config", loaded.Path)

	return &session{cfg: cfg, cfgPath: loaded.Path, logger: logger, platform: p}, nil
}

// configure builds a fresh execution context with the session's platform.
func (s *session) configure(ctx context.Context) (*execctx.Context, error) {
	ec, err := platform.ConfigureNew(ctx, s.platform)
	if err != nil {
		return nil, classifyError(err, "configure "+s.platform.Name()+" platform", "")
	}
	return ec, nil
}

func newLogger(w io.Writer, level config.LogLevel, verbose bool) *log.Logger {
	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{Prefix: config.AppName, Level: lvl})
}
