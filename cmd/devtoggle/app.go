package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	"go.opencensus.io/trace"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Microsoft/devtoggle/internal/config"
	"github.com/Microsoft/devtoggle/internal/devstate"
	"github.com/Microsoft/devtoggle/internal/errdefs"
	"github.com/Microsoft/devtoggle/internal/log"
	"github.com/Microsoft/devtoggle/internal/logfields"
	"github.com/Microsoft/devtoggle/internal/notify"
	"github.com/Microsoft/devtoggle/internal/oc"
)

const (
	configFlag           = "config"
	logLevelFlag         = "log-level"
	logFormatFlag        = "log-format"
	logFileFlag          = "log-file"
	noNotifyFlag         = "no-notify"
	traceFlag            = "trace"
	etwFlag              = "etw"
	requireElevationFlag = "require-elevation"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

const usageText = `devtoggle [global options] /enable|/disable <device-id-or-alias>`

const desc = `Enables or disables a single device, identified by its device instance ID
(for example, 'USB\VID_046D&PID_0825\8A2B7C10') or by an alias from the configuration file.
On failure, a message box naming the failure is shown and the exit status is 1.`

// appOptions carries the platform dependencies of the app.
type appOptions struct {
	registry devstate.Registry
	// notifier shows failures when notifications are enabled.
	notifier notify.Notifier
	// elevated reports if the process token is elevated.
	elevated func() bool
	// enableETW forwards logs to ETW. May be nil.
	enableETW func() error

	stdout io.Writer
	stderr io.Writer
}

var registerExporter sync.Once

func newApp(opts *appOptions) *cli.App {
	// loaded in Before and used by Action
	cfg := config.Default()
	var logFile io.Closer

	app := &cli.App{
		Name:            "devtoggle",
		Usage:           "enable or disable a device",
		UsageText:       usageText,
		Description:     desc,
		HideHelpCommand: true,
		Writer:          opts.stdout,
		ErrWriter:       opts.stderr,
		ExitErrHandler:  errHandler,
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			_ = cli.ShowAppHelp(c)
			return cli.Exit(err, exitUsage)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configFlag,
				Usage: "`path` to the TOML configuration file (default: " + config.DefaultFileName + " next to the executable, if present)",
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "logging `level`: trace, debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  logFormatFlag,
				Usage: "logging `format`: text or json",
			},
			&cli.StringFlag{
				Name:  logFileFlag,
				Usage: "write logs to `file` instead of stderr",
			},
			&cli.BoolFlag{
				Name:  noNotifyFlag,
				Usage: "write failures to stderr instead of showing a message box",
			},
			&cli.BoolFlag{
				Name:  traceFlag,
				Usage: "export trace spans to the log",
			},
			&cli.BoolFlag{
				Name:  etwFlag,
				Usage: "forward logs to ETW",
			},
			&cli.BoolFlag{
				Name:  requireElevationFlag,
				Usage: "fail if the process is not elevated",
			},
		},
		Before: func(c *cli.Context) error {
			loaded, err := loadConfig(c)
			if err != nil {
				return cli.Exit(fmt.Errorf("invalid configuration: %w", err), exitUsage)
			}
			*cfg = *loaded
			if logFile, err = setupLogging(cfg, opts); err != nil {
				return fmt.Errorf("logging setup: %w", err)
			}
			log.G(c.Context).WithFields(logrus.Fields{
				logfields.Path: c.String(configFlag),
				"aliases":      len(cfg.Aliases),
			}).Debug("loaded configuration")
			return nil
		},
		Action: func(c *cli.Context) error {
			return toggle(c, cfg, opts)
		},
		After: func(*cli.Context) error {
			if logFile != nil {
				logrus.SetOutput(opts.stderr)
				return logFile.Close()
			}
			return nil
		},
	}
	return app
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String(configFlag))
	if err != nil {
		return nil, err
	}
	if c.IsSet(logLevelFlag) {
		cfg.LogLevel = c.String(logLevelFlag)
	}
	if c.IsSet(logFormatFlag) {
		cfg.LogFormat = c.String(logFormatFlag)
	}
	if c.IsSet(logFileFlag) {
		cfg.LogFile = c.String(logFileFlag)
	}
	if c.Bool(noNotifyFlag) {
		notify := false
		cfg.Notify = &notify
	}
	if c.Bool(traceFlag) {
		cfg.Trace = true
	}
	if c.Bool(etwFlag) {
		cfg.ETW = true
	}
	if c.Bool(requireElevationFlag) {
		cfg.RequireElevation = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config, opts *appOptions) (io.Closer, error) {
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(lvl)
	switch cfg.LogFormat {
	case config.FormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: log.TimeFormat})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: log.TimeFormat})
	}

	var closer io.Closer
	if cfg.LogFile != "" {
		// a shortcut or scheduled task has no console to write to
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
		logrus.SetOutput(lj)
		closer = lj
	} else {
		logrus.SetOutput(opts.stderr)
	}

	if cfg.ETW && opts.enableETW != nil {
		if err := opts.enableETW(); err != nil {
			logrus.WithError(err).Warn("failed to enable ETW logging")
		}
	}

	if cfg.Trace {
		trace.ApplyConfig(trace.Config{DefaultSampler: oc.DefaultSampler})
		registerExporter.Do(func() {
			trace.RegisterExporter(&oc.LogrusExporter{})
		})
	}
	return closer, nil
}

func toggle(c *cli.Context, cfg *config.Config, opts *appOptions) error {
	if c.NArg() != 2 {
		_ = cli.ShowAppHelp(c)
		return cli.Exit("", exitUsage)
	}
	token, name := c.Args().Get(0), c.Args().Get(1)

	s, err := devstate.ParseAction(token)
	if err != nil {
		_ = cli.ShowAppHelp(c)
		return cli.Exit(err, exitUsage)
	}

	ctx, span := oc.StartSpan(c.Context, c.App.Name+"::"+s.String())
	defer span.End()
	span.AddAttributes(
		trace.StringAttribute(logfields.Name, name),
		trace.StringAttribute(logfields.State, s.String()))

	n := opts.notifier
	if !cfg.NotifyEnabled() || n == nil {
		n = &notify.Writer{W: opts.stderr}
	}

	if err := setState(ctx, name, s, cfg, opts); err != nil {
		oc.SetSpanStatus(span, err)
		log.G(ctx).WithFields(logrus.Fields{
			logfields.Name: name,
			logfields.Kind: devstate.KindOf(err),
		}).WithError(err).Error("failed to change device state")
		notify.Failure(ctx, n, err)
		return cli.Exit("", exitFailure)
	}
	return nil
}

func setState(ctx context.Context, name string, s devstate.State, cfg *config.Config, opts *appOptions) error {
	if cfg.RequireElevation {
		elevated := opts.elevated != nil && opts.elevated()
		log.G(ctx).WithField(logfields.Elevated, elevated).Debug("checked process elevation")
		if !elevated {
			return errors.Wrap(errdefs.ErrNotElevated, "elevation is required to change device state")
		}
	}
	ctrl := devstate.NewController(opts.registry, devstate.WithAliases(cfg.Aliases))
	return ctrl.SetState(ctx, name, s)
}

func errHandler(c *cli.Context, err error) {
	if err == nil {
		return
	}
	var ec cli.ExitCoder
	if !errors.As(err, &ec) {
		err = cli.Exit(fmt.Errorf("%s: %w", c.App.Name, err), exitFailure)
	}
	cli.HandleExitCoder(err)
}
