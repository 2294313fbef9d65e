package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-user-keeper/internal/adapter"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"

	adapterMetadataKey = "adapter"
)

// AdapterFactory builds the server adapter from the global flags.
type AdapterFactory func(server string, timeout time.Duration, logger *logger.Logger) (adapter.ServerAdapter, error)

type App struct {
	newAdapter AdapterFactory
	buildInfo  models.BuildInfo
	out        io.Writer

	logger *logger.Logger
}

// Option configures an [App].
type Option func(*App)

// WithAdapterFactory replaces the HTTP adapter constructor.
func WithAdapterFactory(f AdapterFactory) Option {
	return func(a *App) {
		a.newAdapter = f
	}
}

// WithBuildInfo sets the version reported by --version.
func WithBuildInfo(info models.BuildInfo) Option {
	return func(a *App) {
		a.buildInfo = info
	}
}

// NewApp returns a client writing command output to out.
func NewApp(out io.Writer, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		newAdapter: adapter.NewHTTPServerAdapter,
		buildInfo:  models.NewBuildInfo("", "", ""),
		out:        out,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	return a.cliApp().RunContext(ctx, args)
}

func (a *App) cliApp() *cli.App {
	return &cli.App{
		Name:     "userkeeper-cli",
		Usage:    "user-keeper command-line client",
		Version:  a.buildInfo.String(),
		Writer:   a.out,
		Flags:    globalFlags(),
		Metadata: map[string]any{},
		Commands: []*cli.Command{
			a.pingCommand(),
			a.userCommand(),
		},
		Before: func(c *cli.Context) error {
			if o := c.String("output"); o != outputJSON && o != outputYAML {
				return fmt.Errorf("%w: %s", errUnknownOutput, o)
			}

			serverAdapter, err := a.newAdapter(c.String("server"), c.Duration("timeout"), a.logger)
			if err != nil {
				return err
			}

			c.App.Metadata[adapterMetadataKey] = serverAdapter
			return nil
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "server address (e.g., localhost:3000)",
			EnvVars: []string{"USERKEEPER_SERVER"},
			Value:   "localhost:3000",
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Aliases: []string{"t"},
			Usage:   "request timeout",
			EnvVars: []string{"USERKEEPER_TIMEOUT"},
			Value:   10 * time.Second,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: json, yaml",
			Value:   outputJSON,
		},
		&cli.StringFlag{
			Name:  "trace-id",
			Usage: "X-Trace-ID sent with every request",
		},
	}
}

// serverAdapter returns the adapter built in Before.
func serverAdapter(c *cli.Context) adapter.ServerAdapter {
	a, _ := c.App.Metadata[adapterMetadataKey].(adapter.ServerAdapter)
	return a
}

// requestContext carries the --trace-id flag into the adapter.
func requestContext(c *cli.Context) context.Context {
	ctx := c.Context
	if traceID := c.String("trace-id"); traceID != "" {
		ctx = utils.WithTraceID(ctx, traceID)
	}

	return ctx
}

// render writes v in the selected output format.
func render(c *cli.Context, v any) error {
	var (
		out []byte
		err error
	)

	switch c.String("output") {
	case outputYAML:
		out, err = yaml.Marshal(v)
	default:
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	_, err = c.App.Writer.Write(out)
	return err
}
