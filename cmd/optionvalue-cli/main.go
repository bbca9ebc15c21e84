package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/flosch/pongo2/v6"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-crmkit/components/optionvalues"
	"github.com/goliatone/go-crmkit/internal/prompt"
	"github.com/goliatone/go-crmkit/pkg/options"
	"github.com/goliatone/go-crmkit/pkg/optionvalue"
)

var reportTemplate = pongo2.Must(pongo2.FromString(
	"{% autoescape off %}{% for row in rows %}{{ row.Label }}\t{% if row.Error %}ERROR {{ row.Error }}{% else %}{{ row.Value }}{% endif %}\n{% endfor %}{% endautoescape %}",
))

var errInvalidLabels = errors.New("one or more labels are invalid")

type config struct {
	format      string
	file        string
	field       string
	output      string
	openapi     bool
	interactive bool
	serve       string
	logLevel    string
	labels      []string
}

type row struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger, err := newLogger(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		var verrs options.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if errors.Is(err, errInvalidLabels) || errors.Is(err, prompt.ErrAborted) {
			os.Exit(1)
		}
		logger.Fatal("optionvalue-cli failed", zap.Error(err))
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("optionvalue-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.format, "format", "text", "output format: text, json or yaml")
	fs.StringVar(&cfg.file, "file", "", "option set document (YAML or JSON) to validate")
	fs.StringVar(&cfg.field, "field", "", "field name recorded on built option sets")
	fs.StringVar(&cfg.output, "output", "", "write the built option set to this file")
	fs.BoolVar(&cfg.openapi, "openapi", false, "print the option set as an OpenAPI schema")
	fs.BoolVar(&cfg.interactive, "interactive", false, "prompt for option labels")
	fs.StringVar(&cfg.serve, "serve", "", "serve the option value endpoint on this address")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.labels = fs.Args()
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	zcfg.Encoding = "console"
	return zcfg.Build()
}

func run(ctx context.Context, cfg config, stdout io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch {
	case cfg.serve != "":
		return serve(ctx, cfg.serve, logger)
	case cfg.interactive:
		builder := options.NewBuilder(options.WithLogger(logger))
		set, err := prompt.CollectSet(ctx, prompt.NewSurveyDriver(stdout), builder, cfg.field)
		if err != nil {
			return err
		}
		return emitSet(set, cfg, stdout)
	case cfg.file != "":
		set, err := options.LoadFile(cfg.file)
		if err != nil {
			return err
		}
		logger.Info("option set valid", zap.String("file", cfg.file), zap.Int("options", set.Len()))
		return emitSet(set, cfg, stdout)
	case len(cfg.labels) > 0:
		if cfg.openapi || cfg.output != "" {
			set, err := options.NewBuilder(options.WithLogger(logger)).FromLabels(cfg.field, cfg.labels)
			if err != nil {
				return err
			}
			return emitSet(set, cfg, stdout)
		}
		return convert(cfg.labels, cfg.format, stdout)
	default:
		return errors.New("nothing to do: pass labels, -file, -interactive or -serve")
	}
}

func convert(labels []string, format string, stdout io.Writer) error {
	rows := make([]row, 0, len(labels))
	failed := false
	for _, label := range labels {
		value, err := optionvalue.ComputeFromLabel(label)
		if err != nil {
			failed = true
			rows = append(rows, row{Label: label, Error: err.Error()})
			continue
		}
		rows = append(rows, row{Label: label, Value: value})
	}

	if err := writeRows(rows, format, stdout); err != nil {
		return err
	}
	if failed {
		return errInvalidLabels
	}
	return nil
}

func writeRows(rows []row, format string, stdout io.Writer) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return reportTemplate.ExecuteWriter(pongo2.Context{"rows": rows}, stdout)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func emitSet(set options.Set, cfg config, stdout io.Writer) error {
	if cfg.output != "" {
		data, err := options.Marshal(set, options.FormatForPath(cfg.output))
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.output, data, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(stdout, "Option set written to %s\n", cfg.output)
		return nil
	}

	if cfg.openapi {
		data, err := json.MarshalIndent(set.Schema(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	switch strings.ToLower(cfg.format) {
	case "json", "yaml":
		data, err := options.Marshal(set, options.Format(strings.ToLower(cfg.format)))
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	default:
		rows := make([]row, 0, set.Len())
		for _, opt := range set.Sorted() {
			rows = append(rows, row{Label: opt.Label, Value: opt.Value})
		}
		return writeRows(rows, "text", stdout)
	}
}

func serve(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	pattern, err := optionvalues.RegisterRoutes(mux, "/", optionvalues.WithLogger(logger))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving option values", zap.String("addr", addr), zap.String("route", pattern))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
