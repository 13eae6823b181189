package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formforge/internal/config"
	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/naming"
	"github.com/goliatone/go-formforge/pkg/openapi"
	"github.com/goliatone/go-formforge/pkg/orchestrator"
	"github.com/goliatone/go-formforge/pkg/prompt"
	"github.com/goliatone/go-formforge/pkg/renderers/files"
	"github.com/goliatone/go-formforge/pkg/schema"
	"github.com/goliatone/go-formforge/pkg/source"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	code := (&app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}).run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// driver answers -interactive prompts; nil uses the terminal.
	driver prompt.Driver
	// dotenv is the .env path consulted for FORMFORGE_* variables.
	dotenv string
	// lookup overrides the process environment.
	lookup config.Lookup
}

type flags struct {
	input       string
	model       string
	form        string
	renderer    string
	output      string
	preset      string
	configPath  string
	indent      int
	openapi     bool
	example     bool
	interactive bool
	verbose     bool
}

func (a *app) run(ctx context.Context, args []string) int {
	fset := flag.NewFlagSet("formforge", flag.ContinueOnError)
	fset.SetOutput(a.stderr)

	var f flags
	fset.StringVar(&f.input, "input", "", "form description path (.json, .yaml), or - for stdin")
	fset.StringVar(&f.model, "model", "", "model (interface) name")
	fset.StringVar(&f.form, "form", "", "form name")
	fset.StringVar(&f.renderer, "renderer", "", "output renderer (json, preview, text)")
	fset.StringVar(&f.output, "output", "", "directory to write generated files (stdout if empty)")
	fset.StringVar(&f.preset, "preset", "", "JSON preset with per-field label, placeholder and required overrides")
	fset.StringVar(&f.configPath, "config", "", "YAML config file (default "+config.DefaultFile+" when present)")
	fset.IntVar(&f.indent, "indent", 0, "indent width for generated code")
	fset.BoolVar(&f.openapi, "openapi", false, "emit an OpenAPI component schema for the model")
	fset.BoolVar(&f.example, "example", false, "use the built-in example form description")
	fset.BoolVar(&f.interactive, "interactive", false, "prompt for names and output format")
	fset.BoolVar(&f.verbose, "verbose", false, "enable debug logging")

	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	if f.example == (f.input != "") {
		fmt.Fprintln(a.stderr, "formforge: exactly one of -input or -example is required")
		fset.Usage()
		return exitUsage
	}

	dotenv := a.dotenv
	if dotenv == "" {
		dotenv = ".env"
	}
	cfg, err := config.Load(config.Params{File: f.configPath, DotEnv: dotenv, Lookup: a.lookup})
	if err != nil {
		logger.Error("load config", "error", err)
		return exitError
	}
	cfg = applyFlags(fset, f, cfg)

	orch, err := a.orchestrator(cfg, logger)
	if err != nil {
		logger.Error("configure", "error", err)
		return exitError
	}

	if f.interactive {
		if cfg, err = a.ask(ctx, cfg, orch.Renderers()); err != nil {
			logger.Error("prompt", "error", err)
			return exitError
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return exitUsage
	}

	req, err := a.request(f)
	if err != nil {
		logger.Error("read input", "error", err)
		return exitError
	}
	req.Options = cfg.Options()
	req.Renderer = cfg.Renderer

	resp, err := orch.Generate(ctx, req)
	if err != nil {
		var perr *schema.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintln(a.stderr, perr.Message)
			logger.Debug("parse failed", "code", perr.Code, "details", perr.Details)
			return exitError
		}
		logger.Error("generate", "error", err)
		return exitError
	}

	if cfg.Output == "" {
		return a.print(resp, f.openapi, logger)
	}
	return a.write(ctx, resp, cfg.Output, f, logger)
}

func applyFlags(fset *flag.FlagSet, f flags, cfg config.Config) config.Config {
	fset.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "model":
			cfg.ModelName = strings.TrimSpace(f.model)
		case "form":
			cfg.FormName = strings.TrimSpace(f.form)
		case "renderer":
			cfg.Renderer = strings.TrimSpace(f.renderer)
		case "output":
			cfg.Output = strings.TrimSpace(f.output)
		case "preset":
			cfg.Preset = strings.TrimSpace(f.preset)
		case "indent":
			cfg.IndentWidth = f.indent
		}
	})
	return cfg
}

func (a *app) orchestrator(cfg config.Config, logger *slog.Logger) (*orchestrator.Orchestrator, error) {
	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithGenerator(codegen.New(codegen.WithIndentWidth(cfg.IndentWidth))),
		orchestrator.WithDefaultRenderer(config.DefaultRenderer),
	}
	if cfg.Preset != "" {
		dir, name := filepath.Split(cfg.Preset)
		if dir == "" {
			dir = "."
		}
		transformer, err := orchestrator.NewJSONPresetTransformerFromFS(os.DirFS(dir), name)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithSchemaTransformer(transformer))
	}
	return orchestrator.New(options...), nil
}

func (a *app) ask(ctx context.Context, cfg config.Config, renderers []string) (config.Config, error) {
	driver := a.driver
	if driver == nil {
		driver = prompt.NewSurveyDriver()
	}

	opts, err := prompt.AskOptions(ctx, driver, cfg.Options())
	if err != nil {
		return cfg, err
	}
	cfg.ModelName = opts.ModelName
	cfg.FormName = opts.FormName

	if cfg.Output == "" {
		renderer, err := prompt.AskRenderer(ctx, driver, renderers, cfg.Renderer)
		if err != nil {
			return cfg, err
		}
		cfg.Renderer = renderer
	}
	return cfg, nil
}

func (a *app) request(f flags) (orchestrator.Request, error) {
	switch {
	case f.example:
		return orchestrator.Request{Raw: schema.Example}, nil
	case f.input == "-":
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return orchestrator.Request{}, fmt.Errorf("read stdin: %w", err)
		}
		return orchestrator.Request{Raw: string(data)}, nil
	default:
		return orchestrator.Request{Source: source.FromFile(f.input)}, nil
	}
}

func (a *app) print(resp orchestrator.Response, withOpenAPI bool, logger *slog.Logger) int {
	output := resp.Output
	if withOpenAPI {
		doc, err := openapi.MarshalComponent(resp.Bundle.Schema, resp.Bundle.Options)
		if err != nil {
			logger.Error("openapi component", "error", err)
			return exitError
		}
		output = append(doc, '\n')
	}
	if _, err := a.stdout.Write(output); err != nil {
		logger.Error("write output", "error", err)
		return exitError
	}
	return exitOK
}

func (a *app) write(ctx context.Context, resp orchestrator.Response, dir string, f flags, logger *slog.Logger) int {
	tabs := resp.Bundle.Tabs()

	if f.interactive {
		names := make([]string, 0, len(tabs))
		for _, tab := range tabs {
			names = append(names, tab.FileName)
		}
		driver := a.driver
		if driver == nil {
			driver = prompt.NewSurveyDriver()
		}
		ok, err := prompt.ConfirmWrite(ctx, driver, dir, names)
		if err != nil {
			logger.Error("prompt", "error", err)
			return exitError
		}
		if !ok {
			logger.Info("nothing written")
			return exitOK
		}
	}

	paths, err := files.Write(dir, tabs)
	if err != nil {
		logger.Error("write files", "error", err)
		return exitError
	}

	if f.openapi {
		doc, err := openapi.MarshalComponent(resp.Bundle.Schema, resp.Bundle.Options)
		if err != nil {
			logger.Error("openapi component", "error", err)
			return exitError
		}
		path := filepath.Join(dir, naming.FileStem(resp.Bundle.Options.ModelName)+".openapi.json")
		if err := os.WriteFile(path, append(doc, '\n'), 0o644); err != nil {
			logger.Error("write openapi component", "error", err)
			return exitError
		}
		paths = append(paths, path)
	}

	for _, path := range paths {
		fmt.Fprintln(a.stdout, path)
	}
	logger.Debug("files written", "dir", dir, "count", len(paths), "cached", resp.Cached)
	return exitOK
}
