// Package config resolves CLI settings from built-in defaults, an optional
// YAML file and environment variables (including an optional .env file).
// Command-line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formforge/pkg/codegen"
)

// Environment variable names.
const (
	EnvModelName   = "FORMFORGE_MODEL_NAME"
	EnvFormName    = "FORMFORGE_FORM_NAME"
	EnvOutput      = "FORMFORGE_OUTPUT"
	EnvRenderer    = "FORMFORGE_RENDERER"
	EnvIndentWidth = "FORMFORGE_INDENT_WIDTH"
)

// DefaultFile is read when present and no explicit file is given.
const DefaultFile = "formforge.yaml"

// DefaultRenderer is used when nothing else selects one.
const DefaultRenderer = "text"

// Config holds the resolved CLI settings.
type Config struct {
	ModelName   string `yaml:"modelName"`
	FormName    string `yaml:"formName"`
	Renderer    string `yaml:"renderer"`
	Output      string `yaml:"output"`
	IndentWidth int    `yaml:"indentWidth"`
	Preset      string `yaml:"preset"`
}

// Default returns the built-in settings.
func Default() Config {
	opts := codegen.DefaultOptions()
	return Config{
		ModelName:   opts.ModelName,
		FormName:    opts.FormName,
		Renderer:    DefaultRenderer,
		IndentWidth: 2,
	}
}

// Options returns the naming options for generation.
func (c Config) Options() codegen.Options {
	return codegen.Options{
		ModelName: strings.TrimSpace(c.ModelName),
		FormName:  strings.TrimSpace(c.FormName),
	}
}

// Validate checks the resolved settings.
func (c Config) Validate() error {
	var errs []error
	if err := c.Options().Validate(); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.Renderer) == "" {
		errs = append(errs, errors.New("renderer is required"))
	}
	if c.IndentWidth < 1 || c.IndentWidth > 8 {
		errs = append(errs, fmt.Errorf("indent width %d out of range 1-8", c.IndentWidth))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Lookup resolves an environment variable.
type Lookup func(key string) (string, bool)

// Params controls Load.
type Params struct {
	// File is an explicit YAML config path. A missing explicit file is an
	// error; when empty, DefaultFile is read if it exists.
	File string
	// DotEnv is an optional .env path. Missing files are ignored.
	DotEnv string
	// Lookup overrides the process environment.
	Lookup Lookup
}

// Load merges defaults, the YAML file and the environment.
func Load(params Params) (Config, error) {
	cfg := Default()

	file := strings.TrimSpace(params.File)
	explicit := file != ""
	if !explicit {
		file = DefaultFile
	}
	merged, err := MergeFile(cfg, file)
	switch {
	case err == nil:
		cfg = merged
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, err
	}

	lookup := params.Lookup
	if lookup == nil {
		dotenv, err := ReadDotEnv(params.DotEnv)
		if err != nil {
			return Config{}, err
		}
		lookup = EnvLookup(dotenv)
	}

	cfg, err = ApplyEnv(cfg, lookup)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MergeFile overlays the non-zero values of a YAML file onto cfg.
func MergeFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return overlay(cfg, file), nil
}

// ReadDotEnv reads key/value pairs from a .env file. An empty path or a
// missing file yields no values.
func ReadDotEnv(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return values, nil
}

// EnvLookup consults the process environment first, then the .env values.
func EnvLookup(dotenv map[string]string) Lookup {
	return func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok
	}
}

// ApplyEnv overlays FORMFORGE_* variables onto cfg. Blank values are ignored.
func ApplyEnv(cfg Config, lookup Lookup) (Config, error) {
	if lookup == nil {
		return cfg, nil
	}
	get := func(key string) string {
		value, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(value)
	}

	var env Config
	env.ModelName = get(EnvModelName)
	env.FormName = get(EnvFormName)
	env.Output = get(EnvOutput)
	env.Renderer = get(EnvRenderer)
	if raw := get(EnvIndentWidth); raw != "" {
		width, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", EnvIndentWidth, err)
		}
		env.IndentWidth = width
	}
	return overlay(cfg, env), nil
}

func overlay(base, top Config) Config {
	if v := strings.TrimSpace(top.ModelName); v != "" {
		base.ModelName = v
	}
	if v := strings.TrimSpace(top.FormName); v != "" {
		base.FormName = v
	}
	if v := strings.TrimSpace(top.Renderer); v != "" {
		base.Renderer = v
	}
	if v := strings.TrimSpace(top.Output); v != "" {
		base.Output = v
	}
	if v := strings.TrimSpace(top.Preset); v != "" {
		base.Preset = v
	}
	if top.IndentWidth != 0 {
		base.IndentWidth = top.IndentWidth
	}
	return base
}
