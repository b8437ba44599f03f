package generator

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	config Config
	runner CommandRunner
	logger Logger
}

// GenerateWithOptions compiles shaders using functional options.
// Options not given fall back to DefaultConfig, ExecRunner and NopLogger.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(ctx,
//	    generator.WithCompiler("glslangValidator --target-env vulkan1.3"),
//	    generator.WithFilenames("sky.vert", "sky.frag"),
//	)
func GenerateWithOptions(ctx context.Context, opts ...Option) (*Result, error) {
	g, err := newWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx)
}

// PlanWithOptions returns the invocations GenerateWithOptions would run
// with the same options, without running them.
func PlanWithOptions(opts ...Option) ([]Invocation, error) {
	g, err := newWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	plan, err := g.Plan()
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	return plan, nil
}

func newWithOptions(opts ...Option) (*Generator, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}
	return &Generator{
		Config: cfg.config,
		Runner: cfg.runner,
		Logger: cfg.logger,
	}, nil
}

// applyOptions applies option functions over the defaults
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		config: DefaultConfig(),
		runner: ExecRunner{},
		logger: NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WithConfig replaces the whole configuration
func WithConfig(c Config) Option {
	return func(cfg *generateConfig) error {
		c.Filenames = slices.Clone(c.Filenames)
		cfg.config = c
		return nil
	}
}

// WithCompiler sets the compiler command and its fixed flags
// Default: DefaultCompiler
func WithCompiler(compiler string) Option {
	return func(cfg *generateConfig) error {
		if strings.TrimSpace(compiler) == "" {
			return fmt.Errorf("compiler cannot be empty")
		}
		cfg.config.Compiler = compiler
		return nil
	}
}

// WithFilenames sets the shader sources to compile, in order
// Default: DefaultFilenames()
func WithFilenames(filenames ...string) Option {
	return func(cfg *generateConfig) error {
		cfg.config.Filenames = slices.Clone(filenames)
		return nil
	}
}

// WithDir sets the working directory of the compiler
// Default: the current directory
func WithDir(dir string) Option {
	return func(cfg *generateConfig) error {
		cfg.config.Dir = dir
		return nil
	}
}

// WithRunner sets the CommandRunner used to start the compiler
// Default: ExecRunner
func WithRunner(runner CommandRunner) Option {
	return func(cfg *generateConfig) error {
		if runner == nil {
			return fmt.Errorf("runner cannot be nil")
		}
		cfg.runner = runner
		return nil
	}
}

// WithLogger sets the structured logger
// Default: NopLogger
func WithLogger(logger Logger) Option {
	return func(cfg *generateConfig) error {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}
