package generator

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/erraggy/shadergen/shadererrors"
)

// Result contains the outcome of a successful generate run
type Result struct {
	// Invocations are the compiler runs that completed, in order
	Invocations []Invocation `json:"invocations" yaml:"invocations"`
	// Duration is the wall time spent running the compiler
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Outputs returns the generated include files in invocation order
func (r *Result) Outputs() []string {
	outputs := make([]string, 0, len(r.Invocations))
	for _, inv := range r.Invocations {
		outputs = append(outputs, inv.Output)
	}
	return outputs
}

// Generator runs the shader compiler over a list of shader sources
type Generator struct {
	Config

	// Runner starts the compiler. If nil, ExecRunner is used.
	Runner CommandRunner

	// Logger receives progress and failure messages. If nil, nothing is logged.
	Logger Logger
}

// New creates a new Generator with the default compiler and shader list
func New() *Generator {
	return &Generator{
		Config: DefaultConfig(),
		Runner: ExecRunner{},
		Logger: NopLogger{},
	}
}

// Plan returns the invocations Generate would run, without running them.
func (g *Generator) Plan() ([]Invocation, error) {
	return Plan(g.Config)
}

// Generate runs the compiler once per shader, in order, waiting for each run
// to finish before starting the next. The first failed run stops generation
// and is returned as a *shadererrors.CommandError.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	plan, err := g.Plan()
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	runner := g.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	var logger Logger = NopLogger{}
	if g.Logger != nil {
		logger = g.Logger
	}

	start := time.Now()
	result := &Result{Invocations: make([]Invocation, 0, len(plan))}
	for _, inv := range plan {
		log := logger.With("shader", inv.Filename, "output", inv.Output)
		log.Debug("running shader compiler", "command", inv.CommandLine())

		out, err := runner.Run(ctx, g.Dir, inv.Command, inv.Args...)
		if err != nil {
			cmdErr := &shadererrors.CommandError{
				Command:  inv.Command,
				Args:     inv.Args,
				Filename: inv.Filename,
				ExitCode: exitCode(err),
				Output:   out,
				Cause:    err,
			}
			log.Error("shader compiler failed", "exit_code", cmdErr.ExitCode, "error", err)
			return nil, fmt.Errorf("generator: %w", cmdErr)
		}

		if out = bytes.TrimSpace(out); len(out) > 0 {
			log.Debug("shader compiler output", "text", string(out))
		}
		log.Info("generated shader include", "variable", inv.VariableName)
		result.Invocations = append(result.Invocations, inv)
	}
	result.Duration = time.Since(start)

	return result, nil
}
