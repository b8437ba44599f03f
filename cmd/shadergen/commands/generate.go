package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/shadergen/generator"
	"github.com/erraggy/shadergen/manifest"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Manifest string
	Dir      string
	DryRun   bool
	Verbose  bool
	Format   string
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Manifest, "manifest", "", "YAML manifest with compiler and shaders (default: $"+manifest.EnvManifest+")")
	fs.StringVar(&flags.Manifest, "m", "", "YAML manifest with compiler and shaders (shorthand)")
	fs.StringVar(&flags.Dir, "C", "", "run the compiler in this directory")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "print the compiler invocations without running them")
	fs.BoolVar(&flags.DryRun, "n", false, "print the compiler invocations without running them (shorthand)")
	fs.BoolVar(&flags.Verbose, "v", false, "log each compiler run to stderr")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: shadergen generate [flags]\n\n")
		Writef(fs.Output(), "Compile shaders into C include files with an external compiler.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nEnvironment:\n")
		Writef(fs.Output(), "  %s  compiler command and flags (default %q)\n", manifest.EnvCompiler, generator.DefaultCompiler)
		Writef(fs.Output(), "  %s  manifest used when -manifest is not given\n", manifest.EnvManifest)
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  shadergen                            # compile shader.vert and shader.frag\n")
		Writef(fs.Output(), "  shadergen generate -n                # show what would run\n")
		Writef(fs.Output(), "  shadergen generate -m shadergen.yaml -C assets/shaders\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	return handleGenerate(context.Background(), args, generator.ExecRunner{}, os.Stdout, os.Stderr)
}

func handleGenerate(ctx context.Context, args []string, runner generator.CommandRunner, stdout, stderr io.Writer) error {
	fs, flags := SetupGenerateFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("generate command takes no arguments; list shaders in a manifest")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	cfg, err := manifest.Resolve(flags.Manifest)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if flags.Dir != "" {
		cfg.Dir = flags.Dir
	}

	g := &generator.Generator{
		Config: cfg,
		Runner: runner,
		Logger: NewLogger(stderr, flags.Verbose),
	}

	if flags.DryRun {
		plan, err := g.Plan()
		if err != nil {
			return fmt.Errorf("planning: %w", err)
		}
		return outputPlan(stdout, plan, flags.Format)
	}

	result, err := g.Generate(ctx)
	if err != nil {
		return err
	}
	return outputResult(stdout, result, flags.Format)
}

func outputPlan(w io.Writer, plan []generator.Invocation, format string) error {
	if format != FormatText {
		return OutputStructured(w, plan, format)
	}
	for _, inv := range plan {
		Writef(w, "%s\n", inv.CommandLine())
	}
	return nil
}

func outputResult(w io.Writer, result *generator.Result, format string) error {
	if format != FormatText {
		return OutputStructured(w, result, format)
	}
	for _, inv := range result.Invocations {
		Writef(w, "%s -> %s (%s)\n", inv.Filename, inv.Output, inv.VariableName)
	}
	Writef(w, "Generated %d include file(s) in %v\n", len(result.Invocations), result.Duration)
	return nil
}
