package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/shadergen/generator"
)

// NamesFlags contains flags for the names command
type NamesFlags struct {
	Format string
}

// NameEntry is the derived naming for one shader filename.
type NameEntry struct {
	Filename     string `json:"filename" yaml:"filename"`
	VariableName string `json:"variable_name" yaml:"variable_name"`
	FileStem     string `json:"file_stem" yaml:"file_stem"`
	Output       string `json:"output" yaml:"output"`
}

// DeriveNames returns the naming for each filename, in order.
func DeriveNames(filenames []string) []NameEntry {
	entries := make([]NameEntry, 0, len(filenames))
	for _, filename := range filenames {
		inv := generator.NewInvocation(nil, filename)
		entries = append(entries, NameEntry{
			Filename:     inv.Filename,
			VariableName: inv.VariableName,
			FileStem:     inv.FileStem,
			Output:       inv.Output,
		})
	}
	return entries
}

// SetupNamesFlags creates and configures a FlagSet for the names command.
func SetupNamesFlags() (*flag.FlagSet, *NamesFlags) {
	fs := flag.NewFlagSet("names", flag.ContinueOnError)
	flags := &NamesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: shadergen names [flags] <filename>...\n\n")
		Writef(fs.Output(), "Print the array name and include file shadergen derives for each filename.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  shadergen names shader.vert shader.frag\n")
		Writef(fs.Output(), "  shadergen names -format json post-fx.frag\n")
	}

	return fs, flags
}

// HandleNames executes the names command
func HandleNames(args []string) error {
	return handleNames(args, os.Stdout, os.Stderr)
}

func handleNames(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupNamesFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("names command requires at least one filename")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	entries := DeriveNames(fs.Args())
	if flags.Format != FormatText {
		return OutputStructured(stdout, entries, flags.Format)
	}

	for _, e := range entries {
		Writef(stdout, "%s\t%s\t%s\n", e.Filename, e.VariableName, e.Output)
	}
	return nil
}
