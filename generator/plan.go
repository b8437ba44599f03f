package generator

import (
	"slices"
	"strings"

	"github.com/erraggy/shadergen/internal/naming"
)

const (
	// OutputExt is the extension of every generated include file.
	OutputExt = ".inl"

	// OutputFlag precedes the output path on the compiler command line.
	OutputFlag = "-o"

	// VariableNameFlag precedes the array name on the compiler command line.
	VariableNameFlag = "--variable-name"
)

// Invocation is a single planned run of the shader compiler.
type Invocation struct {
	// Filename is the shader source as configured
	Filename string `json:"filename" yaml:"filename"`
	// VariableName is the camelCase array name, e.g. "shaderVert"
	VariableName string `json:"variable_name" yaml:"variable_name"`
	// FileStem is the snake_case base name, e.g. "shader_vert"
	FileStem string `json:"file_stem" yaml:"file_stem"`
	// Output is the generated include file, FileStem + OutputExt
	Output string `json:"output" yaml:"output"`
	// Command is the compiler executable
	Command string `json:"command" yaml:"command"`
	// Args are the compiler arguments, fixed flags first
	Args []string `json:"args" yaml:"args"`
}

// CommandLine returns the invocation as a single space-separated string.
func (inv Invocation) CommandLine() string {
	return strings.Join(append([]string{inv.Command}, inv.Args...), " ")
}

// NewInvocation derives the names for filename and builds the compiler
// arguments. compiler holds the executable followed by its fixed flags.
func NewInvocation(compiler []string, filename string) Invocation {
	variable := naming.ToVariableName(filename)
	stem := naming.ToFileStem(variable)
	output := stem + OutputExt

	inv := Invocation{
		Filename:     filename,
		VariableName: variable,
		FileStem:     stem,
		Output:       output,
	}
	if len(compiler) > 0 {
		inv.Command = compiler[0]
		inv.Args = slices.Clone(compiler[1:])
	}
	inv.Args = append(inv.Args, OutputFlag, output, VariableNameFlag, variable, filename)
	return inv
}

// Plan returns one Invocation per configured filename, in order.
func Plan(cfg Config) ([]Invocation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	compiler := cfg.CompilerFields()
	plan := make([]Invocation, 0, len(cfg.Filenames))
	for _, filename := range cfg.Filenames {
		plan = append(plan, NewInvocation(compiler, filename))
	}
	return plan, nil
}
