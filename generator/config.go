package generator

import (
	"strings"

	"github.com/erraggy/shadergen/shadererrors"
)

// DefaultCompiler is the compiler command and flags used when none is configured.
const DefaultCompiler = "glslangValidator --target-env vulkan1.2"

// DefaultFilenames returns the shader sources compiled when none are configured.
func DefaultFilenames() []string {
	return []string{"shader.vert", "shader.frag"}
}

// Config describes what to compile and how.
type Config struct {
	// Compiler is the compiler executable followed by its fixed flags,
	// separated by whitespace. Arguments are not shell-quoted.
	Compiler string

	// Filenames are the shader sources, compiled in order.
	Filenames []string

	// Dir is the working directory of the compiler. Generated files land
	// here. Empty means the current directory.
	Dir string
}

// DefaultConfig returns the configuration of a plain `shadergen` run.
func DefaultConfig() Config {
	return Config{
		Compiler:  DefaultCompiler,
		Filenames: DefaultFilenames(),
	}
}

// CompilerFields splits Compiler into the executable and its flags.
func (c Config) CompilerFields() []string {
	return strings.Fields(c.Compiler)
}

// Validate reports whether the configuration can produce a plan.
// An empty Filenames list is valid and yields no invocations.
func (c Config) Validate() error {
	if len(c.CompilerFields()) == 0 {
		return &shadererrors.ConfigError{
			Option:  "compiler",
			Message: "compiler command cannot be empty",
		}
	}
	for i, name := range c.Filenames {
		if strings.TrimSpace(name) == "" {
			return &shadererrors.ConfigError{
				Option:  "filenames",
				Value:   i,
				Message: "shader filename cannot be blank",
			}
		}
	}
	return nil
}
