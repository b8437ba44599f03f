// Command shadergen compiles shaders into C include files.
//
// Usage:
//
//	shadergen [command] [flags]
//
// Without a command, shadergen runs generate with the built-in defaults:
//
//	glslangValidator --target-env vulkan1.2 -o shader_vert.inl --variable-name shaderVert shader.vert
//	glslangValidator --target-env vulkan1.2 -o shader_frag.inl --variable-name shaderFrag shader.frag
package main

import (
	"io"
	"os"
	"strings"

	"github.com/erraggy/shadergen"
	"github.com/erraggy/shadergen/cmd/shadergen/commands"
)

// knownCommands lists the commands suggestCommand can propose.
var knownCommands = []string{"generate", "names", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches args to a command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		args = []string{"generate"}
	}

	command := args[0]
	var err error

	switch {
	case command == "version" || command == "-v" || command == "--version":
		commands.Writef(stdout, "shadergen %s\n", shadergen.Version())
	case command == "help" || command == "-h" || command == "--help":
		printUsage(stdout)
	case command == "generate":
		err = commands.HandleGenerate(args[1:])
	case command == "names":
		err = commands.HandleNames(args[1:])
	case command == "mcp":
		err = commands.HandleMCP(args[1:])
	case strings.HasPrefix(command, "-"):
		// Flags without a command belong to generate.
		err = commands.HandleGenerate(args)
	default:
		commands.Writef(stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			commands.Writef(stderr, "Did you mean %q?\n", suggestion)
		}
		commands.Writef(stderr, "\n")
		printUsage(stderr)
		return 1
	}

	if err != nil {
		commands.Writef(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, cmd := range knownCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage(w io.Writer) {
	commands.Writef(w, `shadergen - compile shaders into C include files

Usage:
  shadergen [command] [flags]

Commands:
  generate    Run the shader compiler (default command)
  names       Print the array and include file names derived from filenames
  mcp         Serve shadergen tools over MCP (stdio)
  version     Print version information
  help        Show this message

Run 'shadergen <command> -h' for command flags.
`)
}
