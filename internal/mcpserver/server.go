// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes shadergen capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/shadergen"
	"github.com/erraggy/shadergen/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `shadergen MCP server: derives shader array and include file names and runs the shader compiler.

Configuration: the compiler command and default shader list come from the same sources as the CLI, set in your MCP client config:
- SHADERGEN_MANIFEST: YAML manifest with "compiler" and "shaders"
- SHADERGEN_COMPILER (default: glslangValidator --target-env vulkan1.2): compiler command and flags

The compiler command cannot be changed per call. Use plan before generate to see the exact command lines.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "shadergen", Version: shadergen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, &toolSet{config: cfg, runner: generator.ExecRunner{}})
	return server.Run(ctx, &mcp.StdioTransport{})
}

// toolSet carries the configuration and command runner shared by the tool handlers.
type toolSet struct {
	config generator.Config
	runner generator.CommandRunner
}

func registerAllTools(server *mcp.Server, ts *toolSet) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "derive_names",
		Description: "Derive the array name (camelCase) and include file (snake_case stem plus .inl) that shadergen would use for each shader filename. Pure computation; nothing is compiled.",
	}, ts.handleDeriveNames)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "plan",
		Description: "List the shader compiler invocations generate would run, in order, without running them. Omit shaders to use the configured list.",
	}, ts.handlePlan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Run the configured shader compiler once per shader, in order, writing one .inl include file per shader into dir (default: the server's working directory). Stops at the first compiler failure and returns its output.",
	}, ts.handleGenerate)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
