package mcpserver

import (
	"context"

	"github.com/erraggy/shadergen/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type planInput struct {
	Shaders []string `json:"shaders,omitempty" jsonschema:"Shader source filenames in compile order (default: configured list)"`
	Dir     string   `json:"dir,omitempty"     jsonschema:"Working directory for the compiler"`
}

type planOutput struct {
	Compiler     string                 `json:"compiler"`
	Dir          string                 `json:"dir,omitempty"`
	Invocations  []generator.Invocation `json:"invocations"`
	CommandLines []string               `json:"command_lines"`
}

func (ts *toolSet) handlePlan(_ context.Context, _ *mcp.CallToolRequest, input planInput) (*mcp.CallToolResult, planOutput, error) {
	cfg := withInput(ts.config, input.Shaders, input.Dir)

	plan, err := generator.Plan(cfg)
	if err != nil {
		return errResult(err), planOutput{}, nil
	}

	output := planOutput{
		Compiler:     cfg.Compiler,
		Dir:          cfg.Dir,
		Invocations:  plan,
		CommandLines: make([]string, 0, len(plan)),
	}
	for _, inv := range plan {
		output.CommandLines = append(output.CommandLines, inv.CommandLine())
	}
	return nil, output, nil
}
