package mcpserver

import (
	"context"

	"github.com/erraggy/shadergen/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInput struct {
	Shaders []string `json:"shaders,omitempty" jsonschema:"Shader source filenames in compile order (default: configured list)"`
	Dir     string   `json:"dir,omitempty"     jsonschema:"Directory to run the compiler in; generated .inl files are written here"`
}

type generateOutput struct {
	Success    bool     `json:"success"`
	Outputs    []string `json:"outputs"`
	Variables  []string `json:"variables"`
	DurationMS int64    `json:"duration_ms"`
}

func (ts *toolSet) handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	g := &generator.Generator{
		Config: withInput(ts.config, input.Shaders, input.Dir),
		Runner: ts.runner,
		Logger: generator.NopLogger{},
	}

	result, err := g.Generate(ctx)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		Success:    true,
		Outputs:    result.Outputs(),
		Variables:  make([]string, 0, len(result.Invocations)),
		DurationMS: result.Duration.Milliseconds(),
	}
	for _, inv := range result.Invocations {
		output.Variables = append(output.Variables, inv.VariableName)
	}
	return nil, output, nil
}
