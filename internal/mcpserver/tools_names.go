package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/shadergen/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type deriveNamesInput struct {
	Filenames []string `json:"filenames" jsonschema:"Shader source filenames, e.g. shader.vert"`
}

type derivedName struct {
	Filename     string `json:"filename"`
	VariableName string `json:"variable_name"`
	FileStem     string `json:"file_stem"`
	Output       string `json:"output"`
}

type deriveNamesOutput struct {
	Names []derivedName `json:"names"`
}

func (ts *toolSet) handleDeriveNames(_ context.Context, _ *mcp.CallToolRequest, input deriveNamesInput) (*mcp.CallToolResult, deriveNamesOutput, error) {
	if len(input.Filenames) == 0 {
		return errResult(fmt.Errorf("filenames must contain at least one filename")), deriveNamesOutput{}, nil
	}

	output := deriveNamesOutput{Names: make([]derivedName, 0, len(input.Filenames))}
	for _, filename := range input.Filenames {
		inv := generator.NewInvocation(nil, filename)
		output.Names = append(output.Names, derivedName{
			Filename:     inv.Filename,
			VariableName: inv.VariableName,
			FileStem:     inv.FileStem,
			Output:       inv.Output,
		})
	}
	return nil, output, nil
}
