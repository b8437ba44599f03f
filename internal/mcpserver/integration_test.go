package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/erraggy/shadergen/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T, ts *toolSet) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "shadergen-test", Version: "test"},
		nil,
	)
	registerAllTools(server, ts)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background; it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

// unmarshalStructured extracts the structured output of a tool call as a map.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t, newTestToolSet(&recordingRunner{}))

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, result.Tools, 3)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	for _, name := range []string{"derive_names", "plan", "generate"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}
}

func TestIntegration_CallTool_DeriveNames(t *testing.T) {
	session := startTestSession(t, newTestToolSet(&recordingRunner{}))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "derive_names",
		Arguments: map[string]any{"filenames": []string{"shader.vert", "shader.frag"}},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	names, ok := structured["names"].([]any)
	require.True(t, ok)
	require.Len(t, names, 2)

	first := names[0].(map[string]any)
	assert.Equal(t, "shaderVert", first["variable_name"])
	assert.Equal(t, "shader_vert.inl", first["output"])
}

func TestIntegration_CallTool_Generate(t *testing.T) {
	runner := &recordingRunner{}
	session := startTestSession(t, newTestToolSet(runner))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "generate",
		Arguments: map[string]any{"dir": "shaders"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, true, structured["success"])
	assert.Equal(t, []any{"shader_vert.inl", "shader_frag.inl"}, structured["outputs"])

	require.Len(t, runner.lines, 2)
	assert.True(t, strings.HasSuffix(runner.lines[0], "-o shader_vert.inl --variable-name shaderVert shader.vert"))
	assert.Equal(t, []string{"shaders", "shaders"}, runner.dirs)
}

func TestIntegration_CallTool_GenerateFailure(t *testing.T) {
	runner := &recordingRunner{
		output: []byte("ERROR: shader.vert:1: syntax error"),
		err:    assert.AnError,
	}
	session := startTestSession(t, newTestToolSet(runner))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "generate",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "syntax error")
	assert.Len(t, runner.lines, 1)
}

// Compile-time check that the test runner satisfies the interface.
var _ generator.CommandRunner = (*recordingRunner)(nil)
