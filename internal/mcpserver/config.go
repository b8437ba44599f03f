package mcpserver

import (
	"github.com/erraggy/shadergen/generator"
	"github.com/erraggy/shadergen/manifest"
)

// loadConfig resolves the server configuration from SHADERGEN_* environment
// variables. Tool inputs may replace the shader list and working directory
// but never the compiler.
func loadConfig() (generator.Config, error) {
	return manifest.Resolve("")
}

// withInput returns base with the per-call shader list and directory applied.
// A nil shaders slice keeps the configured list.
func withInput(base generator.Config, shaders []string, dir string) generator.Config {
	cfg := base
	if shaders != nil {
		cfg.Filenames = append([]string(nil), shaders...)
	}
	if dir != "" {
		cfg.Dir = dir
	}
	return cfg
}
