package manifest

import (
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/shadergen/generator"
)

// Environment variables consulted by Resolve.
const (
	// EnvCompiler overrides the compiler command and flags.
	EnvCompiler = "SHADERGEN_COMPILER"

	// EnvManifest names the manifest to load when no path is given.
	EnvManifest = "SHADERGEN_MANIFEST"
)

// Resolve builds the effective configuration: generator.DefaultConfig, then
// the manifest at path (or at $SHADERGEN_MANIFEST when path is empty), then
// $SHADERGEN_COMPILER. Without a manifest path no file is read.
func Resolve(path string) (generator.Config, error) {
	cfg := generator.DefaultConfig()

	if path == "" {
		path = envString(EnvManifest)
	}
	if path != "" {
		m, err := Load(path)
		if err != nil {
			return generator.Config{}, err
		}
		cfg = m.Apply(cfg)
	}

	if compiler := envCompiler(EnvCompiler); compiler != "" {
		cfg.Compiler = compiler
	}

	return cfg, nil
}

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envCompiler(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	if strings.TrimSpace(v) == "" {
		slog.Warn("blank compiler env var, ignoring", "key", key) //nolint:gosec // G706: values are structured log fields, not format strings
		return ""
	}
	return v
}
