// Package manifest loads the optional shadergen manifest.
//
// A manifest is a small YAML file naming the compiler command and the
// shader sources to compile, in order:
//
//	compiler: glslangValidator --target-env vulkan1.2
//	shaders:
//	  - shader.vert
//	  - shader.frag
//
// Keys that are absent keep the built-in defaults. An explicit empty list
// (shaders: []) means nothing is compiled. Unknown keys are rejected.
//
// Resolve layers the manifest and the SHADERGEN_* environment variables on
// top of generator.DefaultConfig.
package manifest

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/erraggy/shadergen/generator"
	"github.com/erraggy/shadergen/shadererrors"
	"go.yaml.in/yaml/v4"
)

// DefaultFilename is the manifest name conventionally placed next to the shaders.
const DefaultFilename = "shadergen.yaml"

// Manifest is the decoded form of a manifest file.
type Manifest struct {
	// Compiler is the compiler executable followed by its fixed flags
	Compiler string `yaml:"compiler,omitempty" json:"compiler,omitempty"`
	// Shaders are the shader sources, compiled in order
	Shaders []string `yaml:"shaders,omitempty" json:"shaders,omitempty"`
}

// Default returns the manifest equivalent of generator.DefaultConfig.
func Default() *Manifest {
	cfg := generator.DefaultConfig()
	return &Manifest{
		Compiler: cfg.Compiler,
		Shaders:  cfg.Filenames,
	}
}

// Parse decodes a manifest from YAML. Empty input yields an empty Manifest.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, &shadererrors.ConfigError{
			Option:  "manifest",
			Message: "invalid manifest",
			Cause:   err,
		}
	}

	return m, nil
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user on purpose
	if err != nil {
		return nil, &shadererrors.ConfigError{
			Option:  "manifest",
			Value:   path,
			Message: "reading manifest",
			Cause:   err,
		}
	}

	m, err := Parse(data)
	if err != nil {
		var cfgErr *shadererrors.ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Value = path
		}
		return nil, err
	}
	return m, nil
}

// Apply returns cfg with the values set in m overriding it.
func (m *Manifest) Apply(cfg generator.Config) generator.Config {
	if m == nil {
		return cfg
	}
	if m.Compiler != "" {
		cfg.Compiler = m.Compiler
	}
	if m.Shaders != nil {
		cfg.Filenames = append([]string(nil), m.Shaders...)
	}
	return cfg
}

// Marshal encodes m as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}
