package generator

import (
	"context"
	"testing"

	"github.com/erraggy/shadergen/shadererrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptions_Defaults(t *testing.T) {
	cfg, err := applyOptions()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg.config)
	assert.IsType(t, ExecRunner{}, cfg.runner)
	assert.IsType(t, NopLogger{}, cfg.logger)
}

func TestWithOptions(t *testing.T) {
	t.Run("WithCompiler", func(t *testing.T) {
		cfg := &generateConfig{}
		require.NoError(t, WithCompiler("glslc --target-env=vulkan1.3")(cfg))
		assert.Equal(t, "glslc --target-env=vulkan1.3", cfg.config.Compiler)
	})

	t.Run("WithCompiler rejects blank", func(t *testing.T) {
		cfg := &generateConfig{}
		err := WithCompiler(" ")(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "compiler cannot be empty")
	})

	t.Run("WithFilenames copies input", func(t *testing.T) {
		names := []string{"a.vert", "b.frag"}
		cfg := &generateConfig{}
		require.NoError(t, WithFilenames(names...)(cfg))
		names[0] = "changed.vert"
		assert.Equal(t, []string{"a.vert", "b.frag"}, cfg.config.Filenames)
	})

	t.Run("WithDir", func(t *testing.T) {
		cfg := &generateConfig{}
		require.NoError(t, WithDir("out")(cfg))
		assert.Equal(t, "out", cfg.config.Dir)
	})

	t.Run("WithConfig", func(t *testing.T) {
		want := Config{Compiler: "glslc", Filenames: []string{"x.vert"}, Dir: "d"}
		cfg := &generateConfig{}
		require.NoError(t, WithConfig(want)(cfg))
		assert.Equal(t, want, cfg.config)
	})

	t.Run("WithRunner rejects nil", func(t *testing.T) {
		cfg := &generateConfig{}
		err := WithRunner(nil)(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "runner cannot be nil")
	})

	t.Run("WithLogger nil falls back to NopLogger", func(t *testing.T) {
		cfg := &generateConfig{}
		require.NoError(t, WithLogger(nil)(cfg))
		assert.IsType(t, NopLogger{}, cfg.logger)
	})
}

func TestGenerateWithOptions(t *testing.T) {
	runner := &recordingRunner{}

	result, err := GenerateWithOptions(context.Background(),
		WithCompiler("glslc -O"),
		WithFilenames("sky.vert", "sky.frag"),
		WithRunner(runner),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"sky_vert.inl", "sky_frag.inl"}, result.Outputs())
	require.Len(t, runner.calls, 2)
	assert.Equal(t, "glslc", runner.calls[0].name)
	assert.Equal(t, []string{"-O", "-o", "sky_vert.inl", "--variable-name", "skyVert", "sky.vert"}, runner.calls[0].args)
}

func TestGenerateWithOptions_InvalidOption(t *testing.T) {
	_, err := GenerateWithOptions(context.Background(), WithCompiler(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator: invalid options")
}

func TestGenerateWithOptions_InvalidConfig(t *testing.T) {
	_, err := GenerateWithOptions(context.Background(),
		WithFilenames("shader.vert", ""),
		WithRunner(&recordingRunner{}),
	)
	require.ErrorIs(t, err, shadererrors.ErrConfig)
}

func TestPlanWithOptions(t *testing.T) {
	plan, err := PlanWithOptions(WithFilenames("a.vert"))
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "a_vert.inl", plan[0].Output)

	_, err = PlanWithOptions(WithConfig(Config{}))
	require.ErrorIs(t, err, shadererrors.ErrConfig)
}
