// Package generator runs an external shader compiler over an ordered list of
// shader sources, producing one C include file per shader.
//
// Each shader filename is mapped to a camelCase array name and a snake_case
// file stem, and the compiler is invoked as
//
//	<compiler> [flags...] -o <stem>.inl --variable-name <name> <filename>
//
// For the default configuration that is:
//
//	glslangValidator --target-env vulkan1.2 -o shader_vert.inl --variable-name shaderVert shader.vert
//	glslangValidator --target-env vulkan1.2 -o shader_frag.inl --variable-name shaderFrag shader.frag
//
// The compiler itself writes the include file; generator never reads or
// writes shader data.
//
// # Quick Start
//
// Compile using functional options:
//
//	result, err := generator.GenerateWithOptions(ctx,
//		generator.WithFilenames("shader.vert", "shader.frag"),
//		generator.WithLogger(generator.NewSlogAdapter(nil)),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.Compiler = "glslc --target-env=vulkan1.2"
//	g.Dir = "assets/shaders"
//	result, err := g.Generate(ctx)
//
// # Execution Model
//
// Invocations run one at a time in list order and each blocks until the
// compiler exits. The first failure stops the run and is returned as a
// *shadererrors.CommandError; nothing is retried.
//
// # Testing
//
// The compiler is reached through the CommandRunner interface. Tests can
// substitute a RunnerFunc that records invocations instead of starting a
// process:
//
//	var calls []string
//	g := generator.New()
//	g.Runner = generator.RunnerFunc(func(_ context.Context, _, name string, args ...string) ([]byte, error) {
//		calls = append(calls, name+" "+strings.Join(args, " "))
//		return nil, nil
//	})
//
// Use Plan to inspect the invocations without running anything.
package generator
