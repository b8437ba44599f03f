// Package shadergen compiles a fixed list of GLSL shaders into C include files.
//
// shadergen is a build-time helper. For every shader source file it runs an
// external compiler (glslangValidator by default) which writes one generated
// include file holding the SPIR-V binary as a named array:
//
//	shader.vert -> shader_vert.inl, array shaderVert
//	shader.frag -> shader_frag.inl, array shaderFrag
//
// # Packages
//
//   - generator: plans and runs compiler invocations
//   - manifest: loads the optional YAML manifest (compiler string and shader list)
//   - shadererrors: typed errors for use with errors.Is and errors.As
//
// # Naming
//
// The array name is the filename converted to camelCase: runs of non-word
// characters become word boundaries and are removed. The include file name is
// that camelCase name converted back to snake_case, so every uppercase run is
// lowercased and prefixed with an underscore. A name that starts with an
// uppercase letter therefore yields a stem with a leading underscore:
//
//	Main.vert -> MainVert -> _main_vert.inl
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(ctx,
//		generator.WithFilenames("shader.vert", "shader.frag"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, inv := range result.Invocations {
//		fmt.Println(inv.Output)
//	}
//
// The command line tool in cmd/shadergen runs the same plan. Without
// arguments it compiles shader.vert and shader.frag in the current directory
// with "glslangValidator --target-env vulkan1.2".
package shadergen
