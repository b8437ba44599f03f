// Package naming provides the case conversions shadergen uses to name
// generated files and arrays.
//
// Two functions are exported:
//
//   - ToVariableName turns a filename such as "shader.vert" into the camelCase
//     identifier "shaderVert", used as the array name in the generated file.
//   - ToFileStem turns that identifier into the snake_case stem "shader_vert",
//     used as the base name of the generated ".inl" file.
//
// Both functions are pure and deterministic. Only ASCII letters, digits and
// underscore count as word characters; everything else is a separator.
//
// ToFileStem prefixes every uppercase run with an underscore, including a run
// at the very start of the input, so "ABC" yields "_abc". Generated file names
// depend on this, so it is kept as is.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
