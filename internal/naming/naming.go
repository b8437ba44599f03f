// Package naming provides shared string case conversion utilities.
package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonWordRun     = regexp.MustCompile(`\W+`)
	underscoreWord = regexp.MustCompile(`_(\w)`)
	underscoreRun  = regexp.MustCompile(`_+`)
	upperRun       = regexp.MustCompile(`[A-Z]+`)
)

// normalize trims surrounding whitespace and collapses each run of
// non-word characters into a single underscore.
func normalize(s string) string {
	return nonWordRun.ReplaceAllString(strings.TrimSpace(s), "_")
}

// ToVariableName converts a filename to a camelCase identifier.
// An underscore followed by a word character is removed and that character
// is uppercased; any underscores left over are dropped.
// Example: "shader.vert" -> "shaderVert"
// Example: "my-post_fx.frag" -> "myPostFxFrag"
func ToVariableName(s string) string {
	v := normalize(s)
	if v == "" {
		return ""
	}
	v = underscoreWord.ReplaceAllStringFunc(v, func(m string) string {
		return strings.ToUpper(m[1:])
	})
	return underscoreRun.ReplaceAllString(v, "")
}

// ToFileStem converts a camelCase identifier to snake_case.
// Each run of uppercase letters is lowercased and prefixed with an underscore,
// also at the start of the string.
// Example: "shaderVert" -> "shader_vert"
// Example: "ABC" -> "_abc"
func ToFileStem(s string) string {
	v := normalize(s)
	if v == "" {
		return ""
	}
	// Casers are stateful and must not be shared across goroutines.
	lower := cases.Lower(language.Und)
	return upperRun.ReplaceAllStringFunc(v, func(m string) string {
		return "_" + lower.String(m)
	})
}
