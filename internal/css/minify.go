// SPDX-License-Identifier: MIT
package css

import (
	"regexp"
	"strings"
)

var (
	commentRe    = regexp.MustCompile(`(?s)/\*.*?\*/`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	punctRe      = regexp.MustCompile(`\s*([{}:;,])\s*`)
)

// Minify strips comments and insignificant whitespace. It is a
// whitespace minifier only and does not rewrite values.
func Minify(css string) string {
	css = commentRe.ReplaceAllString(css, "")
	css = whitespaceRe.ReplaceAllString(css, " ")
	css = punctRe.ReplaceAllString(css, "$1")
	css = strings.ReplaceAll(css, ";}", "}")
	return strings.TrimSpace(css)
}
