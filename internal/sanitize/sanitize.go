// Package sanitize neutralizes user-supplied text before it reaches a
// rendering surface.
package sanitize

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces every character with markup meaning so the result renders
// as inert text. System-generated strings (dates, counts) never need it.
func Escape(text string) string {
	return escaper.Replace(text)
}
