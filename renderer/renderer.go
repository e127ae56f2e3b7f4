// Package renderer turns engine results into markdown reports. Every
// renderer is a pure function from a result slice to a markdown string;
// callers decide where the markdown goes (terminal, file, prompt).
package renderer

// dash substitutes a placeholder for empty cell content so that table
// columns stay visually aligned in the raw markdown.
func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
