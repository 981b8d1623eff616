package agents

import "strings"

const (
	fenceOpenJSON = "```json"
	fenceClose    = "```"
)

// CleanModelOutput removes the markdown fence models sometimes wrap JSON in.
// Only a leading "```json" and a trailing "```" are stripped, after trimming
// whitespace; other fence shapes (bare "```", "```JSON", fences in the middle
// of prose) are left alone and will fail to parse.
func CleanModelOutput(s string) string {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, fenceOpenJSON)
	t = strings.TrimSuffix(t, fenceClose)
	return t
}
