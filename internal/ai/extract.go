package ai

import (
	"regexp"
	"strings"
)

var (
	fenceRe     = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)
	jsonObjRe   = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSONObject pulls the first JSON object out of a model response.
// Models sometimes wrap JSON in markdown fences or prose even when asked
// for bare JSON; this strips fences first, then falls back to the widest
// brace-delimited span. Returns the empty string when nothing object-like
// is present.
func ExtractJSONObject(s string) string {
	s = stripFences(s)
	if strings.HasPrefix(strings.TrimSpace(s), "{") {
		return strings.TrimSpace(s)
	}
	return jsonObjRe.FindString(s)
}

// ExtractJSONArray pulls the first JSON array out of a model response, with
// the same fence and prose tolerance as ExtractJSONObject.
func ExtractJSONArray(s string) string {
	s = stripFences(s)
	if strings.HasPrefix(strings.TrimSpace(s), "[") {
		return strings.TrimSpace(s)
	}
	return jsonArrayRe.FindString(s)
}

func stripFences(s string) string {
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}
