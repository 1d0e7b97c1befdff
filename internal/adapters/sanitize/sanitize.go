// Package sanitize strips unsafe markup from user-supplied text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// strictPolicy removes all tags. Used for names, usernames, locations, categories.
	strictPolicy = bluemonday.StrictPolicy()

	// ugcPolicy keeps basic formatting. Used for bios and descriptions.
	ugcPolicy = bluemonday.UGCPolicy()
)

// Text strips all HTML and trims surrounding space. Entities produced by the policy are
// decoded again since the API serves plain JSON strings.
func Text(input string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(input)))
}

// HTML removes scripts, event handlers and other unsafe markup, keeping safe formatting.
func HTML(input string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(input))
}

// TextSlice applies Text to each item and drops items that end up empty.
func TextSlice(inputs []string) []string {
	if inputs == nil {
		return nil
	}
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if s := Text(in); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// TextPtr applies Text to a non-nil pointer.
func TextPtr(input *string) *string {
	if input == nil {
		return nil
	}
	s := Text(*input)
	return &s
}

// HTMLPtr applies HTML to a non-nil pointer.
func HTMLPtr(input *string) *string {
	if input == nil {
		return nil
	}
	s := HTML(*input)
	return &s
}
