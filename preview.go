package main

import (
	"regexp"
	"strings"
)

var markupTag = regexp.MustCompile(`<[^>]+>`)

// buildPreviewHTML shortens a post body for the index, archive and tag
// pages. Markup is stripped textually to count words; a body at or under
// maxWords comes back unchanged, markup and all, while a longer body is
// reduced to a single paragraph of the first maxWords words plus "...".
// Long posts therefore lose their original markup in the preview and short
// posts keep it. That asymmetry is long-standing, intentional behavior.
func buildPreviewHTML(bodyHTML string, maxWords int) string {
	text := markupTag.ReplaceAllString(bodyHTML, "")
	words := strings.Fields(text)

	if len(words) <= maxWords {
		return bodyHTML
	}

	return "<p>" + strings.Join(words[:maxWords], " ") + "...</p>"
}
