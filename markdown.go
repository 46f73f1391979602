package main

import (
	"strings"

	"github.com/russross/blackfriday/v2"
)

// renderMarkdown converts a markdown post body to HTML. Posts written as
// plain HTML bypass this entirely.
func renderMarkdown(body string) string {
	out := blackfriday.Run([]byte(body),
		blackfriday.WithExtensions(blackfriday.CommonExtensions))
	return strings.TrimSpace(string(out))
}
