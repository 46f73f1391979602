package main

import "strings"

// The templates are plain HTML files with literal markers; building a page
// is a single substitution pass, not a templating engine. A marker the
// template does not contain is silently skipped, since templates may
// legitimately omit sections (the index template has no {{POST_BODY}}, the
// post template has no <!-- POSTS_GO_HERE -->).

// Marker tokens shared by the templates.
const (
	markerPosts       = "<!-- POSTS_GO_HERE -->"
	markerRecentPosts = "<!-- RECENT_POSTS_GO_HERE -->"
	markerArchives    = "<!-- ARCHIVES_GO_HERE -->"

	markerPostTitle   = "{{POST_TITLE}}"
	markerPostDate    = "{{POST_DATE}}"
	markerPostBody    = "{{POST_BODY}}"
	markerAuthorName  = "{{AUTHOR_NAME}}"
	markerPostTags    = "{{POST_TAGS}}"
	markerPrevNextNav = "{{PREV_NEXT_NAV}}"

	markerPageTitle       = "{{PAGE_TITLE}}"
	markerPageSubtitle    = "{{PAGE_SUBTITLE}}"
	markerPageDescription = "{{PAGE_DESCRIPTION}}"
)

// substitutions maps marker tokens to their replacement fragments.
type substitutions map[string]string

// apply replaces every occurrence of each marker in one pass over the
// template text. Markers not present in the template are ignored.
func (s substitutions) apply(template string) string {
	pairs := make([]string, 0, 2*len(s))
	for marker, replacement := range s {
		pairs = append(pairs, marker, replacement)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
