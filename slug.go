package main

import (
	"regexp"
	"strings"
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugStrip      = regexp.MustCompile(`[^a-z0-9-]`)
)

// slugifyTag turns a tag display string into a URL path segment: lowercase,
// runs of whitespace become a single hyphen, anything outside [a-z0-9-] is
// dropped. "C++ Tips!" becomes "c-tips".
func slugifyTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	tag = slugWhitespace.ReplaceAllString(tag, "-")
	return slugStrip.ReplaceAllString(tag, "")
}

// renderTagLinks renders a post's tags as comma-joined links labeled with
// the original display strings. No tags means an empty string, with no
// wrapping markup; callers decide whether to show a "Tags:" label.
func renderTagLinks(conf *SiteConf, tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, `<a href="`+conf.tagURL(slugifyTag(tag))+`">`+tag+`</a>`)
	}
	return strings.Join(parts, ", ")
}

type tagWithPosts struct {
	Tag   string
	Posts posts
}

// postsByTag groups posts per tag display string, tags ordered by first
// appearance in the (newest-first) post list, posts within a tag keeping
// list order.
type postsByTag []tagWithPosts

func (pt *postsByTag) addPost(tag string, p *Post) {
	for i, t := range *pt {
		if t.Tag == tag {
			t.Posts = append(t.Posts, p)
			(*pt)[i] = t
			return
		}
	}
	*pt = append(*pt, tagWithPosts{tag, posts{p}})
}

func groupByTag(ps posts) postsByTag {
	byTag := make(postsByTag, 0, 20)
	for _, p := range ps {
		for _, tag := range p.Tags {
			byTag.addPost(tag, p)
		}
	}
	return byTag
}
