package main

import (
	"fmt"
	"strings"
)

// Fragment renderers. Each is a pure function from post data to an HTML
// snippet; the page builders substitute the snippets into the template
// markers.

// renderPostCard renders the per-post summary block used on the index,
// archive and tag pages: title, date, preview, attribution, tag links when
// present, and a read-more link to the post's page.
func renderPostCard(conf *SiteConf, p *Post) string {
	tagsHTML := renderTagLinks(conf, p.Tags)
	if tagsHTML != "" {
		tagsHTML = "&bull; Tags: " + tagsHTML
	}

	previewHTML := buildPreviewHTML(p.BodyHTML, conf.PreviewWords)

	return fmt.Sprintf(`
    <article id="post-%s" class="content-section">
      <div class="content-header">
        <div class="content-title">%s</div>
        <div class="content-date">%s</div>
      </div>
      <div class="content-body">
        %s

        <p class="blog-meta">
          Posted by %s
          %s
          &bull; <a class="read-more-btn" href="%s">Read More &raquo;</a>
        </p>
      </div>
    </article>
    `, p.Slug, p.Title, p.FormatDateShort(), previewHTML, conf.Author, tagsHTML, conf.postURL(p.Slug))
}

func renderPostCards(conf *SiteConf, ps posts) string {
	cards := make([]string, 0, len(ps))
	for _, p := range ps {
		cards = append(cards, renderPostCard(conf, p))
	}
	return strings.Join(cards, "\n")
}

// renderRecentPosts renders the sidebar list of the newest posts, numbered
// from 01. The entry matching currentSlug, if any, gets the "current"
// style so the post pages can highlight themselves.
func renderRecentPosts(conf *SiteConf, ps posts, limit int, currentSlug string) string {
	if len(ps) > limit {
		ps = ps[:limit]
	}

	items := make([]string, 0, len(ps))
	for i, p := range ps {
		currentClass := ""
		if currentSlug != "" && p.Slug == currentSlug {
			currentClass = " current"
		}
		items = append(items, fmt.Sprintf(`
        <a href="%s">
          <div class="side-item%s">
            <div class="side-icon">%02d</div>
            <div class="side-text">
              <div class="side-text-title">%s</div>
              <div class="side-text-sub">%s</div>
            </div>
          </div>
        </a>
        `, conf.postURL(p.Slug), currentClass, i+1, p.Title, p.FormatDateShort()))
	}
	return strings.Join(items, "\n")
}

// renderPrevNextNav renders the previous/next links for the post at
// position index in the newest-first list. The older neighbor (index+1) is
// "Previous", the newer one (index-1) is "Next"; a missing neighbor is
// simply omitted.
func renderPrevNextNav(conf *SiteConf, ps posts, index int) string {
	prevHTML := ""
	nextHTML := ""

	if index+1 < len(ps) {
		older := ps[index+1]
		prevHTML = fmt.Sprintf(`<a href="%s">&laquo; Previous Post: %s</a>`, conf.postURL(older.Slug), older.Title)
	}
	if index > 0 {
		newer := ps[index-1]
		nextHTML = fmt.Sprintf(`<a href="%s">Next Post: %s &raquo;</a>`, conf.postURL(newer.Slug), newer.Title)
	}

	switch {
	case prevHTML != "" && nextHTML != "":
		return prevHTML + " &nbsp;|&nbsp; " + nextHTML
	case prevHTML != "":
		return prevHTML
	default:
		return nextHTML
	}
}
