package main

import (
	"fmt"
	"strings"
)

// BuildRSS writes the RSS 2.0 feed. With zero posts nothing is written at
// all; the other builders still produce their container pages.
//
// The document is assembled by hand on purpose: the feed's shape is fixed
// (guid equals link, RFC-2822 dates, the raw body HTML inside CDATA so
// embedded markup is not reinterpreted as feed markup) and predates this
// implementation.
func (s *Site) BuildRSS() error {
	if len(s.posts) == 0 {
		return nil
	}

	items := make([]string, 0, len(s.posts))
	for _, p := range s.posts {
		link := s.conf.BaseURL + s.conf.postURL(p.Slug)
		description := strings.ReplaceAll(p.BodyHTML, "\n", " ")

		items = append(items, fmt.Sprintf(`
        <item>
          <title>%s</title>
          <link>%s</link>
          <guid>%s</guid>
          <pubDate>%s</pubDate>
          <description><![CDATA[%s]]></description>
        </item>
        `, p.Title, link, link, formatDateRFC2822(p.Date), description))
	}

	rss := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
    <rss version="2.0">
      <channel>
        <title>%s</title>
        <link>%s/%s</link>
        <description>%s</description>
        <lastBuildDate>%s</lastBuildDate>
        %s
      </channel>
    </rss>`,
		s.conf.SiteTitle,
		s.conf.BaseURL, s.conf.IndexOutput,
		s.conf.SiteDesc,
		formatDateRFC2822(s.posts[0].Date),
		strings.Join(items, ""))

	return s.writePage(s.conf.outPath(s.conf.RSSOutput), strings.TrimSpace(rss))
}
