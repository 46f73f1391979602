package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

const frontMatterDelimiter = "---"

// parsePost turns one raw post file into a Post. The text must carry a
// front-matter block delimited by "---" lines ahead of the HTML body:
//
//	---
//	title: A post
//	date: 2024-01-05
//	tags: aws, terraform
//	---
//	<p>Body.</p>
//
// title and date are required; slug falls back to the file's base name
// without its extension; tags are comma-separated and optional. Everything
// past the second delimiter is the body, kept verbatim (a body may itself
// contain "---" lines).
func parsePost(path, text string) (*Post, error) {
	parts := strings.Split(text, frontMatterDelimiter)
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: %v missing front matter delimiters %q", ErrMalformedPost, path, frontMatterDelimiter)
	}

	metaBlock := strings.TrimSpace(parts[1])
	bodyHTML := strings.TrimSpace(strings.Join(parts[2:], frontMatterDelimiter))

	meta := make(map[string]string)
	for _, line := range strings.Split(metaBlock, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: invalid metadata line in %v: %q", ErrMalformedPost, path, line)
		}
		meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	title := meta["title"]
	dateStr := meta["date"]
	if title == "" || dateStr == "" {
		return nil, fmt.Errorf("%w: %v missing title or date", ErrMalformedPost, path)
	}

	date, err := parseISODate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrMalformedPost, path, err)
	}

	slug := meta["slug"]
	if slug == "" {
		base := filepath.Base(path)
		slug = base[:len(base)-len(filepath.Ext(base))]
	}

	var tags []string
	for _, t := range strings.Split(meta["tags"], ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	return &Post{
		Title:    title,
		Date:     date,
		DateStr:  dateStr,
		Slug:     slug,
		Tags:     tags,
		BodyHTML: bodyHTML,
	}, nil
}
