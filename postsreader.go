package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// findPostFiles returns the post source files under dir in lexical name
// order. Only the configured extensions are considered.
func findPostFiles(dir string, extensions ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, ext := range extensions {
			if ext != "" && strings.HasSuffix(e.Name(), ext) {
				files = append(files, filepath.Join(dir, e.Name()))
				break
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// loadPosts reads every post file under conf.PostsDir and returns the posts
// sorted newest-first. Two posts with the same date keep their file name
// order. A single malformed post fails the whole load; there is no
// best-effort mode.
func loadPosts(conf *SiteConf) (posts, error) {
	files, err := findPostFiles(conf.PostsDir, conf.PostExtension, conf.MarkdownExtension)
	if err != nil {
		return nil, err
	}

	ps := make(posts, 0, len(files))
	for _, f := range files {
		content, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		p, err := parsePost(f, string(content))
		if err != nil {
			return nil, err
		}
		if conf.MarkdownExtension != "" && strings.HasSuffix(f, conf.MarkdownExtension) {
			p.BodyHTML = renderMarkdown(p.BodyHTML)
		}
		ps = append(ps, p)
	}

	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Date.After(ps[j].Date) })
	return ps, nil
}
