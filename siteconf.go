package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SiteConf carries every fixed path and site-wide string the generator
// uses. It is passed explicitly into the driver and every page builder;
// there is no package-level mutable configuration.
type SiteConf struct {
	Author    string
	BaseURL   string
	SiteTitle string
	SiteDesc  string

	// PostsDir holds the post source files. Only files with PostExtension
	// (raw HTML body) or MarkdownExtension (body rendered to HTML at load
	// time) are considered.
	PostsDir          string
	PostExtension     string
	MarkdownExtension string

	// Templates, one per page type.
	IndexTemplate   string
	PostTemplate    string
	ArchiveTemplate string
	TagTemplate     string

	// Outputs, all relative to OutDir. IndexOutput and the feed outputs are
	// files; PostsOutDir, ArchiveOutDir and TagOutDir are directories that
	// double as the URL path segments of the generated links
	// ("blog" -> /blog/{slug}.html).
	OutDir        string
	IndexOutput   string
	RSSOutput     string
	AtomOutput    string
	PostsOutDir   string
	ArchiveOutDir string
	TagOutDir     string

	// StaticFilesDir, if set, is copied recursively next to the output.
	StaticFilesDir string

	PreviewWords   int
	RecentPostsMax int
}

// defaultConf mirrors the site this generator was first built for.
func defaultConf() *SiteConf {
	return &SiteConf{
		Author:            "Chris",
		BaseURL:           "https://cloudtopher.com",
		SiteTitle:         "Cloud Resume Dev Log",
		SiteDesc:          "Updates and notes from building my AWS Cloud Resume.",
		PostsDir:          "posts",
		PostExtension:     ".html",
		MarkdownExtension: ".md",
		IndexTemplate:     "blog-template.html",
		PostTemplate:      "blog-post-template.html",
		ArchiveTemplate:   "blog-archive-template.html",
		TagTemplate:       "blog-tag-template.html",
		OutDir:            ".",
		IndexOutput:       "blog.html",
		RSSOutput:         "feed.xml",
		AtomOutput:        "atom.xml",
		PostsOutDir:       "blog",
		ArchiveOutDir:     "blog/archive",
		TagOutDir:         "blog/tag",
		PreviewWords:      80,
		RecentPostsMax:    5,
	}
}

// readConf loads a JSON site configuration and fills in defaults for any
// field left empty. An empty fileName returns the defaults untouched.
func readConf(fileName string) (*SiteConf, error) {
	conf := defaultConf()
	if fileName == "" {
		return conf, nil
	}

	rawConf, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	loaded := SiteConf{}
	if err = json.Unmarshal(rawConf, &loaded); err != nil {
		return nil, fmt.Errorf("parsing %v: %w", fileName, err)
	}
	mergeConf(conf, &loaded)

	// Normalize relative paths because the executable can be called from
	// anywhere.
	baseDir := filepath.Dir(fileName)
	conf.PostsDir = normalizePath(conf.PostsDir, baseDir)
	conf.IndexTemplate = normalizePath(conf.IndexTemplate, baseDir)
	conf.PostTemplate = normalizePath(conf.PostTemplate, baseDir)
	conf.ArchiveTemplate = normalizePath(conf.ArchiveTemplate, baseDir)
	conf.TagTemplate = normalizePath(conf.TagTemplate, baseDir)
	conf.OutDir = normalizePath(conf.OutDir, baseDir)
	if conf.StaticFilesDir != "" {
		conf.StaticFilesDir = normalizePath(conf.StaticFilesDir, baseDir)
	}

	return conf, nil
}

func mergeConf(conf, loaded *SiteConf) {
	if loaded.Author != "" {
		conf.Author = loaded.Author
	}
	if loaded.BaseURL != "" {
		conf.BaseURL = loaded.BaseURL
	}
	if loaded.SiteTitle != "" {
		conf.SiteTitle = loaded.SiteTitle
	}
	if loaded.SiteDesc != "" {
		conf.SiteDesc = loaded.SiteDesc
	}
	if loaded.PostsDir != "" {
		conf.PostsDir = loaded.PostsDir
	}
	if loaded.PostExtension != "" {
		conf.PostExtension = loaded.PostExtension
	}
	if loaded.MarkdownExtension != "" {
		conf.MarkdownExtension = loaded.MarkdownExtension
	}
	if loaded.IndexTemplate != "" {
		conf.IndexTemplate = loaded.IndexTemplate
	}
	if loaded.PostTemplate != "" {
		conf.PostTemplate = loaded.PostTemplate
	}
	if loaded.ArchiveTemplate != "" {
		conf.ArchiveTemplate = loaded.ArchiveTemplate
	}
	if loaded.TagTemplate != "" {
		conf.TagTemplate = loaded.TagTemplate
	}
	if loaded.OutDir != "" {
		conf.OutDir = loaded.OutDir
	}
	if loaded.IndexOutput != "" {
		conf.IndexOutput = loaded.IndexOutput
	}
	if loaded.RSSOutput != "" {
		conf.RSSOutput = loaded.RSSOutput
	}
	if loaded.AtomOutput != "" {
		conf.AtomOutput = loaded.AtomOutput
	}
	if loaded.PostsOutDir != "" {
		conf.PostsOutDir = loaded.PostsOutDir
	}
	if loaded.ArchiveOutDir != "" {
		conf.ArchiveOutDir = loaded.ArchiveOutDir
	}
	if loaded.TagOutDir != "" {
		conf.TagOutDir = loaded.TagOutDir
	}
	if loaded.StaticFilesDir != "" {
		conf.StaticFilesDir = loaded.StaticFilesDir
	}
	if loaded.PreviewWords != 0 {
		conf.PreviewWords = loaded.PreviewWords
	}
	if loaded.RecentPostsMax != 0 {
		conf.RecentPostsMax = loaded.RecentPostsMax
	}
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		return filepath.Join(baseDir, path)
	}
	return path
}

// URL helpers. The *OutDir fields are root-relative both on disk and in the
// generated links, so /blog/{slug}.html is served from blog/{slug}.html.

func (c *SiteConf) postURL(slug string) string {
	return "/" + c.PostsOutDir + "/" + slug + ".html"
}

func (c *SiteConf) tagURL(tagSlug string) string {
	return "/" + c.TagOutDir + "/" + tagSlug + ".html"
}

func (c *SiteConf) archiveURL(year, month int) string {
	return "/" + c.ArchiveOutDir + "/" + archiveFileName(year, month)
}

func archiveFileName(year, month int) string {
	return fmt.Sprintf("archive-%d-%02d.html", year, month)
}

// outPath resolves an output file or directory under OutDir.
func (c *SiteConf) outPath(rel string) string {
	return filepath.Join(c.OutDir, rel)
}
