package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

// fileStore is the filesystem surface the page builders touch. Production
// code uses osStore; tests substitute an in-memory implementation.
type fileStore interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	MkdirAll(path string) error
}

type osStore struct{}

func (osStore) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (osStore) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, os.FileMode(0664))
}

func (osStore) MkdirAll(path string) error { return os.MkdirAll(path, os.FileMode(0775)) }

// Site holds one generation run: the loaded posts, read-only once
// constructed, plus the configuration every builder works from.
type Site struct {
	posts posts
	conf  *SiteConf
	store fileStore
}

// ReadSite loads and sorts all posts. Any malformed post aborts the load.
func ReadSite(conf *SiteConf) (*Site, error) {
	ps, err := loadPosts(conf)
	if err != nil {
		return nil, err
	}
	return &Site{posts: ps, conf: conf, store: osStore{}}, nil
}

// RenderAll builds every page type in a fixed order. The first error wins;
// there is no partial-output mode.
func (s *Site) RenderAll() error {
	if err := s.BuildIndex(); err != nil {
		return err
	}
	if err := s.BuildPostPages(); err != nil {
		return err
	}
	if err := s.BuildArchivePages(); err != nil {
		return err
	}
	if err := s.BuildTagPages(); err != nil {
		return err
	}
	if err := s.BuildRSS(); err != nil {
		return err
	}
	return s.BuildAtom()
}

func (s *Site) readTemplate(path string) (string, error) {
	text, err := s.store.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingTemplate, err)
	}
	return string(text), nil
}

func (s *Site) writePage(path, content string) error {
	if err := s.store.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	log.Printf("Wrote %v", path)
	return nil
}

// BuildIndex renders the blog index: every post as a card, with the
// recent-posts and archive sidebars.
func (s *Site) BuildIndex() error {
	template, err := s.readTemplate(s.conf.IndexTemplate)
	if err != nil {
		return err
	}

	output := substitutions{
		markerPosts:       renderPostCards(s.conf, s.posts),
		markerRecentPosts: renderRecentPosts(s.conf, s.posts, s.conf.RecentPostsMax, ""),
		markerArchives:    renderArchiveLinks(s.conf, s.posts),
	}.apply(template)

	return s.writePage(s.conf.outPath(s.conf.IndexOutput), output)
}

// BuildPostPages renders one page per post: full body, tag links, prev/next
// navigation, and a sidebar with the post itself highlighted.
func (s *Site) BuildPostPages() error {
	if err := s.store.MkdirAll(s.conf.outPath(s.conf.PostsOutDir)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	template, err := s.readTemplate(s.conf.PostTemplate)
	if err != nil {
		return err
	}

	// The archive sidebar is the same on every post page.
	archivesHTML := renderArchiveLinks(s.conf, s.posts)

	for idx, p := range s.posts {
		tagsHTML := renderTagLinks(s.conf, p.Tags)
		if tagsHTML != "" {
			tagsHTML = "&bull; Tags: " + tagsHTML + " "
		}

		output := substitutions{
			markerPostTitle:   p.Title,
			markerPostDate:    formatDateShort(p.Date),
			markerPostBody:    p.BodyHTML,
			markerAuthorName:  s.conf.Author,
			markerPostTags:    tagsHTML,
			markerPrevNextNav: renderPrevNextNav(s.conf, s.posts, idx),
			markerRecentPosts: renderRecentPosts(s.conf, s.posts, s.conf.RecentPostsMax, p.Slug),
			markerArchives:    archivesHTML,
		}.apply(template)

		outPath := filepath.Join(s.conf.outPath(s.conf.PostsOutDir), p.Slug+".html")
		if err := s.writePage(outPath, output); err != nil {
			return err
		}
	}
	return nil
}

// BuildArchivePages renders one page per (year, month) with posts.
func (s *Site) BuildArchivePages() error {
	if err := s.store.MkdirAll(s.conf.outPath(s.conf.ArchiveOutDir)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	template, err := s.readTemplate(s.conf.ArchiveTemplate)
	if err != nil {
		return err
	}

	recentHTML := renderRecentPosts(s.conf, s.posts, s.conf.RecentPostsMax, "")
	archivesHTML := renderArchiveLinks(s.conf, s.posts)

	for _, m := range groupByMonth(s.posts) {
		output := substitutions{
			markerPageTitle:       fmt.Sprintf("Archive: %s %d", m.Name(), m.Year),
			markerPageSubtitle:    fmt.Sprintf("%d post(s)", len(m.Posts)),
			markerPageDescription: fmt.Sprintf("Posts from %s %d.", m.Name(), m.Year),
			markerPosts:           renderPostCards(s.conf, m.Posts),
			markerRecentPosts:     recentHTML,
			markerArchives:        archivesHTML,
		}.apply(template)

		outPath := filepath.Join(s.conf.outPath(s.conf.ArchiveOutDir), archiveFileName(m.Year, m.Month))
		if err := s.writePage(outPath, output); err != nil {
			return err
		}
	}
	return nil
}

// BuildTagPages renders one page per distinct tag. With zero tags across
// all posts no page is written and the template is never read; only the
// output directory is created.
func (s *Site) BuildTagPages() error {
	if err := s.store.MkdirAll(s.conf.outPath(s.conf.TagOutDir)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	byTag := groupByTag(s.posts)
	if len(byTag) == 0 {
		return nil
	}

	template, err := s.readTemplate(s.conf.TagTemplate)
	if err != nil {
		return err
	}

	recentHTML := renderRecentPosts(s.conf, s.posts, s.conf.RecentPostsMax, "")
	archivesHTML := renderArchiveLinks(s.conf, s.posts)

	for _, t := range byTag {
		output := substitutions{
			markerPageTitle:       "Tag: " + t.Tag,
			markerPageSubtitle:    fmt.Sprintf("%d post(s)", len(t.Posts)),
			markerPageDescription: fmt.Sprintf("Posts tagged with “%s”.", t.Tag),
			markerPosts:           renderPostCards(s.conf, t.Posts),
			markerRecentPosts:     recentHTML,
			markerArchives:        archivesHTML,
		}.apply(template)

		outPath := filepath.Join(s.conf.outPath(s.conf.TagOutDir), slugifyTag(t.Tag)+".html")
		if err := s.writePage(outPath, output); err != nil {
			return err
		}
	}
	return nil
}

// CopyStaticFiles recursively copies the static assets dir, if configured,
// next to the generated pages.
func (s *Site) CopyStaticFiles() error {
	srcDir := s.conf.StaticFilesDir
	if srcDir == "" {
		return nil
	}
	dest := s.conf.outPath(filepath.Base(srcDir))
	log.Printf("Recursively copying %v to %v", srcDir, dest)
	return copy.Copy(srcDir, dest)
}
