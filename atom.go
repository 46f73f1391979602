package main

import (
	atom "github.com/thomas11/atomgenerator"
)

// BuildAtom writes an Atom feed next to the RSS one, suppressed the same
// way when there are no posts.
func (s *Site) BuildAtom() error {
	if len(s.posts) == 0 {
		return nil
	}

	feed := atom.Feed{
		Title:   s.conf.SiteTitle,
		Link:    s.conf.BaseURL,
		PubDate: s.posts.latestDate(),
	}
	feed.AddAuthor(atom.Author{
		Name: s.conf.Author,
		Uri:  s.conf.BaseURL,
	})

	for _, p := range s.posts {
		feed.AddEntry(s.entryForPost(p))
	}

	errs := feed.Validate()
	if len(errs) > 0 {
		return errs[0]
	}

	atomXML, err := feed.GenXml()
	if err != nil {
		return err
	}

	return s.writePage(s.conf.outPath(s.conf.AtomOutput), string(atomXML))
}

func (s *Site) entryForPost(p *Post) *atom.Entry {
	e := &atom.Entry{
		Title:   p.Title,
		Link:    s.conf.BaseURL + s.conf.postURL(p.Slug),
		PubDate: p.Date,
		Content: p.BodyHTML,
	}

	for _, tag := range p.Tags {
		e.AddCategory(atom.Category{Term: tag})
	}

	return e
}
