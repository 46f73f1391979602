package main

import (
	"bytes"
	"fmt"
	"time"
)

// Post is the one entity of the generator. It is built once per source file
// at load time and never mutated afterwards.
type Post struct {
	Title string
	// Date is the parsed publication timestamp; DateStr keeps the exact
	// string from the front matter.
	Date    time.Time
	DateStr string
	Slug    string
	Tags    []string
	// BodyHTML is the raw post body. It is neither escaped nor sanitized.
	BodyHTML string
}

func (p *Post) FormatDateShort() string {
	return formatDateShort(p.Date)
}

func (p *Post) String() string {
	b := new(bytes.Buffer)
	b.WriteString("title: ")
	b.WriteString(p.Title)
	b.WriteString("\ndate: ")
	b.WriteString(p.DateStr)
	b.WriteString("\nslug: ")
	b.WriteString(p.Slug)
	b.WriteString("\ntags: ")
	fmt.Fprintln(b, p.Tags)

	body := p.BodyHTML
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	b.WriteString("body: ")
	b.WriteString(body)

	return b.String()
}

type posts []*Post

func (ps posts) latestDate() time.Time {
	var t time.Time
	for _, p := range ps {
		if p.Date.After(t) {
			t = p.Date
		}
	}
	return t
}

func formatDateShort(d time.Time) string {
	return d.Format("Jan 02, 2006")
}

func formatDateRFC2822(d time.Time) string {
	return d.UTC().Format("Mon, 02 Jan 2006 15:04:05 +0000")
}

// Layouts accepted for the front-matter date field, most specific first.
// These cover the usual ISO-8601 spellings: date only, date-time with a T or
// a space separator, with or without seconds and zone offset.
var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseISODate(s string) (time.Time, error) {
	for _, layout := range isoDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", s)
}
