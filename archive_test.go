package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datedPost(slug, date string) *Post {
	d, err := parseISODate(date)
	if err != nil {
		panic(err)
	}
	return &Post{Title: "Post " + slug, Slug: slug, Date: d, DateStr: date, BodyHTML: "<p>b</p>"}
}

func TestGroupByMonth(t *testing.T) {
	ps := posts{
		datedPost("feb", "2024-02-01"),
		datedPost("jan2", "2024-01-20"),
		datedPost("jan1", "2024-01-05"),
	}

	groups := groupByMonth(ps)
	assert.Len(t, groups, 2)

	// Descending (year, month).
	assert.Equal(t, monthKey{2024, 2}, groups[0].monthKey)
	assert.Len(t, groups[0].Posts, 1)
	assert.Equal(t, monthKey{2024, 1}, groups[1].monthKey)
	assert.Len(t, groups[1].Posts, 2)
}

func TestGroupByMonthYearBoundary(t *testing.T) {
	ps := posts{
		datedPost("new", "2024-01-05"),
		datedPost("old", "2023-12-31"),
	}

	groups := groupByMonth(ps)
	assert.Equal(t, monthKey{2024, 1}, groups[0].monthKey)
	assert.Equal(t, monthKey{2023, 12}, groups[1].monthKey)
}

func TestMonthKeyName(t *testing.T) {
	assert.Equal(t, "January", monthKey{2024, 1}.Name())
	assert.Equal(t, "December", monthKey{2023, 12}.Name())
}

func TestRenderArchiveLinks(t *testing.T) {
	conf := defaultConf()
	ps := posts{
		datedPost("jan2", "2024-01-20"),
		datedPost("jan1", "2024-01-05"),
	}

	got := renderArchiveLinks(conf, ps)
	assert.Contains(t, got, `href="/blog/archive/archive-2024-01.html"`)
	assert.Contains(t, got, "January 2024")
	assert.Contains(t, got, "2 post(s)")
	assert.Contains(t, got, `<div class="side-icon">24</div>`)
}

func TestRenderArchiveLinksEmpty(t *testing.T) {
	assert.Equal(t, "", renderArchiveLinks(defaultConf(), nil))
}

func TestPostsLatestDate(t *testing.T) {
	ps := posts{
		datedPost("a", "2024-01-05"),
		datedPost("b", "2024-02-01"),
	}
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), ps.latestDate())
}
