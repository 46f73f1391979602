package main

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

type monthKey struct {
	Year  int
	Month int
}

func (k monthKey) Name() string {
	return time.Month(k.Month).String()
}

type monthWithPosts struct {
	monthKey
	Posts posts
}

// postsByMonth holds the monthly archive groups, newest month first.
type postsByMonth []monthWithPosts

func (pm *postsByMonth) addPost(k monthKey, p *Post) {
	for i, m := range *pm {
		if m.monthKey == k {
			m.Posts = append(m.Posts, p)
			(*pm)[i] = m
			return
		}
	}
	*pm = append(*pm, monthWithPosts{k, posts{p}})
}

// groupByMonth groups posts by (year, month) of their date, groups ordered
// by descending (year, month), posts within a group keeping list order.
func groupByMonth(ps posts) postsByMonth {
	byMonth := make(postsByMonth, 0, 20)
	for _, p := range ps {
		byMonth.addPost(monthKey{p.Date.Year(), int(p.Date.Month())}, p)
	}

	slices.SortFunc(byMonth, func(a, b monthWithPosts) int {
		if c := cmp.Compare(b.Year, a.Year); c != 0 {
			return c
		}
		return cmp.Compare(b.Month, a.Month)
	})

	return byMonth
}

// renderArchiveLinks renders the sidebar list of monthly archive links, one
// entry per month with posts, labeled with the month name, the year, and
// the post count.
func renderArchiveLinks(conf *SiteConf, ps posts) string {
	items := make([]string, 0, 20)
	for _, m := range groupByMonth(ps) {
		items = append(items, fmt.Sprintf(`
        <a href="%s">
          <div class="side-item">
            <div class="side-icon">%02d</div>
            <div class="side-text">
              <div class="side-text-title">%s %d</div>
              <div class="side-text-sub">%d post(s)</div>
            </div>
          </div>
        </a>
        `, conf.archiveURL(m.Year, m.Month), m.Year%100, m.Name(), m.Year, len(m.Posts)))
	}
	return strings.Join(items, "\n")
}
