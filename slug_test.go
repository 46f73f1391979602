package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyTag(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"C++ Tips!", "c-tips"},
		{"AWS", "aws"},
		{"  spaced  out  ", "spaced-out"},
		{"already-fine", "already-fine"},
		{"Ünïcode", "ncode"},
		{"c  ", "c"},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			assert.Equal(t, test.want, slugifyTag(test.in))
		})
	}
}

func TestRenderTagLinks(t *testing.T) {
	conf := defaultConf()

	assert.Equal(t, "", renderTagLinks(conf, nil), "no tags means no markup at all")

	got := renderTagLinks(conf, []string{"AWS", "C++ Tips!"})
	want := `<a href="/blog/tag/aws.html">AWS</a>, <a href="/blog/tag/c-tips.html">C++ Tips!</a>`
	assert.Equal(t, want, got)
}

func TestGroupByTag(t *testing.T) {
	ps := posts{
		{Slug: "p0", Tags: []string{"aws", "iac"}},
		{Slug: "p1", Tags: []string{"iac"}},
		{Slug: "p2", Tags: nil},
	}

	byTag := groupByTag(ps)
	assert.Len(t, byTag, 2)

	// First-seen tag order, posts in list order.
	assert.Equal(t, "aws", byTag[0].Tag)
	assert.Len(t, byTag[0].Posts, 1)
	assert.Equal(t, "iac", byTag[1].Tag)
	assert.Len(t, byTag[1].Posts, 2)
	assert.Equal(t, "p0", byTag[1].Posts[0].Slug)
	assert.Equal(t, "p1", byTag[1].Posts[1].Slug)
}

func TestGroupByTagEmpty(t *testing.T) {
	assert.Empty(t, groupByTag(posts{{Slug: "p0"}}))
}
