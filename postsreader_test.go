package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePostFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o664))
}

func postText(title, date string) string {
	return "---\ntitle: " + title + "\ndate: " + date + "\n---\n<p>body</p>"
}

func TestLoadPostsSortedNewestFirst(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "a-oldest.html", postText("Oldest", "2024-01-05"))
	writePostFile(t, dir, "b-newest.html", postText("Newest", "2024-03-01"))
	writePostFile(t, dir, "c-middle.html", postText("Middle", "2024-02-01"))

	conf := defaultConf()
	conf.PostsDir = dir

	ps, err := loadPosts(conf)
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, "Newest", ps[0].Title)
	assert.Equal(t, "Middle", ps[1].Title)
	assert.Equal(t, "Oldest", ps[2].Title)
}

func TestLoadPostsStableTieBreakByFilename(t *testing.T) {
	dir := t.TempDir()
	// Same date: file name order decides.
	writePostFile(t, dir, "b-second.html", postText("Second", "2024-01-05"))
	writePostFile(t, dir, "a-first.html", postText("First", "2024-01-05"))

	conf := defaultConf()
	conf.PostsDir = dir

	ps, err := loadPosts(conf)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "First", ps[0].Title)
	assert.Equal(t, "Second", ps[1].Title)
}

func TestLoadPostsIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "post.html", postText("Kept", "2024-01-05"))
	writePostFile(t, dir, "notes.txt", "not a post")
	writePostFile(t, dir, "draft.html.bak", "not a post either")

	conf := defaultConf()
	conf.PostsDir = dir

	ps, err := loadPosts(conf)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "Kept", ps[0].Title)
}

func TestLoadPostsMalformedAbortsLoad(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "good.html", postText("Good", "2024-01-05"))
	writePostFile(t, dir, "bad.html", "<p>no front matter</p>")

	conf := defaultConf()
	conf.PostsDir = dir

	_, err := loadPosts(conf)
	assert.ErrorIs(t, err, ErrMalformedPost)
}

func TestLoadPostsRendersMarkdown(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "md-post.md", "---\ntitle: MD\ndate: 2024-01-05\n---\nSome **bold** text.")

	conf := defaultConf()
	conf.PostsDir = dir

	ps, err := loadPosts(conf)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "<p>Some <strong>bold</strong> text.</p>", ps[0].BodyHTML)
	assert.Equal(t, "md-post", ps[0].Slug)
}

func TestLoadPostsMissingDir(t *testing.T) {
	conf := defaultConf()
	conf.PostsDir = filepath.Join(t.TempDir(), "nope")

	_, err := loadPosts(conf)
	assert.Error(t, err)
}
