package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func wordsHTML(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return "<p>" + strings.Join(words, " ") + "</p>"
}

func TestBuildPreviewHTMLShortPostKeepsMarkup(t *testing.T) {
	body := "<p>Just a <em>few</em> words.</p>"
	assert.Equal(t, body, buildPreviewHTML(body, 80))
}

func TestBuildPreviewHTMLAtLimitUnchanged(t *testing.T) {
	body := wordsHTML(80)
	assert.Equal(t, body, buildPreviewHTML(body, 80))
}

func TestBuildPreviewHTMLOverLimitTruncates(t *testing.T) {
	got := buildPreviewHTML(wordsHTML(81), 80)

	assert.True(t, strings.HasPrefix(got, "<p>w0 w1 "))
	assert.True(t, strings.HasSuffix(got, " w79...</p>"))
	assert.NotContains(t, got, "w80")
	// Exactly 80 words plus the ellipsis, original markup gone.
	inner := strings.TrimSuffix(strings.TrimPrefix(got, "<p>"), "...</p>")
	assert.Len(t, strings.Fields(inner), 80)
	assert.NotContains(t, inner, "<")
}

func TestBuildPreviewHTMLCountsWordsWithoutMarkup(t *testing.T) {
	// Tags do not count as words, so this stays under the limit.
	body := "<div><span>one</span> <span>two</span></div>"
	assert.Equal(t, body, buildPreviewHTML(body, 2))
}
