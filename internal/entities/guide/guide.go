// Package guide defines boss guides and their table of contents
package guide

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultAuthor is recorded on guides created without an author
const DefaultAuthor = "User"

// Guide is a markdown boss guide. Timestamps are RFC 3339 in UTC.
type Guide struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Boss      string `json:"boss"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Heading is one table of contents entry
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// TableOfContents lists the level 2 and 3 markdown headings of content in order
func TableOfContents(content string) []Heading {
	headings := []Heading{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "## "):
			text := strings.TrimSpace(line[3:])
			headings = append(headings, Heading{ID: Slugify(text), Text: text, Level: 2})
		case strings.HasPrefix(line, "### "):
			text := strings.TrimSpace(line[4:])
			headings = append(headings, Heading{ID: Slugify(text), Text: text, Level: 3})
		}
	}
	return headings
}

var (
	spaceRun = regexp.MustCompile(`\s+`)
	nonWord  = regexp.MustCompile(`[^\w-]+`)
	dashRun  = regexp.MustCompile(`--+`)
)

// Slugify turns heading text into an anchor id: accents stripped, lower case,
// whitespace to dashes, anything else that is not a word character dropped.
func Slugify(text string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), text)
	if err != nil {
		stripped = text
	}

	slug := strings.TrimSpace(strings.ToLower(stripped))
	slug = spaceRun.ReplaceAllString(slug, "-")
	slug = nonWord.ReplaceAllString(slug, "")
	return dashRun.ReplaceAllString(slug, "-")
}
