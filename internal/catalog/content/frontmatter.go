package content

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
)

// FrontMatter is the metadata block at the top of a post file.
type FrontMatter struct {
	Title  string         `yaml:"title"`
	Slug   string         `yaml:"slug"`
	Date   time.Time      `yaml:"date"`
	Tags   []string       `yaml:"tags"`
	Author string         `yaml:"author"`
	Draft  bool           `yaml:"draft"`
	Custom map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts metadata and the Markdown body from the provided
// source bytes. The body comes back without the front matter delimiters.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, body, nil
}

// RenderHTML converts the Markdown body to an HTML fragment.
func RenderHTML(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
