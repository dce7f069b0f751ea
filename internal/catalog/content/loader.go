package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"catalog7/internal/catalog/model"
)

// Draft is one post file read from disk, before revisions are collapsed.
type Draft struct {
	Post       *model.Post
	SourcePath string
}

// LoadFile reads a single post file into a Draft. The filename supplies the
// date and slug; front matter fields override both when present.
func LoadFile(path string) (*Draft, error) {
	fileDate, fileSlug, err := ParseFilename(path)
	if err != nil {
		return nil, err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read post %s: %w", path, err)
	}

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}

	slug := fileSlug
	if meta.Slug != "" {
		slug = meta.Slug
	}
	date := fileDate
	if !meta.Date.IsZero() {
		date = meta.Date
	}
	title := meta.Title
	if title == "" {
		title = titleFromSlug(slug)
	}

	html, err := RenderHTML(body)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}

	post := &model.Post{
		Slug:         slug,
		Title:        title,
		Date:         date,
		Tags:         meta.Tags,
		Author:       meta.Author,
		Draft:        meta.Draft,
		SourcePath:   path,
		BodyMarkdown: string(body),
		BodyHTML:     html,
	}

	return &Draft{Post: post, SourcePath: path}, nil
}

// LoadDir reads every Markdown file in dir. Files that do not match the
// naming convention are reported as errors rather than silently skipped.
func LoadDir(dir string) ([]*Draft, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read posts dir %s: %w", dir, err)
	}

	var drafts []*Draft
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if !strings.HasSuffix(name, ".md") && !strings.HasSuffix(name, ".markdown") {
			continue
		}

		draft, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// Collapse groups drafts by slug and keeps the latest revision of each.
// Near-duplicate files of one slug are revisions of a single article, so the
// newest date wins; ties go to the lexically last source path.
func Collapse(drafts []*Draft) []*model.Post {
	grouped := make(map[string][]*Draft)
	var order []string
	for _, d := range drafts {
		if _, ok := grouped[d.Post.Slug]; !ok {
			order = append(order, d.Post.Slug)
		}
		grouped[d.Post.Slug] = append(grouped[d.Post.Slug], d)
	}
	sort.Strings(order)

	posts := make([]*model.Post, 0, len(order))
	for _, slug := range order {
		group := grouped[slug]
		sort.Slice(group, func(i, j int) bool {
			if !group[i].Post.Date.Equal(group[j].Post.Date) {
				return group[i].Post.Date.Before(group[j].Post.Date)
			}
			return group[i].SourcePath < group[j].SourcePath
		})

		winner := group[len(group)-1].Post
		winner.Revision = len(group)
		posts = append(posts, winner)
	}

	return posts
}

func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
