package out

import (
	"context"
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"refdeck/internal/modules/catalog/domain"
	catalogout "refdeck/internal/modules/catalog/port/out"
	"refdeck/internal/platform/markdown"
	"refdeck/internal/platform/slug"
)

//go:embed defaults/catalogue.yaml defaults/about.md
var defaults embed.FS

type catalogueFile struct {
	Volumes []struct {
		Slug     string   `yaml:"slug"`
		Title    string   `yaml:"title"`
		Summary  string   `yaml:"summary"`
		Chapters []string `yaml:"chapters"`
	} `yaml:"volumes"`
}

// YAMLCatalogueStore reads catalogue copy from path, or the built-in
// catalogue when path is empty.
type YAMLCatalogueStore struct {
	path string
}

func NewYAMLCatalogueStore(path string) catalogout.CatalogueStore {
	return &YAMLCatalogueStore{path: path}
}

func (s *YAMLCatalogueStore) Load(context.Context) (domain.Catalogue, error) {
	raw, err := readOrDefault(s.path, "defaults/catalogue.yaml")
	if err != nil {
		return domain.Catalogue{}, err
	}
	var file catalogueFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return domain.Catalogue{}, fmt.Errorf("parse catalogue: %w", err)
	}
	out := domain.Catalogue{}
	for _, v := range file.Volumes {
		key := strings.TrimSpace(v.Slug)
		if key == "" {
			key = slug.Make(v.Title)
		}
		out.Volumes = append(out.Volumes, domain.Volume{
			Slug:     key,
			Title:    v.Title,
			Summary:  v.Summary,
			Chapters: v.Chapters,
		})
	}
	return out, nil
}

// MarkdownAboutStore reads the about page from a markdown file with an
// optional YAML frontmatter title.
type MarkdownAboutStore struct {
	path string
}

func NewMarkdownAboutStore(path string) catalogout.AboutStore {
	return &MarkdownAboutStore{path: path}
}

func (s *MarkdownAboutStore) Load(context.Context) (domain.AboutPage, error) {
	raw, err := readOrDefault(s.path, "defaults/about.md")
	if err != nil {
		return domain.AboutPage{}, err
	}
	var meta struct {
		Title string `yaml:"title"`
	}
	body, err := markdown.SplitFrontmatter(string(raw), &meta)
	if err != nil {
		return domain.AboutPage{}, fmt.Errorf("parse about page: %w", err)
	}
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = "About"
	}
	return domain.AboutPage{Title: title, Body: body}, nil
}

func readOrDefault(path, fallback string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		raw, err := defaults.ReadFile(fallback)
		if err != nil {
			return nil, fmt.Errorf("read built-in %s: %w", fallback, err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}
