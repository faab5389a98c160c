package domain

import "slices"

// Volume is the static catalogue copy for one topic, matched by slug.
type Volume struct {
	Slug     string
	Title    string
	Summary  string
	Chapters []string
}

type Catalogue struct {
	Volumes []Volume
}

func (c Catalogue) Volume(slug string) (Volume, bool) {
	for _, v := range c.Volumes {
		if v.Slug == slug {
			return v, true
		}
	}
	return Volume{}, false
}

type AboutPage struct {
	Title string
	Body  string
}

const DefaultPreviewChapters = 3

// TopicPreview is derived on demand and never stored.
type TopicPreview struct {
	Slug         string
	Title        string
	Summary      string
	Chapters     []string
	ChapterCount int
	CardCount    int
}

// Chapters returns the chapter breakdown for a topic: the catalogue volume's
// chapters when present, otherwise the topic's key points.
func Chapters(topic Topic, catalogue Catalogue) []string {
	if v, ok := catalogue.Volume(topic.Slug); ok && len(v.Chapters) > 0 {
		return slices.Clone(v.Chapters)
	}
	return slices.Clone(topic.KeyPoints)
}

func summaryOf(topic Topic, catalogue Catalogue) string {
	if v, ok := catalogue.Volume(topic.Slug); ok && v.Summary != "" {
		return v.Summary
	}
	return topic.Summary
}

// Preview projects the topic with slug into a short preview holding its first
// n chapters. ok is false when no topic has that slug.
func Preview(idx *Index, slug string, catalogue Catalogue, n int) (TopicPreview, bool) {
	topic, ok := idx.TopicBySlug(slug)
	if !ok {
		return TopicPreview{}, false
	}
	if n <= 0 {
		n = DefaultPreviewChapters
	}
	chapters := Chapters(topic, catalogue)
	head := chapters
	if len(head) > n {
		head = head[:n]
	}
	return TopicPreview{
		Slug:         topic.Slug,
		Title:        topic.Title,
		Summary:      summaryOf(topic, catalogue),
		Chapters:     slices.Clone(head),
		ChapterCount: len(chapters),
		CardCount:    len(idx.CardsOfTopic(topic.ID)),
	}, true
}

type TopicSummary struct {
	Slug         string
	Title        string
	Summary      string
	Chapters     []string
	ChapterCount int
	CardCount    int
}

// OverviewGroup is one section of the home page. Two-level content has a
// single group without a category.
type OverviewGroup struct {
	Category *Category
	Topics   []TopicSummary
}

type Overview struct {
	Variant Variant
	Groups  []OverviewGroup
}

// Summarize projects topics for directory listings.
func Summarize(idx *Index, topics []Topic, catalogue Catalogue) []TopicSummary {
	out := make([]TopicSummary, 0, len(topics))
	for _, topic := range topics {
		chapters := Chapters(topic, catalogue)
		out = append(out, TopicSummary{
			Slug:         topic.Slug,
			Title:        topic.Title,
			Summary:      summaryOf(topic, catalogue),
			Chapters:     chapters,
			ChapterCount: len(chapters),
			CardCount:    len(idx.CardsOfTopic(topic.ID)),
		})
	}
	return out
}

// BuildOverview groups topics under their categories. Card counts exclude orphans.
func BuildOverview(idx *Index, catalogue Catalogue) Overview {
	overview := Overview{Variant: idx.Variant()}
	if idx.Variant() == VariantTwoLevel || len(idx.categories) == 0 {
		overview.Groups = []OverviewGroup{{Topics: Summarize(idx, idx.Topics(), catalogue)}}
		return overview
	}

	for _, category := range idx.Categories() {
		overview.Groups = append(overview.Groups, OverviewGroup{
			Category: &category,
			Topics:   Summarize(idx, idx.TopicsOf(category.ID), catalogue),
		})
	}
	ungrouped := []Topic{}
	for _, topic := range idx.Topics() {
		if _, ok := idx.Category(topic.CategoryID); !ok {
			ungrouped = append(ungrouped, topic)
		}
	}
	if len(ungrouped) > 0 {
		overview.Groups = append(overview.Groups, OverviewGroup{Topics: Summarize(idx, ungrouped, catalogue)})
	}
	return overview
}
