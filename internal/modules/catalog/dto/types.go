package dto

import "time"

type LoadReport struct {
	Source     string            `json:"source"`
	Variant    string            `json:"variant"`
	Categories int               `json:"categories"`
	Topics     int               `json:"topics"`
	Subtopics  int               `json:"subtopics"`
	Cards      int               `json:"cards"`
	Orphans    int               `json:"orphans"`
	Tags       int               `json:"tags"`
	Rejections []RejectionOutput `json:"rejections,omitempty"`
	LoadedAt   time.Time         `json:"loaded_at"`
}

type RejectionOutput struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type PreviewOutput struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Chapters     []string `json:"chapters,omitempty"`
	ChapterCount int      `json:"chapter_count"`
	CardCount    int      `json:"card_count"`
}

type TopicSummaryOutput struct {
	Slug         string `json:"slug"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	ChapterCount int    `json:"chapter_count"`
	CardCount    int    `json:"card_count"`
}

type OverviewGroupOutput struct {
	CategorySlug  string               `json:"category_slug"`
	CategoryTitle string               `json:"category_title"`
	Topics        []TopicSummaryOutput `json:"topics,omitempty"`
}
