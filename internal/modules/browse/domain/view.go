package domain

import (
	catalog "refdeck/internal/modules/catalog/domain"
	search "refdeck/internal/modules/search/domain"
)

// View is the typed outcome of resolving the session state. Every state
// resolves to exactly one view; none of them is a fault.
type View interface {
	Name() string
}

type LoadingView struct{}

type ErrorView struct {
	Message string
}

type HomeView struct {
	Overview catalog.Overview
}

type BrowseView struct {
	Selection    search.Selection
	Cards        []CardItem
	Total        int
	Categories   []catalog.Category
	TopicOptions []catalog.Topic
	Tags         []string
}

type TopicView struct {
	Topic     catalog.Topic
	Preview   catalog.TopicPreview
	Chapters  []string
	Subtopics []catalog.Subtopic
	Cards     []CardItem
}

type CategoryView struct {
	Category catalog.Category
	Topics   []catalog.TopicSummary
	Cards    []CardItem
}

type AboutView struct {
	Page catalog.AboutPage
}

type NotFoundView struct {
	Fragment string
}

func (LoadingView) Name() string  { return "loading" }
func (ErrorView) Name() string    { return "error" }
func (HomeView) Name() string     { return "home" }
func (BrowseView) Name() string   { return "browse" }
func (TopicView) Name() string    { return "topic" }
func (CategoryView) Name() string { return "category" }
func (AboutView) Name() string    { return "about" }
func (NotFoundView) Name() string { return "notfound" }
