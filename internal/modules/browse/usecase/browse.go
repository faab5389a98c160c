package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"refdeck/internal/modules/browse/domain"
	"refdeck/internal/modules/browse/dto"
	browsein "refdeck/internal/modules/browse/port/in"
	browseout "refdeck/internal/modules/browse/port/out"
	"refdeck/internal/modules/browse/service"
	catalog "refdeck/internal/modules/catalog/domain"
	nav "refdeck/internal/modules/navigation/domain"
)

type Interactor struct {
	catalog  browseout.Catalog
	logger   *zap.Logger
	chapters int
}

func NewInteractor(catalog browseout.Catalog, logger *zap.Logger, previewChapters int) browsein.Usecase {
	return &Interactor{catalog: catalog, logger: logger, chapters: previewChapters}
}

// ResolveRoute resolves one fragment against a fresh session. A load failure
// is reported through the error view, not as an error.
func (i *Interactor) ResolveRoute(ctx context.Context, fragment string) (dto.RouteOutput, error) {
	sync := service.NewSynchronizer(discardNavigator{}, nil, i.logger, i.chapters)
	sync.Start(ctx, fragment)

	var view domain.View
	snap, err := i.catalog.Content(ctx)
	if err != nil {
		view = sync.LoadFailed(err)
	} else {
		view = sync.Loaded(snap)
	}

	state := sync.State()
	out := dto.RouteOutput{
		Fragment: fragment,
		Route:    nav.Format(state.Route),
		View:     view.Name(),
	}
	switch v := view.(type) {
	case domain.ErrorView:
		out.Message = v.Message
	case domain.HomeView:
		out.Title = "Home"
		for _, group := range v.Overview.Groups {
			section := dto.SectionOutput{Title: "Topics"}
			if group.Category != nil {
				section.Title = group.Category.Title
			}
			section.Links = topicLinks(group.Topics)
			out.Sections = append(out.Sections, section)
		}
	case domain.BrowseView:
		out.Title = "Browse"
		out.Summary = fmt.Sprintf("%d of %d cards", len(v.Cards), v.Total)
		out.Cards = cardOutputs(v.Cards)
	case domain.TopicView:
		out.Title = v.Topic.Title
		out.Summary = v.Preview.Summary
		out.Chapters = v.Chapters
		if len(v.Subtopics) > 0 {
			section := dto.SectionOutput{Title: "Subtopics"}
			for _, subtopic := range v.Subtopics {
				section.Links = append(section.Links, dto.LinkOutput{Title: subtopic.Title})
			}
			out.Sections = append(out.Sections, section)
		}
		out.Cards = cardOutputs(v.Cards)
	case domain.CategoryView:
		out.Title = v.Category.Title
		out.Summary = v.Category.Summary
		out.Sections = []dto.SectionOutput{{Title: "Topics", Links: topicLinks(v.Topics)}}
		out.Cards = cardOutputs(v.Cards)
	case domain.AboutView:
		out.Title = v.Page.Title
		out.Summary = v.Page.Body
	case domain.NotFoundView:
		out.Title = "Not found"
		out.Message = fmt.Sprintf("nothing lives at %q", v.Fragment)
	}
	return out, nil
}

func topicLinks(topics []catalog.TopicSummary) []dto.LinkOutput {
	links := make([]dto.LinkOutput, 0, len(topics))
	for _, topic := range topics {
		links = append(links, dto.LinkOutput{
			Fragment:  nav.Format(nav.Topic(topic.Slug)),
			Title:     topic.Title,
			CardCount: topic.CardCount,
		})
	}
	return links
}

func cardOutputs(items []domain.CardItem) []dto.CardOutput {
	out := make([]dto.CardOutput, 0, len(items))
	for _, item := range items {
		out = append(out, dto.CardOutput{
			ID:       item.Card.ID,
			Question: item.Card.Question,
			Topic:    item.Topic,
			Subtopic: item.Subtopic,
		})
	}
	return out
}

// discardNavigator drops writes; a one-shot resolution never changes route.
type discardNavigator struct{}

func (discardNavigator) Navigate(string) {}
