package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"refdeck/internal/modules/browse/domain"
	browseout "refdeck/internal/modules/browse/port/out"
	catalog "refdeck/internal/modules/catalog/domain"
	nav "refdeck/internal/modules/navigation/domain"
	pref "refdeck/internal/modules/preference/domain"
	search "refdeck/internal/modules/search/domain"
)

// Synchronizer owns the session state and keeps the route, the topic
// selector and the facet selection consistent. It is driven from a single
// event loop and holds no locks.
type Synchronizer struct {
	navigator browseout.Navigator
	prefs     browseout.Preferences
	logger    *zap.Logger
	chapters  int

	state domain.SessionState
	snap  catalog.Snapshot
}

func NewSynchronizer(navigator browseout.Navigator, prefs browseout.Preferences, logger *zap.Logger, previewChapters int) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if previewChapters <= 0 {
		previewChapters = catalog.DefaultPreviewChapters
	}
	return &Synchronizer{
		navigator: navigator,
		prefs:     prefs,
		logger:    logger,
		chapters:  previewChapters,
		state:     domain.NewSessionState(),
	}
}

// Start reads the stored theme and adopts the initial fragment.
func (s *Synchronizer) Start(ctx context.Context, fragment string) domain.View {
	if s.prefs != nil {
		theme, err := s.prefs.Theme(ctx)
		if err != nil {
			s.logger.Warn("theme read failed", zap.Error(err))
			theme = pref.DefaultTheme
		}
		s.state.Theme = theme
	}
	return s.FragmentChanged(fragment)
}

// Loaded installs the content. It is the only way indexes become available.
func (s *Synchronizer) Loaded(snap catalog.Snapshot) domain.View {
	if !snap.Loaded() {
		return s.Resolve()
	}
	s.snap = snap
	s.state.Status = domain.LoadReady
	s.state.Selection = search.Narrow(snap.Index, s.state.Selection)
	return s.Resolve()
}

func (s *Synchronizer) LoadFailed(err error) domain.View {
	s.logger.Error("content unavailable", zap.Error(err))
	s.snap = catalog.Snapshot{}
	s.state.Status = domain.LoadFailed
	return s.Resolve()
}

// FragmentChanged adopts a new fragment. A topic route also moves the topic
// selector to that topic.
func (s *Synchronizer) FragmentChanged(fragment string) domain.View {
	route := nav.Parse(fragment)
	s.state.Fragment = fragment
	s.state.Route = route
	if route.Kind == nav.KindTopic {
		s.state.ActiveTopic = route.Slug
	}
	view := s.Resolve()
	s.logger.Debug("route resolved",
		zap.String("fragment", fragment),
		zap.String("route", route.Kind.String()),
		zap.String("view", view.Name()),
	)
	return view
}

// SelectTopic applies a topic selector change. Choosing All while on Browse
// and choosing the topic already shown only re-resolve; every other choice
// writes the fragment once.
func (s *Synchronizer) SelectTopic(value string) domain.View {
	if !s.ready() {
		return s.Resolve()
	}
	value = strings.TrimSpace(value)
	if value == "" {
		value = search.All
	}
	s.state.ActiveTopic = value

	target := nav.Browse
	if value != search.All {
		target = nav.Topic(value)
	}
	if s.state.Route == target {
		return s.Resolve()
	}
	s.navigate(target)
	return s.Resolve()
}

// SetCategory changes the category facet and narrows the topic facet.
func (s *Synchronizer) SetCategory(slug string) domain.View {
	if !s.ready() {
		return s.Resolve()
	}
	s.state.Selection.Category = slug
	s.state.Selection = search.Narrow(s.snap.Index, s.state.Selection)
	return s.Resolve()
}

func (s *Synchronizer) SetTopicFacet(slug string) domain.View {
	if !s.ready() {
		return s.Resolve()
	}
	s.state.Selection.Topic = slug
	s.state.Selection = s.state.Selection.Normalize()
	return s.Resolve()
}

func (s *Synchronizer) SetTag(tag string) domain.View {
	if !s.ready() {
		return s.Resolve()
	}
	s.state.Selection.Tag = tag
	s.state.Selection = s.state.Selection.Normalize()
	return s.Resolve()
}

// SetTerm applies a free-text term. Callers debounce keystrokes first.
func (s *Synchronizer) SetTerm(term string) domain.View {
	if !s.ready() {
		return s.Resolve()
	}
	s.state.Selection.Term = term
	return s.Resolve()
}

// ToggleTheme flips the theme for the session and persists it. The session
// keeps the new theme even when persisting fails.
func (s *Synchronizer) ToggleTheme(ctx context.Context) (pref.Theme, error) {
	next := s.state.Theme.Toggle()
	s.state.Theme = next
	if s.prefs == nil {
		return next, nil
	}
	if err := s.prefs.SetTheme(ctx, next); err != nil {
		s.logger.Error("theme write failed", zap.String("theme", string(next)), zap.Error(err))
		return next, err
	}
	return next, nil
}

func (s *Synchronizer) State() domain.SessionState {
	return s.state
}

// Topics lists the topic selector choices in title order.
func (s *Synchronizer) Topics() []catalog.Topic {
	if !s.ready() {
		return nil
	}
	return s.snap.Index.Topics()
}

// Preview projects the topic the selector points at.
func (s *Synchronizer) Preview() (catalog.TopicPreview, bool) {
	if !s.ready() || s.state.ActiveTopic == search.All {
		return catalog.TopicPreview{}, false
	}
	return catalog.Preview(s.snap.Index, s.state.ActiveTopic, s.snap.Catalogue, s.chapters)
}

// Resolve derives the view for the current state without changing it.
func (s *Synchronizer) Resolve() domain.View {
	switch s.state.Status {
	case domain.LoadPending:
		return domain.LoadingView{}
	case domain.LoadFailed:
		return domain.ErrorView{Message: domain.LoadFailedMessage}
	}

	idx := s.snap.Index
	route := s.state.Route
	switch route.Kind {
	case nav.KindHome:
		return domain.HomeView{Overview: catalog.BuildOverview(idx, s.snap.Catalogue)}
	case nav.KindBrowse:
		sel := s.state.Selection
		cards := search.Filter(idx, idx.Cards(), sel)
		return domain.BrowseView{
			Selection:    sel,
			Cards:        domain.NewCardItems(idx, cards),
			Total:        len(idx.Cards()),
			Categories:   idx.Categories(),
			TopicOptions: search.TopicOptions(idx, sel.Category),
			Tags:         idx.Tags(),
		}
	case nav.KindTopic:
		topic, ok := idx.TopicBySlug(route.Slug)
		if !ok {
			return domain.NotFoundView{Fragment: s.state.Fragment}
		}
		preview, _ := catalog.Preview(idx, topic.Slug, s.snap.Catalogue, s.chapters)
		return domain.TopicView{
			Topic:     topic,
			Preview:   preview,
			Chapters:  catalog.Chapters(topic, s.snap.Catalogue),
			Subtopics: idx.SubtopicsOf(topic.ID),
			Cards:     domain.NewCardItems(idx, idx.CardsOfTopic(topic.ID)),
		}
	case nav.KindCategory:
		category, ok := idx.CategoryBySlug(route.Slug)
		if !ok {
			return domain.NotFoundView{Fragment: s.state.Fragment}
		}
		return domain.CategoryView{
			Category: category,
			Topics:   catalog.Summarize(idx, idx.TopicsOf(category.ID), s.snap.Catalogue),
			Cards:    domain.NewCardItems(idx, idx.CardsOfCategory(category.ID)),
		}
	case nav.KindAbout:
		return domain.AboutView{Page: s.snap.About}
	default:
		return domain.NotFoundView{Fragment: s.state.Fragment}
	}
}

func (s *Synchronizer) ready() bool {
	return s.state.Status == domain.LoadReady && s.snap.Loaded()
}

func (s *Synchronizer) navigate(route nav.Route) {
	fragment := nav.Format(route)
	s.logger.Debug("navigate", zap.String("fragment", fragment))
	if s.navigator != nil {
		s.navigator.Navigate(fragment)
	}
}
