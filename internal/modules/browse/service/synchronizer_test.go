package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"refdeck/internal/modules/browse/domain"
	"refdeck/internal/modules/browse/service"
	catalog "refdeck/internal/modules/catalog/domain"
	pref "refdeck/internal/modules/preference/domain"
	search "refdeck/internal/modules/search/domain"
)

type recordingNavigator struct {
	writes []string
}

func (n *recordingNavigator) Navigate(fragment string) {
	n.writes = append(n.writes, fragment)
}

type fakePreferences struct {
	theme  pref.Theme
	set    []pref.Theme
	setErr error
}

func (f *fakePreferences) Theme(context.Context) (pref.Theme, error) {
	return f.theme, nil
}

func (f *fakePreferences) SetTheme(_ context.Context, theme pref.Theme) error {
	f.set = append(f.set, theme)
	if f.setErr != nil {
		return f.setErr
	}
	f.theme = theme
	return nil
}

func threeLevelSnapshot(t *testing.T) catalog.Snapshot {
	t.Helper()
	idx, _ := catalog.Build(catalog.Document{
		Categories: []catalog.Category{
			{ID: "c1", Slug: "crime", Title: "Crime"},
			{ID: "c2", Slug: "procedure", Title: "Procedure"},
		},
		Topics: []catalog.Topic{
			{ID: "t1", Slug: "mens-rea", Title: "Mens Rea", CategoryID: "c1", KeyPoints: []string{"Intention", "Recklessness"}},
			{ID: "t2", Slug: "theft", Title: "Theft", CategoryID: "c1"},
			{ID: "t3", Slug: "disclosure", Title: "Disclosure", CategoryID: "c2"},
		},
		Cards: []catalog.Card{
			{ID: "1", Question: "What is mens rea?", Answer: "Guilty mind", Tags: []string{"intent"}, TopicID: "t1"},
			{ID: "2", Question: "Define theft", Answer: "Dishonest appropriation", Tags: []string{"dishonesty"}, TopicID: "t2"},
			{ID: "3", Question: "When is disclosure due?", Answer: "Promptly", TopicID: "t3"},
		},
	})
	return catalog.Snapshot{
		Index: idx,
		Catalogue: catalog.Catalogue{Volumes: []catalog.Volume{
			{Slug: "theft", Title: "Theft", Summary: "Theft volume", Chapters: []string{"One", "Two", "Three", "Four"}},
		}},
		About: catalog.AboutPage{Title: "About", Body: "Study cards."},
	}
}

func twoLevelSnapshot(t *testing.T) catalog.Snapshot {
	t.Helper()
	idx, _ := catalog.Build(catalog.Document{
		Topics: []catalog.Topic{
			{ID: "t1", Slug: "crime", Title: "Crime"},
		},
		Subtopics: []catalog.Subtopic{
			{ID: "s1", TopicID: "t1", Title: "Assault"},
		},
		Cards: []catalog.Card{
			{ID: "1", Question: "Assault?", Answer: "Apprehension of force", SubtopicID: "s1"},
		},
	})
	return catalog.Snapshot{Index: idx}
}

func loaded(t *testing.T, fragment string) (*service.Synchronizer, *recordingNavigator) {
	t.Helper()
	navigator := &recordingNavigator{}
	sync := service.NewSynchronizer(navigator, nil, nil, 0)
	sync.Start(context.Background(), fragment)
	sync.Loaded(threeLevelSnapshot(t))
	return sync, navigator
}

func TestStartBeforeLoadShowsLoading(t *testing.T) {
	t.Parallel()

	sync := service.NewSynchronizer(&recordingNavigator{}, nil, nil, 0)
	view := sync.Start(context.Background(), "#topic/mens-rea")
	if _, ok := view.(domain.LoadingView); !ok {
		t.Fatalf("expected loading view, got %T", view)
	}
	if got := sync.State().ActiveTopic; got != "mens-rea" {
		t.Fatalf("topic route should set the selector before load, got %q", got)
	}
}

func TestLoadedResolvesEveryRoute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		fragment string
		want     string
	}{
		{"", "home"},
		{"#home", "home"},
		{"#browse", "browse"},
		{"#topic/theft", "topic"},
		{"#category/crime", "category"},
		{"#about", "about"},
		{"#topic/unknown", "notfound"},
		{"#category/unknown", "notfound"},
		{"#nonsense", "notfound"},
	}
	for _, tc := range cases {
		sync, _ := loaded(t, tc.fragment)
		if got := sync.Resolve().Name(); got != tc.want {
			t.Errorf("%q: got view %s, want %s", tc.fragment, got, tc.want)
		}
	}
}

func TestTopicViewUsesCatalogueCopy(t *testing.T) {
	t.Parallel()

	sync, _ := loaded(t, "#topic/theft")
	view, ok := sync.Resolve().(domain.TopicView)
	if !ok {
		t.Fatalf("expected topic view, got %T", sync.Resolve())
	}
	if len(view.Chapters) != 4 {
		t.Fatalf("expected 4 chapters, got %v", view.Chapters)
	}
	if len(view.Preview.Chapters) != 3 || view.Preview.ChapterCount != 4 {
		t.Fatalf("unexpected preview %+v", view.Preview)
	}
	if view.Preview.Summary != "Theft volume" {
		t.Fatalf("preview summary should come from the volume, got %q", view.Preview.Summary)
	}
	if len(view.Cards) != 1 || view.Cards[0].Category != "Crime" {
		t.Fatalf("unexpected topic cards %+v", view.Cards)
	}
}

func TestTopicWithoutCatalogueFallsBackToKeyPoints(t *testing.T) {
	t.Parallel()

	sync, _ := loaded(t, "#topic/mens-rea")
	view := sync.Resolve().(domain.TopicView)
	if !reflect.DeepEqual(view.Chapters, []string{"Intention", "Recklessness"}) {
		t.Fatalf("expected key points as chapters, got %v", view.Chapters)
	}
}

func TestSelectAllOnBrowseDoesNotNavigate(t *testing.T) {
	t.Parallel()

	sync, navigator := loaded(t, "#browse")
	view := sync.SelectTopic(search.All)
	if len(navigator.writes) != 0 {
		t.Fatalf("expected no navigation writes, got %v", navigator.writes)
	}
	if view.Name() != "browse" {
		t.Fatalf("expected browse view, got %s", view.Name())
	}
}

func TestSelectAllElsewhereNavigatesToBrowse(t *testing.T) {
	t.Parallel()

	sync, navigator := loaded(t, "#topic/theft")
	sync.SelectTopic(search.All)
	if !reflect.DeepEqual(navigator.writes, []string{"#browse"}) {
		t.Fatalf("unexpected writes %v", navigator.writes)
	}
	if got := sync.State().ActiveTopic; got != search.All {
		t.Fatalf("active topic: got %q", got)
	}
}

func TestSelectTopicWritesOnce(t *testing.T) {
	t.Parallel()

	sync, navigator := loaded(t, "#browse")
	sync.SelectTopic("theft")
	if !reflect.DeepEqual(navigator.writes, []string{"#topic/theft"}) {
		t.Fatalf("unexpected writes %v", navigator.writes)
	}

	// The environment echoes the write back; selecting the same topic again
	// must not write a second time.
	sync.FragmentChanged("#topic/theft")
	sync.SelectTopic("theft")
	if len(navigator.writes) != 1 {
		t.Fatalf("duplicate navigation write: %v", navigator.writes)
	}
}

func TestFragmentChangeMovesTopicSelector(t *testing.T) {
	t.Parallel()

	sync, navigator := loaded(t, "#home")
	sync.FragmentChanged("#topic/disclosure")
	if got := sync.State().ActiveTopic; got != "disclosure" {
		t.Fatalf("active topic: got %q", got)
	}
	if len(navigator.writes) != 0 {
		t.Fatalf("fragment changes must not write back: %v", navigator.writes)
	}
	preview, ok := sync.Preview()
	if !ok || preview.Slug != "disclosure" {
		t.Fatalf("unexpected preview %+v ok=%v", preview, ok)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, fragment := range []string{"#home", "#browse", "#topic/theft", "#category/crime", "#about", "#x"} {
		sync, _ := loaded(t, fragment)
		first := sync.Resolve()
		second := sync.Resolve()
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: resolving twice gave different views", fragment)
		}
	}
}

func TestInputsBeforeLoadAreIgnored(t *testing.T) {
	t.Parallel()

	navigator := &recordingNavigator{}
	sync := service.NewSynchronizer(navigator, nil, nil, 0)
	sync.Start(context.Background(), "#browse")
	before := sync.State()

	sync.SelectTopic("theft")
	sync.SetCategory("crime")
	sync.SetTopicFacet("theft")
	sync.SetTag("intent")
	sync.SetTerm("mind")

	if len(navigator.writes) != 0 {
		t.Fatalf("expected no writes before load, got %v", navigator.writes)
	}
	if !reflect.DeepEqual(before, sync.State()) {
		t.Fatalf("state changed before load: %+v", sync.State())
	}
	if sync.Topics() != nil {
		t.Fatal("no topic choices before load")
	}
}

func TestLoadFailureShowsErrorForEveryRoute(t *testing.T) {
	t.Parallel()

	sync := service.NewSynchronizer(&recordingNavigator{}, nil, nil, 0)
	sync.Start(context.Background(), "#topic/theft")
	view := sync.LoadFailed(errors.New("boom"))
	errView, ok := view.(domain.ErrorView)
	if !ok {
		t.Fatalf("expected error view, got %T", view)
	}
	if errView.Message != domain.LoadFailedMessage {
		t.Fatalf("unexpected message %q", errView.Message)
	}
	if got := sync.FragmentChanged("#browse").Name(); got != "error" {
		t.Fatalf("failed load must stay on the error view, got %s", got)
	}
}

func TestCategoryRouteOnTwoLevelContentIsNotFound(t *testing.T) {
	t.Parallel()

	sync := service.NewSynchronizer(&recordingNavigator{}, nil, nil, 0)
	sync.Start(context.Background(), "#category/crime")
	view := sync.Loaded(twoLevelSnapshot(t))
	if _, ok := view.(domain.NotFoundView); !ok {
		t.Fatalf("expected not found, got %T", view)
	}
	home := sync.FragmentChanged("#home").(domain.HomeView)
	if len(home.Overview.Groups) != 1 || home.Overview.Groups[0].Category != nil {
		t.Fatalf("two-level overview should have one ungrouped section: %+v", home.Overview)
	}
}

func TestFacetsFilterBrowseView(t *testing.T) {
	t.Parallel()

	sync, _ := loaded(t, "#browse")
	view := sync.SetCategory("crime").(domain.BrowseView)
	if len(view.Cards) != 2 {
		t.Fatalf("crime should hold 2 cards, got %d", len(view.Cards))
	}
	if len(view.TopicOptions) != 2 {
		t.Fatalf("crime should offer 2 topics, got %d", len(view.TopicOptions))
	}

	view = sync.SetTopicFacet("theft").(domain.BrowseView)
	if len(view.Cards) != 1 || view.Cards[0].Card.ID != "2" {
		t.Fatalf("unexpected cards %+v", view.Cards)
	}

	view = sync.SetCategory("procedure").(domain.BrowseView)
	if view.Selection.Topic != search.All {
		t.Fatalf("topic facet should reset when it leaves the category, got %q", view.Selection.Topic)
	}

	sync.SetCategory(search.All)
	view = sync.SetTerm("GUILTY").(domain.BrowseView)
	if len(view.Cards) != 1 || view.Cards[0].Card.ID != "1" {
		t.Fatalf("term search should be case-insensitive, got %+v", view.Cards)
	}
	if view.Total != 3 {
		t.Fatalf("total: got %d", view.Total)
	}
}

func TestToggleThemePersists(t *testing.T) {
	t.Parallel()

	prefs := &fakePreferences{theme: pref.ThemeDark}
	sync := service.NewSynchronizer(&recordingNavigator{}, prefs, nil, 0)
	sync.Start(context.Background(), "")
	if sync.State().Theme != pref.ThemeDark {
		t.Fatalf("stored theme should be adopted, got %q", sync.State().Theme)
	}

	theme, err := sync.ToggleTheme(context.Background())
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if theme != pref.ThemeLight || prefs.theme != pref.ThemeLight {
		t.Fatalf("expected light persisted, got %q / %q", theme, prefs.theme)
	}
}

func TestToggleThemeKeepsSessionValueOnWriteFailure(t *testing.T) {
	t.Parallel()

	prefs := &fakePreferences{theme: pref.ThemeLight, setErr: errors.New("disk full")}
	sync := service.NewSynchronizer(&recordingNavigator{}, prefs, nil, 0)
	sync.Start(context.Background(), "")

	theme, err := sync.ToggleTheme(context.Background())
	if err == nil {
		t.Fatal("expected write error")
	}
	if theme != pref.ThemeDark || sync.State().Theme != pref.ThemeDark {
		t.Fatalf("session should keep the toggled theme, got %q", sync.State().Theme)
	}
}
