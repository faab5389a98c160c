package directory

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"refdeck/internal/modules/browse/domain"
	catalog "refdeck/internal/modules/catalog/domain"
)

func homeView() domain.HomeView {
	crime := catalog.Category{ID: "c1", Slug: "crime", Title: "Crime"}
	return domain.HomeView{Overview: catalog.Overview{
		Variant: catalog.VariantThreeLevel,
		Groups: []catalog.OverviewGroup{
			{Category: &crime, Topics: []catalog.TopicSummary{
				{Slug: "mens-rea", Title: "Mens Rea", CardCount: 2},
				{Slug: "theft", Title: "Theft", CardCount: 1},
			}},
		},
	}}
}

func TestHomeLinksIncludeCategoryHeadings(t *testing.T) {
	t.Parallel()

	m := New()
	m.SetHome(homeView())
	if len(m.links) != 3 {
		t.Fatalf("expected heading plus two topics, got %d links", len(m.links))
	}
	if got, _ := m.Selected(); got != "#category/crime" {
		t.Fatalf("cursor should start on the category, got %q", got)
	}
}

func TestCursorOpensTopic(t *testing.T) {
	t.Parallel()

	m := New()
	m.SetHome(homeView())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected open command")
	}
	msg, ok := cmd().(OpenMsg)
	if !ok || msg.Fragment != "#topic/theft" {
		t.Fatalf("unexpected message %#v", cmd())
	}
}
