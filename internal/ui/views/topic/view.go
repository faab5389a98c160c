package topic

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"refdeck/internal/modules/browse/domain"
	"refdeck/internal/ui/render"
	"refdeck/internal/ui/theme"
)

// Model shows one topic with its chapters and cards in a scrollable pane.
type Model struct {
	viewport viewport.Model
	view     domain.TopicView
	styles   theme.Styles
	width    int
	height   int
}

func New() Model {
	return Model{viewport: viewport.New(0, 0)}
}

func (m *Model) SetView(v domain.TopicView, styles theme.Styles) {
	changed := v.Topic.ID != m.view.Topic.ID
	m.view = v
	m.styles = styles
	m.refresh()
	if changed {
		m.viewport.GotoTop()
	}
}

func (m Model) Slug() string {
	return m.view.Topic.Slug
}

func (m *Model) refresh() {
	m.viewport.SetContent(render.Markdown(Markdown(m.view), m.styles.Glamour, m.width))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.viewport.Width = size.Width
		m.viewport.Height = max(size.Height-2, 1)
		if m.view.Topic.ID != "" {
			m.refresh()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View(styles theme.Styles) string {
	p := m.view.Preview
	header := styles.Title.Render(m.view.Topic.Title) + "  " +
		styles.Muted.Render(fmt.Sprintf("%d chapters · %d cards · ←/→ topic", p.ChapterCount, p.CardCount))
	footer := styles.Muted.Render(fmt.Sprintf("%.0f%%", m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}

// Markdown lays the topic out as a markdown document.
func Markdown(v domain.TopicView) string {
	var sb strings.Builder
	summary := v.Preview.Summary
	if summary == "" {
		summary = v.Topic.Summary
	}
	if summary != "" {
		sb.WriteString(summary + "\n\n")
	}

	if len(v.Chapters) > 0 {
		sb.WriteString("## Chapters\n\n")
		for i, chapter := range v.Chapters {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, chapter)
		}
		sb.WriteString("\n")
	}
	writeList(&sb, "Core tasks", v.Topic.CoreTasks)
	writeList(&sb, "Resources", v.Topic.Resources)
	if len(v.Subtopics) > 0 {
		titles := make([]string, 0, len(v.Subtopics))
		for _, s := range v.Subtopics {
			titles = append(titles, s.Title)
		}
		writeList(&sb, "Subtopics", titles)
	}

	fmt.Fprintf(&sb, "## Cards (%d)\n\n", len(v.Cards))
	if len(v.Cards) == 0 {
		sb.WriteString("_No cards yet._\n")
	}
	for _, item := range v.Cards {
		card := item.Card
		fmt.Fprintf(&sb, "### %s\n\n", card.Question)
		if card.Subtitle != "" {
			fmt.Fprintf(&sb, "_%s_\n\n", card.Subtitle)
		}
		if item.Subtopic != "" {
			fmt.Fprintf(&sb, "Subtopic: %s\n\n", item.Subtopic)
		}
		fmt.Fprintf(&sb, "**Answer:** %s\n\n", card.Answer)
		if card.Explanation != "" {
			sb.WriteString(card.Explanation + "\n\n")
		}
		if card.Reference != "" {
			fmt.Fprintf(&sb, "> %s\n\n", card.Reference)
		}
		if len(card.Tags) > 0 {
			fmt.Fprintf(&sb, "`%s`\n\n", strings.Join(card.Tags, "` `"))
		}
	}
	return sb.String()
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
	sb.WriteString("\n")
}
