package directory

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"refdeck/internal/modules/browse/domain"
	catalog "refdeck/internal/modules/catalog/domain"
	nav "refdeck/internal/modules/navigation/domain"
	"refdeck/internal/ui/theme"
)

// OpenMsg asks the root model to navigate to Fragment.
type OpenMsg struct{ Fragment string }

type link struct {
	fragment string
	title    string
	detail   string
	heading  bool
}

// Model lists the links of the home page or a category page and lets the
// user move a cursor over them.
type Model struct {
	title    string
	subtitle string
	links    []link
	cursor   int
	width    int
	height   int
}

func New() Model {
	return Model{}
}

func (m *Model) SetHome(v domain.HomeView) {
	m.title = "Study topics"
	m.subtitle = fmt.Sprintf("%s content", v.Overview.Variant)
	m.links = nil
	for _, group := range v.Overview.Groups {
		if group.Category != nil {
			m.links = append(m.links, link{
				fragment: nav.Format(nav.Category(group.Category.Slug)),
				title:    group.Category.Title,
				detail:   group.Category.Summary,
				heading:  true,
			})
		}
		m.links = append(m.links, topicLinks(group.Topics)...)
	}
	m.clamp()
}

func (m *Model) SetCategory(v domain.CategoryView) {
	m.title = v.Category.Title
	m.subtitle = fmt.Sprintf("%s  ·  %d cards", v.Category.Summary, len(v.Cards))
	m.links = topicLinks(v.Topics)
	m.clamp()
}

func topicLinks(topics []catalog.TopicSummary) []link {
	out := make([]link, 0, len(topics))
	for _, topic := range topics {
		out = append(out, link{
			fragment: nav.Format(nav.Topic(topic.Slug)),
			title:    topic.Title,
			detail:   fmt.Sprintf("%d chapters · %d cards", topic.ChapterCount, topic.CardCount),
		})
	}
	return out
}

// Selected returns the fragment under the cursor.
func (m Model) Selected() (string, bool) {
	if len(m.links) == 0 {
		return "", false
	}
	return m.links[m.cursor].fragment, true
}

func (m *Model) clamp() {
	if m.cursor >= len(m.links) {
		m.cursor = len(m.links) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.cursor--
			m.clamp()
		case "down", "j":
			m.cursor++
			m.clamp()
		case "home":
			m.cursor = 0
		case "end":
			m.cursor = len(m.links) - 1
			m.clamp()
		case "enter":
			if fragment, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenMsg{Fragment: fragment} }
			}
		}
	}
	return m, nil
}

func (m Model) View(styles theme.Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(m.title) + "\n")
	if m.subtitle != "" {
		sb.WriteString(styles.Muted.Render(m.subtitle) + "\n")
	}
	sb.WriteString("\n")
	if len(m.links) == 0 {
		sb.WriteString(styles.Muted.Render("No topics."))
		return sb.String()
	}

	rows := m.height - 4
	if rows < 3 {
		rows = len(m.links)
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(m.links))
	for i := start; i < end; i++ {
		l := m.links[i]
		marker := "  "
		title := l.title
		switch {
		case i == m.cursor:
			marker = styles.Hot.Render("▸ ")
			title = styles.Hot.Render(title)
		case l.heading:
			title = styles.Title.Render(title)
		}
		indent := "  "
		if l.heading {
			indent = ""
		}
		line := marker + indent + title
		if l.detail != "" {
			line += "  " + styles.Muted.Render(l.detail)
		}
		sb.WriteString(lipgloss.NewStyle().MaxWidth(max(m.width, 20)).Render(line) + "\n")
	}
	return sb.String()
}
