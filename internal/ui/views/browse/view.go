package browse

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"refdeck/internal/modules/browse/domain"
	search "refdeck/internal/modules/search/domain"
	"refdeck/internal/platform/debounce"
	"refdeck/internal/ui/theme"
)

const debounceKey = "browse.term"

// ─── messages ────────────────────────────────────────────────────────────────

// TermMsg carries a settled search term.
type TermMsg struct{ Term string }

type CategoryMsg struct{ Slug string }

type TopicFacetMsg struct{ Slug string }

type TagMsg struct{ Tag string }

// OpenTopicMsg asks the root model to open the topic of the selected card.
type OpenTopicMsg struct{ Slug string }

// ─── list item ───────────────────────────────────────────────────────────────

type cardItem struct {
	item domain.CardItem
}

func (i cardItem) Title() string { return i.item.Card.Question }

func (i cardItem) Description() string {
	parts := []string{}
	if i.item.Topic != "" {
		parts = append(parts, i.item.Topic)
	} else {
		parts = append(parts, "unfiled")
	}
	if i.item.Subtopic != "" {
		parts = append(parts, i.item.Subtopic)
	}
	if len(i.item.Card.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(i.item.Card.Tags, " #"))
	}
	return strings.Join(parts, " · ")
}

func (i cardItem) FilterValue() string { return i.item.Card.Question }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	input    textinput.Model
	debounce *debounce.Debouncer
	list     list.Model
	view     domain.BrowseView
	width    int
	height   int
}

func New(window time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = "search cards"
	ti.Prompt = "/ "
	ti.CharLimit = 128

	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	return Model{
		input:    ti,
		debounce: debounce.New(debounceKey, window),
		list:     l,
	}
}

// SetView installs a freshly resolved browse view.
func (m *Model) SetView(v domain.BrowseView) tea.Cmd {
	m.view = v
	items := make([]list.Item, len(v.Cards))
	for i, card := range v.Cards {
		items[i] = cardItem{item: card}
	}
	return m.list.SetItems(items)
}

// Restyle applies the session palette to the card list.
func (m *Model) Restyle(styles theme.Styles) {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.Palette.Lavender).BorderForeground(styles.Palette.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.Palette.Sapphire).BorderForeground(styles.Palette.Lavender)
	m.list.SetDelegate(delegate)
	m.input.PromptStyle = styles.Hot
}

// Filtering reports whether the search input owns the keyboard.
func (m Model) Filtering() bool {
	return m.input.Focused()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		m.list.SetSize(msg.Width, max(msg.Height-5, 3))
		return m, nil

	case debounce.FiredMsg:
		if term, ok := m.debounce.Accept(msg); ok {
			return m, func() tea.Msg { return TermMsg{Term: term} }
		}
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		switch msg.String() {
		case "/":
			cmd := m.input.Focus()
			return m, cmd
		case "c":
			return m, cycle(categorySlugs(m.view), m.view.Selection.Category, func(s string) tea.Msg { return CategoryMsg{Slug: s} })
		case "p":
			return m, cycle(topicSlugs(m.view), m.view.Selection.Topic, func(s string) tea.Msg { return TopicFacetMsg{Slug: s} })
		case "x":
			return m, cycle(m.view.Tags, m.view.Selection.Tag, func(s string) tea.Msg { return TagMsg{Tag: s} })
		case "enter":
			if item, ok := m.list.SelectedItem().(cardItem); ok && item.item.TopicSlug != "" {
				slug := item.item.TopicSlug
				return m, func() tea.Msg { return OpenTopicMsg{Slug: slug} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		m.input.Blur()
		// Leaving the input applies the term without waiting.
		m.debounce.Cancel()
		term := m.input.Value()
		return m, func() tea.Msg { return TermMsg{Term: term} }
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		return m, tea.Batch(cmd, m.debounce.Push(after))
	}
	return m, cmd
}

// cycle moves a facet to its next option, wrapping through All.
func cycle(options []string, current string, wrap func(string) tea.Msg) tea.Cmd {
	choices := append([]string{search.All}, options...)
	next := choices[0]
	for i, choice := range choices {
		if choice == current {
			next = choices[(i+1)%len(choices)]
			break
		}
	}
	return func() tea.Msg { return wrap(next) }
}

func categorySlugs(v domain.BrowseView) []string {
	out := make([]string, 0, len(v.Categories))
	for _, c := range v.Categories {
		out = append(out, c.Slug)
	}
	return out
}

func topicSlugs(v domain.BrowseView) []string {
	out := make([]string, 0, len(v.TopicOptions))
	for _, t := range v.TopicOptions {
		out = append(out, t.Slug)
	}
	return out
}

func (m Model) View(styles theme.Styles) string {
	sel := m.view.Selection
	facet := func(label, value string) string {
		if value == search.All {
			return styles.Muted.Render(label + ": all")
		}
		return styles.Hot.Render(label + ": " + value)
	}
	facets := []string{}
	if len(m.view.Categories) > 0 {
		facets = append(facets, facet("[c]ategory", sel.Category))
	}
	facets = append(facets, facet("to[p]ic", sel.Topic), facet("ta[x]", sel.Tag))

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.input.View(),
		strings.Join(facets, "   "),
		styles.Muted.Render(fmt.Sprintf("%d of %d cards", len(m.view.Cards), m.view.Total)),
	)
	if len(m.view.Cards) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", styles.Muted.Render("No cards match."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View())
}
