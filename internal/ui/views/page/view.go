package page

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"refdeck/internal/modules/browse/domain"
	"refdeck/internal/ui/render"
	"refdeck/internal/ui/theme"
)

type kind int

const (
	kindLoading kind = iota
	kindError
	kindAbout
	kindNotFound
)

// Model renders the single-message pages: loading, error, about and not found.
type Model struct {
	kind     kind
	title    string
	body     string
	spinner  spinner.Model
	viewport viewport.Model
	styles   theme.Styles
	width    int
	height   int
}

func New() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{spinner: sp, viewport: viewport.New(0, 0)}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) SetView(v domain.View, styles theme.Styles) {
	m.styles = styles
	m.spinner.Style = lipgloss.NewStyle().Foreground(styles.Palette.Lavender)
	switch v := v.(type) {
	case domain.LoadingView:
		m.kind, m.title, m.body = kindLoading, "", "Loading study cards…"
	case domain.ErrorView:
		m.kind, m.title, m.body = kindError, "Content unavailable", v.Message
	case domain.AboutView:
		m.kind, m.title, m.body = kindAbout, v.Page.Title, v.Page.Body
	case domain.NotFoundView:
		m.kind, m.title = kindNotFound, "Not found"
		m.body = "Nothing lives at " + v.Fragment + ". Press h for home or b to browse."
	}
	m.refresh()
}

func (m *Model) refresh() {
	if m.kind == kindAbout {
		m.viewport.SetContent(render.Markdown(m.body, m.styles.Glamour, m.width))
		m.viewport.GotoTop()
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1)
		m.refresh()
		return m, nil
	case spinner.TickMsg:
		if m.kind != kindLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	if m.kind == kindAbout {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View(styles theme.Styles) string {
	switch m.kind {
	case kindLoading:
		return lipgloss.Place(m.width, max(m.height, 1), lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+m.body)
	case kindAbout:
		return lipgloss.JoinVertical(lipgloss.Left, styles.Title.Render(m.title), m.viewport.View())
	case kindError:
		return lipgloss.Place(m.width, max(m.height, 1), lipgloss.Center, lipgloss.Center,
			styles.Bad.Render(m.title)+"\n\n"+m.body)
	default:
		return lipgloss.Place(m.width, max(m.height, 1), lipgloss.Center, lipgloss.Center,
			styles.Hot.Render(m.title)+"\n\n"+styles.Muted.Render(m.body))
	}
}
