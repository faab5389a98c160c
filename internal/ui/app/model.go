package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"refdeck/internal/modules/browse/domain"
	catalog "refdeck/internal/modules/catalog/domain"
	nav "refdeck/internal/modules/navigation/domain"
	pref "refdeck/internal/modules/preference/domain"
	search "refdeck/internal/modules/search/domain"
	"refdeck/internal/platform/debounce"
	"refdeck/internal/ui/components"
	"refdeck/internal/ui/theme"
	browseview "refdeck/internal/ui/views/browse"
	"refdeck/internal/ui/views/directory"
	"refdeck/internal/ui/views/page"
	topicview "refdeck/internal/ui/views/topic"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type contentPort interface {
	Load(ctx context.Context) (catalog.Snapshot, error)
	Reload(ctx context.Context) (catalog.Snapshot, error)
}

// sessionPort is the selection synchronizer. It is only called from Update.
type sessionPort interface {
	Start(ctx context.Context, fragment string) domain.View
	Loaded(snap catalog.Snapshot) domain.View
	LoadFailed(err error) domain.View
	FragmentChanged(fragment string) domain.View
	SelectTopic(value string) domain.View
	SetCategory(slug string) domain.View
	SetTopicFacet(slug string) domain.View
	SetTag(tag string) domain.View
	SetTerm(term string) domain.View
	ToggleTheme(ctx context.Context) (pref.Theme, error)
	Resolve() domain.View
	State() domain.SessionState
	Topics() []catalog.Topic
	Preview() (catalog.TopicPreview, bool)
}

// fragmentQueue is the navigation fragment. Every write comes back as a
// fragment change once drained.
type fragmentQueue interface {
	Navigate(fragment string)
	Drain() []string
}

// ─── async messages ───────────────────────────────────────────────────────────

type contentLoadedMsg struct {
	snap catalog.Snapshot
	err  error
}

type contentReloadedMsg struct {
	snap catalog.Snapshot
	err  error
}

type contentChangedMsg struct{}

type fragmentChangedMsg struct{ fragment string }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Home   key.Binding
	Browse key.Binding
	About  key.Binding
	Jump   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Theme  key.Binding
	Search key.Binding
	Facets key.Binding
	Open   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Home:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Browse: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "browse")),
		About:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
		Jump:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to fragment")),
		Prev:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous topic")),
		Next:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next topic")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Facets: key.NewBinding(key.WithKeys("c", "p", "x"), key.WithHelp("c/p/x", "category/topic/tag")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Browse, k.Jump, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Browse, k.About, k.Jump},
		{k.Prev, k.Next, k.Open},
		{k.Search, k.Facets},
		{k.Theme, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It feeds every event to the session
// synchronizer and renders whichever view the synchronizer resolves.
type Model struct {
	content contentPort
	session sessionPort
	queue   fragmentQueue
	changes <-chan struct{}

	dirView    directory.Model
	browseView browseview.Model
	topicView  topicview.Model
	pageView   page.Model

	current  domain.View
	styles   theme.Styles
	keys     keyMap
	help     help.Model
	showHelp bool
	jump     components.JumpBar
	status   string
	width    int
	height   int
}

// Options carries the optional collaborators of the root model.
type Options struct {
	// Fragment is the fragment the session starts on.
	Fragment string
	// Debounce is the quiet window applied to search keystrokes.
	Debounce time.Duration
	// Changes signals content changes on disk. Nil disables live reload.
	Changes <-chan struct{}
}

func NewModel(content contentPort, session sessionPort, queue fragmentQueue, opts Options) Model {
	m := Model{
		content:    content,
		session:    session,
		queue:      queue,
		changes:    opts.Changes,
		dirView:    directory.New(),
		browseView: browseview.New(opts.Debounce),
		topicView:  topicview.New(),
		pageView:   page.New(),
		keys:       defaultKeys(),
		help:       help.New(),
		jump:       components.NewJumpBar(),
		status:     "loading",
	}
	view := session.Start(context.Background(), opts.Fragment)
	m.restyle()
	m.apply(view)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.pageView.Init(),
		m.loadCmd(),
		m.waitForChangeCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.jump.Visible() {
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.jump.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case contentLoadedMsg:
		if msg.err != nil {
			m.status = "load failed"
			cmd := m.apply(m.session.LoadFailed(msg.err))
			return m, cmd
		}
		m.status = loadedStatus(msg.snap)
		m.jump.SetHints(fragmentHints(msg.snap.Index))
		cmd := m.apply(m.session.Loaded(msg.snap))
		return m, cmd

	case contentChangedMsg:
		cmds := []tea.Cmd{m.waitForChangeCmd()}
		if m.session.State().Status == domain.LoadReady {
			m.status = "content changed, reloading"
			cmds = append(cmds, m.reloadCmd())
		}
		return m, tea.Batch(cmds...)

	case contentReloadedMsg:
		if msg.err != nil {
			m.status = "reload failed, keeping current content: " + msg.err.Error()
			return m, nil
		}
		m.status = "reloaded: " + loadedStatus(msg.snap)
		m.jump.SetHints(fragmentHints(msg.snap.Index))
		cmd := m.apply(m.session.Loaded(msg.snap))
		return m, cmd

	case fragmentChangedMsg:
		cmd := m.apply(m.session.FragmentChanged(msg.fragment))
		return m, cmd

	case components.JumpSubmitMsg:
		if msg.Fragment == "" {
			return m, nil
		}
		cmd := m.navigate(msg.Fragment)
		return m, cmd

	case components.JumpCancelMsg:
		return m, nil

	case directory.OpenMsg:
		cmd := m.navigate(msg.Fragment)
		return m, cmd

	case browseview.OpenTopicMsg:
		cmd := m.apply(m.session.SelectTopic(msg.Slug))
		return m, cmd

	case browseview.TermMsg:
		cmd := m.apply(m.session.SetTerm(msg.Term))
		return m, cmd

	case browseview.CategoryMsg:
		cmd := m.apply(m.session.SetCategory(msg.Slug))
		return m, cmd

	case browseview.TopicFacetMsg:
		cmd := m.apply(m.session.SetTopicFacet(msg.Slug))
		return m, cmd

	case browseview.TagMsg:
		cmd := m.apply(m.session.SetTag(msg.Tag))
		return m, cmd

	case debounce.FiredMsg:
		var cmd tea.Cmd
		m.browseView, cmd = m.browseView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Yield to the search input while it is focused.
		if m.current.Name() == "browse" && m.browseView.Filtering() {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "g":
			cmd := m.jump.Open()
			return m, cmd
		case "h":
			cmd := m.navigate(nav.Format(nav.Home))
			return m, cmd
		case "b":
			cmd := m.navigate(nav.Format(nav.Browse))
			return m, cmd
		case "a":
			cmd := m.navigate(nav.Format(nav.About))
			return m, cmd
		case "t":
			cmd := m.toggleTheme()
			return m, cmd
		case "left":
			cmd := m.stepTopic(-1)
			return m, cmd
		case "right":
			cmd := m.stepTopic(1)
			return m, cmd
		}
	}

	cmd := m.updateActive(msg)
	return m, cmd
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.current.(type) {
	case domain.HomeView, domain.CategoryView:
		m.dirView, cmd = m.dirView.Update(msg)
	case domain.BrowseView:
		m.browseView, cmd = m.browseView.Update(msg)
	case domain.TopicView:
		m.topicView, cmd = m.topicView.Update(msg)
	default:
		m.pageView, cmd = m.pageView.Update(msg)
	}
	return cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	top := m.renderTopBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(top)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.jump.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.jump.View(m.styles))
	default:
		content = lipgloss.NewStyle().Height(contentH).MaxHeight(contentH).Render(m.activeView())
	}

	return m.styles.App.Padding(0).Render(lipgloss.JoinVertical(lipgloss.Left, top, content, statusBar))
}

func (m Model) activeView() string {
	switch m.current.(type) {
	case domain.HomeView, domain.CategoryView:
		return m.dirView.View(m.styles)
	case domain.BrowseView:
		return m.browseView.View(m.styles)
	case domain.TopicView:
		return m.topicView.View(m.styles)
	default:
		return m.pageView.View(m.styles)
	}
}

func (m Model) renderTopBar() string {
	state := m.session.State()
	selector := "All topics"
	if state.ActiveTopic != search.All {
		selector = state.ActiveTopic
		if preview, ok := m.session.Preview(); ok {
			selector = fmt.Sprintf("%s (%d/%d chapters)", preview.Title, len(preview.Chapters), preview.ChapterCount)
		}
	}
	parts := []string{
		m.styles.Hot.Render("refdeck"),
		m.styles.Title.Render(nav.Format(state.Route)),
		m.styles.Muted.Render("◂ " + selector + " ▸"),
	}
	return m.styles.Bar.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := m.styles.Muted.Render(string(m.session.State().Theme) + "  ?:help  g:go  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + m.styles.Bar.Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// apply installs a resolved view into the matching sub-view and delivers any
// fragment writes the call produced.
func (m *Model) apply(view domain.View) tea.Cmd {
	m.current = view
	var cmd tea.Cmd
	switch v := view.(type) {
	case domain.HomeView:
		m.dirView.SetHome(v)
	case domain.CategoryView:
		m.dirView.SetCategory(v)
	case domain.BrowseView:
		cmd = m.browseView.SetView(v)
	case domain.TopicView:
		m.topicView.SetView(v, m.styles)
	default:
		m.pageView.SetView(v, m.styles)
	}
	return tea.Batch(cmd, m.drain())
}

func (m *Model) navigate(fragment string) tea.Cmd {
	m.queue.Navigate(fragment)
	return m.drain()
}

func (m *Model) drain() tea.Cmd {
	pending := m.queue.Drain()
	if len(pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(pending))
	for _, fragment := range pending {
		cmds = append(cmds, func() tea.Msg { return fragmentChangedMsg{fragment: fragment} })
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// stepTopic moves the topic selector through All and every topic.
func (m *Model) stepTopic(delta int) tea.Cmd {
	topics := m.session.Topics()
	if len(topics) == 0 {
		return nil
	}
	choices := make([]string, 0, len(topics)+1)
	choices = append(choices, search.All)
	for _, topic := range topics {
		choices = append(choices, topic.Slug)
	}
	current := 0
	active := m.session.State().ActiveTopic
	for i, choice := range choices {
		if choice == active {
			current = i
			break
		}
	}
	next := (current + delta + len(choices)) % len(choices)
	return m.apply(m.session.SelectTopic(choices[next]))
}

func (m *Model) toggleTheme() tea.Cmd {
	next, err := m.session.ToggleTheme(context.Background())
	if err != nil {
		m.status = "theme not saved: " + err.Error()
	} else {
		m.status = "theme: " + string(next)
	}
	m.restyle()
	return m.apply(m.session.Resolve())
}

func (m *Model) restyle() {
	m.styles = theme.For(m.session.State().Theme)
	m.browseView.Restyle(m.styles)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: max(m.height-3, 1)}
	m.dirView, _ = m.dirView.Update(sz)
	m.browseView, _ = m.browseView.Update(sz)
	m.topicView, _ = m.topicView.Update(sz)
	m.pageView, _ = m.pageView.Update(sz)
}

func loadedStatus(snap catalog.Snapshot) string {
	counts := snap.Index.Counts()
	status := fmt.Sprintf("%d topics · %d cards", counts.Topics, counts.Cards)
	if n := len(snap.Rejections); n > 0 {
		status += fmt.Sprintf(" · %d rejected", n)
	}
	return status
}

func fragmentHints(idx *catalog.Index) []string {
	if idx == nil {
		return nil
	}
	var out []string
	for _, category := range idx.Categories() {
		out = append(out, nav.Format(nav.Category(category.Slug)))
	}
	for _, topic := range idx.Topics() {
		out = append(out, nav.Format(nav.Topic(topic.Slug)))
	}
	return out
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.content.Load(context.Background())
		return contentLoadedMsg{snap: snap, err: err}
	}
}

func (m Model) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.content.Reload(context.Background())
		return contentReloadedMsg{snap: snap, err: err}
	}
}

func (m Model) waitForChangeCmd() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return contentChangedMsg{}
	}
}
