package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"refdeck/internal/ui/theme"
)

// JumpSubmitMsg is emitted when the user confirms a fragment.
type JumpSubmitMsg struct{ Fragment string }

// JumpCancelMsg is emitted when the user presses esc.
type JumpCancelMsg struct{}

const maxHints = 6

var baseHints = []string{"#home", "#browse", "#about"}

// JumpBar is an overlay for typing a navigation fragment directly.
type JumpBar struct {
	input   textinput.Model
	hints   []string
	visible bool
	width   int
}

func NewJumpBar() JumpBar {
	ti := textinput.New()
	ti.Placeholder = "#topic/<slug>"
	ti.CharLimit = 256
	return JumpBar{input: ti, hints: baseHints}
}

func (j JumpBar) Visible() bool { return j.visible }

// SetHints replaces the content-specific suggestions shown under the input.
func (j *JumpBar) SetHints(fragments []string) {
	j.hints = append(append([]string{}, baseHints...), fragments...)
}

func (j *JumpBar) Open() tea.Cmd {
	j.visible = true
	j.input.SetValue("#")
	j.input.CursorEnd()
	return j.input.Focus()
}

func (j *JumpBar) SetWidth(w int) { j.width = w }

func (j JumpBar) Update(msg tea.Msg) (JumpBar, tea.Cmd) {
	if !j.visible {
		return j, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			j.visible = false
			j.input.Blur()
			return j, func() tea.Msg { return JumpCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(j.input.Value())
			j.visible = false
			j.input.Blur()
			return j, func() tea.Msg { return JumpSubmitMsg{Fragment: val} }
		case "tab":
			if matches := j.matching(); len(matches) > 0 {
				j.input.SetValue(matches[0])
				j.input.CursorEnd()
			}
			return j, nil
		}
	}
	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	return j, cmd
}

func (j JumpBar) matching() []string {
	prefix := strings.ToLower(j.input.Value())
	var out []string
	for _, h := range j.hints {
		if prefix == "" || prefix == "#" || strings.HasPrefix(h, prefix) {
			out = append(out, h)
			if len(out) == maxHints {
				break
			}
		}
	}
	return out
}

func (j JumpBar) View(styles theme.Styles) string {
	if !j.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Go to") + "\n")
	sb.WriteString(j.input.View() + "\n")
	if matches := j.matching(); len(matches) > 0 {
		sb.WriteString("\n")
		for _, h := range matches {
			sb.WriteString(styles.Muted.Render("  "+h) + "\n")
		}
	}

	w := j.width
	if w < 20 {
		w = 64
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Palette.Peach).
		Background(styles.Palette.Mantle).
		Foreground(styles.Palette.Text).
		Padding(0, 1).
		Width(w - 2).
		Render(sb.String())
}
