package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Hi-score layout constants
const (
	maxScores      = 50 // Rows loaded into the table
	tableChrome    = 8  // Rows taken by title, border and help
	minTableHeight = 3
)

// hiScoresKeys are the bindings shown under the table.
type hiScoresKeys struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k hiScoresKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

func (k hiScoresKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newHiScoresKeys(km KeyMap) hiScoresKeys {
	return hiScoresKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys(km.Fire.Keys()...),
			key.WithHelp(km.Fire.Help().Key, "back"),
		),
		Quit: km.Quit,
	}
}

// HiScoresView renders the process hi-score table.
type HiScoresView struct {
	store  *storage.Store
	scores []storage.ScoreEntry
	err    error
	table  table.Model
	help   help.Model
	keys   hiScoresKeys
	width  int
	height int
}

// NewHiScoresView creates a view over store. A nil store shows an empty table.
func NewHiScoresView(store *storage.Store, km KeyMap, width, height int) *HiScoresView {
	v := &HiScoresView{
		store:  store,
		help:   help.New(),
		keys:   newHiScoresKeys(km),
		width:  width,
		height: height,
	}
	v.table = v.createTable()
	return v
}

// createTable creates a new table sized to the current view.
func (v *HiScoresView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(v.height-tableChrome, minTableHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads the table from the store.
func (v *HiScoresView) Refresh() {
	v.scores, v.err = nil, nil
	if v.store != nil {
		v.scores, v.err = v.store.TopScores(maxScores)
	}

	rows := make([]table.Row, len(v.scores))
	for i, s := range v.scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Format("15:04:05"),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// Resize adapts the table to a new terminal size.
func (v *HiScoresView) Resize(width, height int) {
	v.width, v.height = width, height
	v.table = v.createTable()
	v.Refresh()
	v.help.Width = width
}

// Update scrolls the table.
func (v *HiScoresView) Update(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, v.keys.Up, v.keys.Down) {
		return nil
	}
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

// View renders the table with a title and help line.
func (v *HiScoresView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), v.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(v.renderTableContent()), v.width))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(v.help.View(v.keys)))

	return b.String()
}

// renderTableContent renders the table or a placeholder.
func (v *HiScoresView) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case v.err != nil:
		return emptyStyle.Render("Scores unavailable: " + v.err.Error())
	case len(v.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nFinish a run to set one!")
	}
	return v.table.View()
}

// centerText pads every line of a block so it sits centered in width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
