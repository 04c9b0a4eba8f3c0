package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifequest/internal/engine"
	"lifequest/internal/storage"
	"lifequest/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	state *storage.State

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state *storage.State
	err   error
}

type completedMsg struct {
	id  int64
	res *engine.CompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.svc.State(m.ctx)
		return loadedMsg{state: st, err: err}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.state = msg.state
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.res.Applied {
			m.lastLog = "Already done."
			return m, m.loadCmd()
		}
		line := fmt.Sprintf("Completed #%d: +%d XP, +%d coins", msg.res.QuestID, msg.res.XPAwarded, msg.res.CoinsAwarded)
		for _, up := range msg.res.LevelUps {
			line += fmt.Sprintf(" · %s → L%d", up.StatName, up.Level)
		}
		m.lastLog = line
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.openQuests())-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			open := m.openQuests()
			if m.selected < 0 || m.selected >= len(open) {
				return m, nil
			}
			q := open[m.selected]
			m.lastLog = fmt.Sprintf("Completing #%d…", q.ID)
			return m, m.completeCmd(q.ID)
		}
	}
	return m, nil
}

// openQuests lists uncompleted quests, newest first, matching the selection
// cursor's order in the main panel.
func (m boardModel) openQuests() []storage.Quest {
	if m.state == nil {
		return nil
	}
	var open []storage.Quest
	for _, q := range engine.FilterQuests(m.state.Quests, engine.QuestFilter{Sort: engine.SortNewest}) {
		if !q.Completed {
			open = append(open, q)
		}
	}
	return open
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 34
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.state == nil {
		return "LifeQuest — loading…"
	}
	p := m.state.Profile
	return fmt.Sprintf("LifeQuest | %s | %d 🪙 | %d XP total", p.Name, p.TotalCoins, p.TotalXP)
}

func (m boardModel) renderSidebar() string {
	if m.state == nil {
		return "Stats\n\nLoading…"
	}
	lines := []string{"Character Sheet"}
	for _, s := range m.state.Stats {
		lines = append(lines, fmt.Sprintf("- %s L%d %s", shorten(s.Name, 14), s.Level, ui.Bar(s.CurrentXP, s.MaxXP, 10)))
	}
	lines = append(lines, "")
	lines = append(lines, "Projects")
	for _, p := range m.state.Projects {
		pct := engine.Progress(p)
		lines = append(lines, fmt.Sprintf("- %s %s %d%%", shorten(p.Name, 14), ui.Bar(pct, 100, 8), pct))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space/enter: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Quest Log")

	open := m.openQuests()
	if len(open) == 0 {
		out = append(out, "(no open quests — add one with `lq add`)")
		return strings.Join(out, "\n")
	}
	sel := m.selected
	if sel >= len(open) {
		sel = len(open) - 1
	}
	for i, q := range open {
		cursor := "  "
		if i == sel {
			cursor = "> "
		}
		origin := ""
		if q.AISuggested {
			origin = " 🤖"
		}
		out = append(out, fmt.Sprintf("%s#%d %s%s (%s, +%d XP, +%d 🪙)", cursor, q.ID, q.Name, origin, q.Type, q.XPReward, q.CoinReward))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func shorten(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
