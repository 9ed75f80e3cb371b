package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/adventurecore/engine"
	"github.com/nathoo/adventurecore/engine/save"
	"github.com/nathoo/adventurecore/internal/storage"
	"github.com/nathoo/adventurecore/types"
)

// rawLine stores an unstyled output line with its narration style, so we
// can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	style    types.Style
	isInput  bool // true for echoed player input
	isSystem bool // true for system messages
	isPrompt bool // true for a pending modal question
}

// Model is the Bubble Tea model for the AdventureCore TUI.
type Model struct {
	game  *engine.Game
	saves storage.SaveStore

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated narrative (unstyled, for re-wrapping)

	width     int
	height    int
	ready     bool
	quitting  bool
	pending   bool // a modal question awaits the next input line
	lastCmd   string
	hintIndex int
}

// gameOutputMsg carries output from the engine into the Update loop.
type gameOutputMsg struct {
	input    string // echoed player input (empty for intro)
	lines    []types.Line
	system   []string // meta-command output
	question string   // pending modal prompt
}

// New creates a TUI model wired to the given game and save store.
func New(g *engine.Game, saves storage.SaveStore) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		game:    g,
		saves:   saves,
		input:   ti,
		history: NewHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(g *engine.Game, saves storage.SaveStore) error {
	m := New(g, saves)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the intro and first look.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		result := m.game.Start()
		return gameOutputMsg{lines: result.Lines, question: result.Question}
	}
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	// While a question is pending, every line is its answer.
	if m.pending {
		m.pending = false
		result := m.game.Resume(input)
		m = m.appendOutput(gameOutputMsg{input: input, lines: result.Lines, question: result.Question})
		return m, nil
	}

	// Handle "again" / "g".
	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			m = m.appendOutput(gameOutputMsg{input: input, system: []string{"Nothing to repeat."}})
			return m, nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, system: output})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Game command.
	result := m.game.ProcessCommand(input)
	m = m.appendOutput(gameOutputMsg{input: input, lines: result.Lines, question: result.Question})
	return m, nil
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, isInput: true})
	}

	for _, line := range msg.lines {
		m.rawLines = append(m.rawLines, rawLine{text: line.Text, style: line.Style})
	}
	for _, line := range msg.system {
		m.rawLines = append(m.rawLines, rawLine{text: line, isSystem: true})
	}
	if msg.question != "" {
		m.pending = true
		m.rawLines = append(m.rawLines, rawLine{text: msg.question, isPrompt: true})
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		case rl.isPrompt:
			styled = append(styled, styleQuestion.Render(wrapped))
		default:
			styled = append(styled, renderNarration(wrapped, rl.style))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries. Preserves existing newlines within the text.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/save":
		return m.cmdSave(arg), false

	case "/load":
		return m.cmdLoad(arg), false

	case "/saves":
		return m.cmdSaves(), false

	case "/hint":
		return m.cmdHint(), false

	case "/help":
		return m.cmdHelp(), false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdSave(slot string) []string {
	if slot == "" {
		slot = "quicksave"
	}
	snap, err := m.game.Snapshot()
	if err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	data, err := save.Marshal(snap)
	if err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	if err := m.saves.Put(context.Background(), slot, data); err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	return []string{fmt.Sprintf("Game saved to %s.", slot)}
}

func (m *Model) cmdLoad(slot string) []string {
	if slot == "" {
		slot = "quicksave"
	}
	data, err := m.saves.Get(context.Background(), slot)
	if err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}
	snap, err := save.Unmarshal(data)
	if err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}
	if err := m.game.RestoreSnapshot(snap); err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}
	m.pending = false
	return []string{fmt.Sprintf("Game loaded from %s (turn %d).", slot, snap.Meta.Clock)}
}

func (m *Model) cmdSaves() []string {
	slots, err := m.saves.List(context.Background())
	if err != nil {
		return []string{fmt.Sprintf("Listing saves failed: %v", err)}
	}
	if len(slots) == 0 {
		return []string{"No saved games."}
	}
	return []string{"Saved games: " + strings.Join(slots, ", ")}
}

func (m *Model) cmdHint() []string {
	hints := m.game.World.Hints
	if len(hints) == 0 {
		return []string{"No hints for this adventure."}
	}
	h := hints[m.hintIndex%len(hints)]
	m.hintIndex++
	out := []string{h.Question}
	for _, answer := range h.Answers {
		out = append(out, "  "+answer)
	}
	return out
}

func (m *Model) cmdHelp() []string {
	return []string{
		"System:",
		"  /save [name]  — Save game (default: quicksave)",
		"  /load [name]  — Load game (default: quicksave)",
		"  /saves        — List saved games",
		"  /hint         — Show an adventure hint",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"",
		"Game commands:",
		"  look (l) / examine <thing> (x)",
		"  go <dir>              — Move (or just type n/s/e/w/u/d)",
		"  get/drop <item>       — Pick up or put down",
		"  ready <weapon>        — Choose your weapon",
		"  attack <monster>      — Fight",
		"  blast/heal/speed/power — Cast a spell",
		"  inventory (i), status, wait (z)",
		"  again (g)             — Repeat your last command",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
