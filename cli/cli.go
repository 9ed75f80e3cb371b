// Package cli provides terminal I/O, meta-command dispatch, and the
// modal-question prompt loop for the AdventureCore engine.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/adventurecore/engine"
	"github.com/nathoo/adventurecore/engine/save"
	"github.com/nathoo/adventurecore/internal/storage"
	"github.com/nathoo/adventurecore/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Game      *engine.Game
	Saves     storage.SaveStore
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)

	lastCmd   string // for "again"/"g" repeat
	pending   bool   // a modal question is awaiting an answer
	hintIndex int
}

// New creates a CLI wired to the given game and save store.
func New(g *engine.Game, saves storage.SaveStore) *CLI {
	return &CLI{
		Game:  g,
		Saves: saves,
		In:    os.Stdin,
		Out:   os.Stdout,
	}
}

// Run starts the game loop: prompt, input, dispatch, output, until the
// adventure ends or the player quits.
func (c *CLI) Run() {
	c.printResult(c.Game.Start())

	scanner := bufio.NewScanner(c.In)
	for {
		if c.Game.State() == engine.StateWon || c.Game.State() == engine.StateDied {
			return
		}

		c.print("> ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// While a question is pending, every line is its answer.
		if c.pending {
			c.pending = false
			c.printResult(c.Game.Resume(input))
			continue
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		c.printResult(c.Game.ProcessCommand(input))
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/saves":
		c.cmdSaves()

	case "/hint":
		c.cmdHint()

	case "/help":
		c.cmdHelp()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(slot string) {
	if slot == "" {
		slot = "quicksave"
	}
	snap, err := c.Game.Snapshot()
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	data, err := save.Marshal(snap)
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	if err := c.Saves.Put(context.Background(), slot, data); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Game saved to %s.", slot))
}

func (c *CLI) cmdLoad(slot string) {
	if slot == "" {
		slot = "quicksave"
	}
	data, err := c.Saves.Get(context.Background(), slot)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	snap, err := save.Unmarshal(data)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	if err := c.Game.RestoreSnapshot(snap); err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	c.pending = false
	c.printSystem(fmt.Sprintf("Game loaded from %s (turn %d).", slot, snap.Meta.Clock))
	c.printResult(c.Game.ProcessCommand("look"))
}

func (c *CLI) cmdSaves() {
	slots, err := c.Saves.List(context.Background())
	if err != nil {
		c.printSystem(fmt.Sprintf("Listing saves failed: %v", err))
		return
	}
	if len(slots) == 0 {
		c.printSystem("No saved games.")
		return
	}
	c.printSystem("Saved games: " + strings.Join(slots, ", "))
}

// cmdHint cycles through the adventure's authored hints.
func (c *CLI) cmdHint() {
	hints := c.Game.World.Hints
	if len(hints) == 0 {
		c.printSystem("No hints for this adventure.")
		return
	}
	h := hints[c.hintIndex%len(hints)]
	c.hintIndex++
	c.printLine(h.Question)
	for _, answer := range h.Answers {
		c.printLine("  " + answer)
	}
}

func (c *CLI) cmdHelp() {
	help := []string{
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
		"  wear/remove <armor>   — Put on or take off",
		"  attack <monster>      — Fight",
		"  flee [dir]            — Run away",
		"  give <item> to <name> / request <item> from <name>",
		"  open/close, read, eat, drink, light, free, use, say",
		"  blast/heal/speed/power — Cast a spell",
		"  inventory (i), status, wait (z)",
		"  again (g)             — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) printResult(result engine.Result) {
	for _, line := range result.Lines {
		c.printStyled(line)
	}
	if result.Question != "" {
		c.pending = true
		c.printLine(result.Question)
	}
}

// printStyled renders one narration line. The CLI is plain text; styles
// only control spacing here, the TUI gives them color.
func (c *CLI) printStyled(line types.Line) {
	if line.Style == types.StyleNoSpace {
		c.printLine(line.Text)
		return
	}
	c.printLine(wrap(line.Text, 78))
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

// wrap breaks text at word boundaries to the given width.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
