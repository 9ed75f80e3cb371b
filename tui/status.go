package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// current room, the player's condition, gold, and turn count.
func (m Model) renderStatusBar() string {
	w := m.game.World
	p := w.Player

	roomName := "???"
	if room := w.PlayerRoom(); room != nil {
		roomName = room.Name
	}

	left := fmt.Sprintf(" %s | HD %d/%d", roomName, p.Hardiness-p.Damage, p.Hardiness)
	if m.game.InBattle() {
		left += " | BATTLE"
	}
	right := fmt.Sprintf("Gold: %d | T:%d ", p.Gold, m.game.Clock())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
