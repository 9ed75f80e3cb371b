package engine

import (
	"fmt"

	"github.com/nathoo/adventurecore/types"
)

// Buffer accumulates the ordered narration lines of one turn. The
// presentation layer drains it through the turn Result; the engine only
// ever appends.
type Buffer struct {
	lines []types.Line
}

// Say appends a normal-styled line.
func (b *Buffer) Say(text string) { b.Styled(text, types.StyleNormal) }

// Sayf appends a formatted normal-styled line.
func (b *Buffer) Sayf(format string, args ...any) {
	b.Styled(fmt.Sprintf(format, args...), types.StyleNormal)
}

// Styled appends a line with an explicit style tag.
func (b *Buffer) Styled(text string, style types.Style) {
	b.lines = append(b.lines, types.Line{Text: text, Style: style})
}

// StyledF appends a formatted line with an explicit style tag.
func (b *Buffer) StyledF(style types.Style, format string, args ...any) {
	b.Styled(fmt.Sprintf(format, args...), style)
}

// Lines returns the accumulated lines.
func (b *Buffer) Lines() []types.Line { return b.lines }

// Drain returns the accumulated lines and resets the buffer.
func (b *Buffer) Drain() []types.Line {
	out := b.lines
	b.lines = nil
	return out
}
