package world

import "github.com/nathoo/adventurecore/types"

// Effect is a block of narrative text with a display style, printed on
// demand by id from rules code or adventure scripts. Pure data.
type Effect struct {
	ID    int
	Text  string
	Style types.Style
}

func newEffect(d types.EffectData) *Effect {
	style := d.Style
	if style == "" {
		style = types.StyleNormal
	}
	return &Effect{ID: d.ID, Text: d.Text, Style: style}
}
