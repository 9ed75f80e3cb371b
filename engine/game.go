// Package engine implements the rules engine: the turn lifecycle, the
// command set, combat resolution, and the event-hook dispatch that lets
// each adventure override default behavior. The engine is single-threaded
// and turn-synchronous; one command is processed end-to-end before the
// next is accepted.
package engine

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/nathoo/adventurecore/engine/dice"
	"github.com/nathoo/adventurecore/engine/parser"
	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/types"
)

// State is the orchestrator's lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateIntro
	StateActive
	StateWon
	StateDied
)

// Result is the output of one processed command (or resume). When
// Question is non-empty the turn is suspended awaiting Resume.
type Result struct {
	Lines    []types.Line
	Question string
	State    State
}

// modal is a suspended turn awaiting one free-text answer.
type modal struct {
	prompt   string
	onAnswer func(answer string)
}

// Game owns the world, the roll source, the hook registry, and the turn
// state machine. It is an explicit context object: nothing here is global,
// so multiple sessions can coexist in one process.
type Game struct {
	World *world.World
	Dice  dice.Roller
	Hooks *Hooks
	Log   *slog.Logger

	state      State
	inBattle   bool
	skipBattle bool // set after a successful move; movement must not draw counter-attacks
	clock      int

	speedTimer int // remaining turns of the speed spell

	out      Buffer
	commands []*command
	verbs    map[string]string // verb → command name
	pending  *modal
}

// New wires a game around a built world and a roll source.
func New(w *world.World, roller dice.Roller, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	g := &Game{
		World: w,
		Dice:  roller,
		Hooks: &Hooks{},
		Log:   log,
		state: StateUninitialized,
		verbs: map[string]string{},
	}
	g.registerBuiltins()
	return g
}

// State returns the current lifecycle state.
func (g *Game) State() State { return g.state }

// InBattle reports whether hostile monsters are engaged.
func (g *Game) InBattle() bool { return g.inBattle }

// Clock returns the number of completed turns.
func (g *Game) Clock() int { return g.clock }

// SpeedActive reports whether the speed spell is running.
func (g *Game) SpeedActive() bool { return g.speedTimer > 0 }

// Out exposes the narration buffer to commands and hooks.
func (g *Game) Out() *Buffer { return &g.out }

// Start fires the intro, the start hook, and the first room description,
// moving the state machine to active.
func (g *Game) Start() Result {
	if g.state != StateUninitialized {
		return g.result()
	}
	g.state = StateIntro
	if intro := g.World.Adventure.Intro; intro != "" {
		g.out.Styled(intro, types.StyleSpecial)
	}
	g.hookStart()
	g.state = StateActive
	g.World.Refresh()
	g.describeSurroundings()
	return g.result()
}

// ProcessCommand runs one full turn for a line of player input.
func (g *Game) ProcessCommand(input string) Result {
	if g.pending != nil {
		// Suspended on a modal question; only Resume can proceed.
		return Result{Question: g.pending.prompt, State: g.state}
	}
	switch g.state {
	case StateUninitialized, StateIntro:
		return g.Start()
	case StateWon, StateDied:
		g.out.Say("The adventure is over.")
		return g.result()
	}

	res := parser.Resolve(g.verbList(), input)
	switch {
	case res.Ambiguous():
		g.out.Sayf("Do you mean %s?", orList(res.Candidates))
		return g.result()
	case !res.Matched():
		g.out.Say("I don't understand that. Type a command, like LOOK or GO NORTH.")
		return g.result()
	}

	cmd := g.commandNamed(g.verbs[res.Verb])
	if err := cmd.run(g, res.Verb, res.Arg); err != nil {
		ce, ok := asCommandError(err)
		if !ok {
			// Programming error: propagate, this is not a game rule.
			panic(err)
		}
		// Domain violation: narrate, end the turn without a clock tick.
		g.out.Say(ce.Message)
		return g.result()
	}

	if g.pending != nil {
		// The command asked a modal question; the turn completes in Resume.
		return Result{Lines: g.out.Drain(), Question: g.pending.prompt, State: g.state}
	}
	g.advanceTurn()
	return g.result()
}

// Ask suspends the current turn on a modal question. The host collects an
// answer and calls Resume; the engine never blocks waiting for it.
func (g *Game) Ask(prompt string, onAnswer func(answer string)) {
	g.pending = &modal{prompt: prompt, onAnswer: onAnswer}
}

// Resume completes a turn suspended by Ask. A resume without a pending
// question is a no-op clock-only advance.
func (g *Game) Resume(answer string) Result {
	m := g.pending
	g.pending = nil
	if m != nil && m.onAnswer != nil {
		m.onAnswer(answer)
	}
	if g.pending != nil {
		// The answer handler asked a follow-up question.
		return Result{Lines: g.out.Drain(), Question: g.pending.prompt, State: g.state}
	}
	if g.state == StateActive {
		g.advanceTurn()
	}
	return g.result()
}

// PrintEffect prints an effect by id, in its authored style.
func (g *Game) PrintEffect(id int) {
	if e := g.World.Effects.Get(id); e != nil {
		g.out.Styled(e.Text, e.Style)
	}
}

// Win ends the adventure successfully.
func (g *Game) Win() {
	g.state = StateWon
}

// Die kills the player unless the death hook vetoes it. Death is
// terminal: the clock freezes and no further commands are accepted.
func (g *Game) Die() {
	p := g.World.Player
	if !g.hookDeath(p) {
		// Vetoed: the player survives at the brink.
		if p.Damage >= p.Hardiness {
			p.Damage = p.Hardiness - 1
		}
		return
	}
	g.out.Styled("You have died.", types.StyleDanger)
	g.state = StateDied
}

func (g *Game) result() Result {
	return Result{Lines: g.out.Drain(), State: g.state}
}

func (g *Game) verbList() []string {
	verbs := make([]string, 0, len(g.verbs))
	for v := range g.verbs {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}

func orList(items []string) string {
	up := make([]string, len(items))
	for i, s := range items {
		up[i] = strings.ToUpper(s)
	}
	if len(up) <= 1 {
		return strings.Join(up, "")
	}
	return strings.Join(up[:len(up)-1], ", ") + " or " + up[len(up)-1]
}

func pluralCount(n int, name string) string {
	if n == 1 {
		return name
	}
	return fmt.Sprintf("%d %ss", n, name)
}
