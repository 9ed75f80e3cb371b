package engine

// command is one verb handler. Every verb in verbs maps to it in the
// parser table; the first verb is the canonical name shown to the player.
type command struct {
	name  string
	verbs []string
	run   func(g *Game, verb, arg string) error
}

// RegisterCommand adds a command to the verb table. Adventures register
// custom commands through the loader; a custom verb shadows a built-in
// one, which is how adventures override default verbs.
func (g *Game) RegisterCommand(name string, verbs []string, run func(g *Game, verb, arg string) error) {
	cmd := &command{name: name, verbs: verbs, run: run}
	g.commands = append(g.commands, cmd)
	for _, v := range verbs {
		g.verbs[v] = name
	}
}

func (g *Game) commandNamed(name string) *command {
	// Later registrations shadow earlier ones.
	for i := len(g.commands) - 1; i >= 0; i-- {
		if g.commands[i].name == name {
			return g.commands[i]
		}
	}
	return nil
}

func (g *Game) registerBuiltins() {
	g.RegisterCommand("go", []string{
		"go", "enter",
		"north", "south", "east", "west",
		"northeast", "northwest", "southeast", "southwest",
		"up", "down",
		"n", "s", "e", "w", "ne", "nw", "se", "sw", "u", "d",
	}, cmdGo)
	g.RegisterCommand("look", []string{"look", "l", "examine", "x"}, cmdLook)
	g.RegisterCommand("get", []string{"get", "take", "grab"}, cmdGet)
	g.RegisterCommand("drop", []string{"drop"}, cmdDrop)
	g.RegisterCommand("put", []string{"put", "insert"}, cmdPut)
	g.RegisterCommand("remove", []string{"remove"}, cmdRemove)
	g.RegisterCommand("wear", []string{"wear", "don"}, cmdWear)
	g.RegisterCommand("ready", []string{"ready", "wield"}, cmdReady)
	g.RegisterCommand("attack", []string{"attack", "hit", "kill", "fight", "strike"}, cmdAttack)
	g.RegisterCommand("flee", []string{"flee", "run", "retreat"}, cmdFlee)
	g.RegisterCommand("give", []string{"give", "offer", "hand"}, cmdGive)
	g.RegisterCommand("request", []string{"request", "ask"}, cmdRequest)
	g.RegisterCommand("read", []string{"read"}, cmdRead)
	g.RegisterCommand("open", []string{"open"}, cmdOpen)
	g.RegisterCommand("close", []string{"close", "shut"}, cmdClose)
	g.RegisterCommand("eat", []string{"eat"}, cmdEat)
	g.RegisterCommand("drink", []string{"drink", "quaff"}, cmdDrink)
	g.RegisterCommand("light", []string{"light"}, cmdLight)
	g.RegisterCommand("free", []string{"free", "release"}, cmdFree)
	g.RegisterCommand("say", []string{"say"}, cmdSay)
	g.RegisterCommand("use", []string{"use"}, cmdUse)
	g.RegisterCommand("blast", []string{"blast"}, cmdCast)
	g.RegisterCommand("heal", []string{"heal"}, cmdCast)
	g.RegisterCommand("speed", []string{"speed"}, cmdCast)
	g.RegisterCommand("power", []string{"power"}, cmdCast)
	g.RegisterCommand("inventory", []string{"inventory", "i", "inv"}, cmdInventory)
	g.RegisterCommand("status", []string{"status"}, cmdStatus)
	g.RegisterCommand("wait", []string{"wait", "z"}, cmdWait)
}
