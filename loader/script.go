package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/adventurecore/engine"
)

// ScriptHost owns the sandboxed Lua VM for one game session. Unlike the
// world bundle, which is loaded once and discarded, the VM lives as long
// as the game: registered hook closures are called back on every turn.
type ScriptHost struct {
	L    *lua.LState
	game *engine.Game
}

// NewScriptHost creates the sandboxed VM and registers the scripting API
// against the given game.
func NewScriptHost(g *engine.Game) *ScriptHost {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	h := &ScriptHost{L: L, game: g}
	h.registerAPI()
	return h
}

// RunFile executes one adventure script. Scripts run for their side
// effects: calls to on() and add_command() wire the adventure's behavior
// into the engine.
func (h *ScriptHost) RunFile(path string) error {
	if err := h.L.DoFile(path); err != nil {
		return fmt.Errorf("executing %s: %w", path, err)
	}
	return nil
}

// Close shuts down the VM. The game must not fire hooks after this.
func (h *ScriptHost) Close() {
	h.L.Close()
}

// call invokes a Lua hook function with protection. A script error is a
// content bug, not an engine failure: it is logged and the hook's default
// outcome applies.
func (h *ScriptHost) call(fn *lua.LFunction, nret int, args ...lua.LValue) []lua.LValue {
	if err := h.L.CallByParam(lua.P{Fn: fn, NRet: nret, Protect: true}, args...); err != nil {
		h.game.Log.Error("adventure script error", "error", err)
		return nil
	}
	rets := make([]lua.LValue, nret)
	for i := nret - 1; i >= 0; i-- {
		rets[i] = h.L.Get(-1)
		h.L.Pop(1)
	}
	return rets
}

// truthy applies the veto convention to a hook's return values: only an
// explicit false vetoes; no return value or nil proceeds.
func truthy(rets []lua.LValue) bool {
	return len(rets) == 0 || rets[0] != lua.LFalse
}

// openSafeLibs opens only the side-effect-free Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox strips globals that reach the host: file loading, raw table
// access, and math.randomseed (all rolls must come from the engine's
// roller or replays break).
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
	if mathTbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		mathTbl.RawSetString("randomseed", lua.LNil)
		mathTbl.RawSetString("random", lua.LNil)
	}
}
