package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the settings constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Settings { player = "...", seed = 42, ... }
	// A second call replaces the first.
	L.SetGlobal("Settings", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.settings = tbl
		coll.calls++
		return 0
	}))

	// Aliases { d = "quest_complete", ... }
	L.SetGlobal("Aliases", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		tbl.ForEach(func(k, v lua.LValue) {
			coll.aliases = append(coll.aliases, rawAlias{key: k, value: v})
		})
		return 0
	}))

	// Alias("d", "quest_complete")
	L.SetGlobal("Alias", L.NewFunction(func(L *lua.LState) int {
		word := L.CheckString(1)
		verb := L.CheckString(2)
		coll.aliases = append(coll.aliases, rawAlias{key: lua.LString(word), value: lua.LString(verb)})
		return 0
	}))
}
