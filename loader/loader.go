package loader

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua declarations during file execution.
type collector struct {
	settings *lua.LTable
	aliases  []rawAlias
	calls    int
}

// Load executes a settings file in a sandboxed VM, compiles the declared
// tables into Settings, and validates them. The Lua VM is discarded after
// loading.
func Load(path string) (*Settings, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return run(path, func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

// LoadString is Load for an in-memory chunk. name labels errors.
func LoadString(name, chunk string) (*Settings, error) {
	return run(name, func(L *lua.LState) error {
		return L.DoString(chunk)
	})
}

func run(name string, exec func(*lua.LState) error) (*Settings, error) {
	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	if err := exec(L); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}

	s, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}

	if err := validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the VM or defeat seeding.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "require", "module",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
			tbl.RawSetString("random", lua.LNil)
		}
	}
}
