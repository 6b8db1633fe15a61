// Package loader reads the Lua settings file into Go structs at startup.
// The Lua VM is discarded after loading; zero Lua at runtime.
package loader

import (
	"errors"
	"fmt"
	"math"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Settings is the compiled content of a settings file. Zero values mean
// "not set"; HasSeed distinguishes an explicit seed of 0.
type Settings struct {
	Player   string
	Seed     int64
	HasSeed  bool
	Format   string
	LogLevel string
	Aliases  map[string]string
	Warnings []string
}

// rawAlias holds one alias pair before compilation.
type rawAlias struct {
	key   lua.LValue
	value lua.LValue
}

// knownKeys are the fields Settings accepts.
var knownKeys = map[string]bool{
	"player": true, "seed": true, "format": true, "log_level": true,
}

// getString returns a string field, whether it was present, and an error
// if it holds another type.
func getString(tbl *lua.LTable, key string) (string, bool, error) {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return "", false, nil
	}
	s, ok := v.(lua.LString)
	if !ok {
		return "", true, fmt.Errorf("Settings.%s must be a string, got %s", key, v.Type())
	}
	return string(s), true, nil
}

// getInt returns an integral numeric field.
func getInt(tbl *lua.LTable, key string) (int64, bool, error) {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return 0, false, nil
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, true, fmt.Errorf("Settings.%s must be a number, got %s", key, v.Type())
	}
	f := float64(n)
	if f != math.Trunc(f) {
		return 0, true, fmt.Errorf("Settings.%s must be an integer, got %v", key, f)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, true, fmt.Errorf("Settings.%s is out of range, got %v", key, f)
	}
	return int64(f), true, nil
}

// compile converts the collected Lua tables into Settings.
func compile(coll *collector) (*Settings, error) {
	s := &Settings{Aliases: map[string]string{}}
	var errs []error

	if coll.calls > 1 {
		s.Warnings = append(s.Warnings, "Settings declared more than once; the last declaration wins")
	}

	if tbl := coll.settings; tbl != nil {
		var err error
		if s.Player, _, err = getString(tbl, "player"); err != nil {
			errs = append(errs, err)
		}
		if s.Seed, s.HasSeed, err = getInt(tbl, "seed"); err != nil {
			errs = append(errs, err)
		}
		if s.Format, _, err = getString(tbl, "format"); err != nil {
			errs = append(errs, err)
		}
		if s.LogLevel, _, err = getString(tbl, "log_level"); err != nil {
			errs = append(errs, err)
		}

		tbl.ForEach(func(k, _ lua.LValue) {
			ks, ok := k.(lua.LString)
			if !ok || !knownKeys[string(ks)] {
				s.Warnings = append(s.Warnings, fmt.Sprintf("unknown Settings key %s ignored", k.String()))
			}
		})
	}

	for _, a := range coll.aliases {
		key, kok := a.key.(lua.LString)
		val, vok := a.value.(lua.LString)
		if !kok || !vok {
			errs = append(errs, fmt.Errorf("alias %s = %s: both sides must be strings", a.key.String(), a.value.String()))
			continue
		}
		s.Aliases[strings.ToLower(string(key))] = strings.ToLower(string(val))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}
