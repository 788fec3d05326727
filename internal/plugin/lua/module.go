package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/stringmod/internal/config"
	"github.com/dshills/stringmod/internal/transform"
)

// ModuleName is the name scripts require.
const ModuleName = "strmod"

// module implements the strmod functions. Defaults for the palette
// choices and custom enclosures come from cfg at call time.
type module struct {
	cfg func() *config.Config
}

func newModule(cfg func() *config.Config) *module {
	return &module{cfg: cfg}
}

func (m *module) loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"enclose":    m.enclose,
		"char_array": m.charArray,
		"word_array": m.wordArray,
		"words":      m.words,
		"apply":      m.apply,
		"actions":    m.actions,
		"config":     m.config,
	})

	palette := L.NewTable()
	for _, p := range transform.Palette {
		palette.Append(lua.LString(p.String()))
	}
	L.SetField(mod, "palette", palette)

	L.Push(mod)
	return 1
}

// enclose(s, open, close) -> string
func (m *module) enclose(L *lua.LState) int {
	s := L.CheckString(1)
	open := L.CheckString(2)
	closing := L.OptString(3, open)
	if s == "" {
		L.Push(lua.LString(""))
		return 1
	}
	L.Push(lua.LString(transform.Enclose(s, open, closing)))
	return 1
}

// char_array(s [, choice]) -> string, "" for an empty s
func (m *module) charArray(L *lua.LState) int {
	s := L.CheckString(1)
	p := m.pair(L, 2, m.cfg().RadioCharArray)
	if s == "" {
		L.Push(lua.LString(""))
		return 1
	}
	L.Push(lua.LString(transform.CharArray(s, p)))
	return 1
}

// word_array(s [, choice]) -> string, "" for an empty s
func (m *module) wordArray(L *lua.LState) int {
	s := L.CheckString(1)
	p := m.pair(L, 2, m.cfg().RadioWordArray)
	if s == "" {
		L.Push(lua.LString(""))
		return 1
	}
	L.Push(lua.LString(transform.WordArray(s, p)))
	return 1
}

// words(s) -> table
func (m *module) words(L *lua.LState) int {
	s := L.CheckString(1)
	t := L.NewTable()
	for _, w := range transform.Words(s) {
		t.Append(lua.LString(w))
	}
	L.Push(t)
	return 1
}

// apply(action, s) -> string or nil for an empty selection
func (m *module) apply(L *lua.LState) int {
	name := L.CheckString(1)
	s := L.CheckString(2)

	action, err := transform.ParseAction(name)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	out, ok, err := transform.Apply(action, s, m.cfg().Options())
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(out))
	return 1
}

// actions() -> table of action names
func (m *module) actions(L *lua.LState) int {
	t := L.NewTable()
	for _, a := range transform.Actions {
		t.Append(lua.LString(a.String()))
	}
	L.Push(t)
	return 1
}

// config() -> table keyed by configuration key
func (m *module) config(L *lua.LState) int {
	cfg := m.cfg()
	t := L.NewTable()
	for _, k := range config.Keys() {
		switch k {
		case config.KeyRadioCharArray:
			t.RawSetString(k.String(), lua.LNumber(cfg.RadioCharArray))
		case config.KeyRadioWordArray:
			t.RawSetString(k.String(), lua.LNumber(cfg.RadioWordArray))
		default:
			v, _ := cfg.Get(k)
			t.RawSetString(k.String(), lua.LString(v))
		}
	}
	L.Push(t)
	return 1
}

// pair reads an optional palette choice at argument n.
func (m *module) pair(L *lua.LState, n, def int) transform.Pair {
	p, err := transform.PairAt(L.OptInt(n, def))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return p
}
