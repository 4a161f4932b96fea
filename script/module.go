package script

import (
	"github.com/printstack/printstack/layer"
	"github.com/printstack/printstack/printer"
	"github.com/samber/mo"
	lua "github.com/yuin/gopher-lua"
)

func newModule(L *lua.LState, p *printer.Printer) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"add": func(L *lua.LState) int {
			l := p.AddLayer(L.CheckString(1))
			L.Push(lua.LNumber(l.Number))
			return 1
		},
		"show": func(L *lua.LState) int {
			p.ShowProgress()
			return 0
		},
		"fail": func(L *lua.LState) int {
			rec := p.HandleError()
			L.Push(lua.LNumber(len(rec.Removed)))
			return 1
		},
		"undo": func(L *lua.LState) int {
			L.Push(layerValue(p.Undo()))
			return 1
		},
		"top": func(L *lua.LState) int {
			L.Push(layerValue(p.Top()))
			return 1
		},
		"size": func(L *lua.LState) int {
			L.Push(lua.LNumber(len(p.Layers())))
			return 1
		},
		"count": func(L *lua.LState) int {
			L.Push(lua.LNumber(p.Count()))
			return 1
		},
	})
}

func layerValue(o mo.Option[*layer.Layer]) lua.LValue {
	if l, ok := o.Get(); ok {
		return lua.LString(l.String())
	}
	return lua.LNil
}
