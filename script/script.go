// Package script lets Lua programs drive a printer.
//
// Scripts get a "printer" module (also available as a global):
//
//	printer.add(content)  -> number of the new layer
//	printer.show()
//	printer.fail()        -> number of layers removed
//	printer.undo()        -> removed layer as a string, or nil
//	printer.top()         -> top layer as a string, or nil
//	printer.size()        -> number of layers on the stack
//	printer.count()       -> number of the most recent layer
//
// If the script defines a global main function it is called after the chunk runs.
package script

import (
	"fmt"
	"io"
	"strings"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/printstack/printstack/constant"
	"github.com/printstack/printstack/internal/luavm"
	"github.com/printstack/printstack/key"
	"github.com/printstack/printstack/log"
	"github.com/printstack/printstack/printer"
	"github.com/printstack/printstack/util"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
)

// Run executes the Lua script at path against p. Output of Lua's print goes to out.
func Run(path string, p *printer.Printer, out io.Writer) error {
	L := newState(p, out)
	defer L.Close()

	log.WithField("script", path).Info("running script")

	if err := luavm.PreCompileAndLoad(L, path); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}

	return callMain(L)
}

// RunString executes src as a script named name.
func RunString(src, name string, p *printer.Printer, out io.Writer) error {
	L := newState(p, out)
	defer L.Close()

	proto, err := luavm.Compile([]byte(src), name)
	if err != nil {
		return err
	}

	L.Push(L.NewFunctionFromProto(proto))
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}

	return callMain(L)
}

// Remove deletes the script at path and drops its compiled form.
func Remove(path string) error {
	if err := util.Delete(path); err != nil {
		return err
	}

	luavm.Forget(path)
	return nil
}

func newState(p *printer.Printer, out io.Writer) *lua.LState {
	L := lua.NewState()
	if viper.GetBool(key.ScriptPreloadLibs) {
		libs.Preload(L)
	}

	L.PreloadModule(constant.ScriptPrinterModule, func(L *lua.LState) int {
		L.Push(newModule(L, p))
		return 1
	})
	L.SetGlobal(constant.ScriptPrinterModule, newModule(L, p))
	L.SetGlobal("print", L.NewFunction(printTo(out)))

	return L
}

func callMain(L *lua.LState) error {
	fn := L.GetGlobal(constant.ScriptMainFn)
	if fn.Type() != lua.LTFunction {
		return nil
	}

	return L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	})
}

func printTo(out io.Writer) lua.LGFunction {
	return func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		_, _ = fmt.Fprintln(out, strings.Join(parts, "\t"))
		return 0
	}
}
