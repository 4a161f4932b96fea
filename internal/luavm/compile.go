// Package luavm compiles and executes Lua chunks, caching bytecode per script path.
package luavm

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/printstack/printstack/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

// Compile parses src into a reusable function prototype.
func Compile(src []byte, name string) (*lua.FunctionProto, error) {
	chunk, err := parse.Parse(bytes.NewReader(src), name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}

	return proto, nil
}

// PreCompileAndLoad executes the script at path within L, reusing the cached prototype when there is one.
func PreCompileAndLoad(L *lua.LState, path string) error {
	if cached, ok := bytecodeCache.Load(path); ok {
		return exec(L, cached.(*lua.FunctionProto))
	}

	src, err := filesystem.ReadFile(path)
	if err != nil {
		return err
	}

	proto, err := Compile(src, path)
	if err != nil {
		return err
	}

	bytecodeCache.Store(path, proto)
	return exec(L, proto)
}

// Forget drops the cached prototype for path.
func Forget(path string) {
	bytecodeCache.Delete(path)
}

func exec(L *lua.LState, proto *lua.FunctionProto) error {
	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}
