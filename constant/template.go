package constant

// Lua Module Identifiers - these constants define the globals exposed to printer scripts.
const (
	ScriptPrinterModule = "printer"
	ScriptMainFn        = "main"
)

// ScriptTemplate is a Go text/template for scaffolding new Lua printer scripts.
const ScriptTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author)) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
{{ $divider }}

local printer = require("printer")

-- Every call narrates to the console, just like the demo command.
printer.add("Solid Base")
printer.add("Bottom Infill")
printer.show()

-- Simulate a fault: the most recent layers are discarded.
local removed = printer.fail()
print("removed " .. removed .. " layers, resuming after layer " .. printer.count())

printer.add("Structural Support (Correction)")
printer.show()
`
