package scenario

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of a scenario file.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return "scenario." + t.Name()
	}

	return reflector.Reflect(&Scenario{})
}
