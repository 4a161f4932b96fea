package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/printstack/printstack/color"
	"github.com/printstack/printstack/constant"
	"github.com/printstack/printstack/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered setting.
type Field struct {
	Key         string
	Value       any
	Description string

	check func(any) error
}

// Env returns the environment variable overriding the field.
func (f Field) Env() string {
	return strings.ToUpper(constant.Printstack + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Type names the Go type of the field value.
func (f Field) Type() string {
	return fmt.Sprintf("%T", f.Value)
}

// Parse converts command line arguments to the field type and validates the result.
func (f Field) Parse(raw ...string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: missing value", f.Key)
	}

	var (
		v   any
		err error
	)
	switch f.Value.(type) {
	case int:
		v, err = strconv.Atoi(raw[0])
	case bool:
		v, err = strconv.ParseBool(raw[0])
	case []string:
		v = raw
	default:
		v = raw[0]
	}
	if err != nil {
		return nil, fmt.Errorf("%s expects %s, got %q", f.Key, f.Type(), raw[0])
	}

	if f.check != nil {
		if err := f.check(v); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Key, err)
		}
	}

	return v, nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"key":         f.Key,
		"env":         f.Env(),
		"type":        f.Type(),
		"value":       viper.Get(f.Key),
		"default":     f.Value,
		"description": f.Description,
	})
}

// Pretty renders the field for the terminal.
func (f Field) Pretty() string {
	var b strings.Builder
	lo.Must0(fieldTemplate.Execute(&b, f))
	return b.String()
}

var fieldTemplate = lo.Must(template.New("field").Funcs(template.FuncMap{
	"key":   style.Fg(color.Purple),
	"label": style.Fg(color.Blue),
	"faint": style.Faint,
	"current": func(k string) string {
		return highlight(viper.Get(k))
	},
	"highlight": highlight,
}).Parse(`{{ key .Key }} {{ faint .Type }}
{{ faint .Description }}
  {{ label "value" }}    {{ current .Key }}
  {{ label "default" }}  {{ highlight .Value }}
  {{ label "env" }}      {{ .Env }}`))

func highlight(v any) string {
	switch v := v.(type) {
	case bool:
		return lo.Ternary(v, style.Fg(color.Green), style.Fg(color.Red))(strconv.FormatBool(v))
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(v))
	default:
		return style.Fg(color.Cyan)(fmt.Sprint(v))
	}
}
