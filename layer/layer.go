// Package layer defines the record a printer deposits for every printed layer.
package layer

import "fmt"

// Layer is a single printed slice of a model.
type Layer struct {
	Number  int    `json:"number" jsonschema:"description=Position of the layer in the print, starting from 1."`
	Content string `json:"content" jsonschema:"description=What was printed in this layer."`
}

// New creates a layer with the given number and content.
func New(number int, content string) *Layer {
	return &Layer{Number: number, Content: content}
}

func (l *Layer) String() string {
	return fmt.Sprintf("Layer %d: %s", l.Number, l.Content)
}
