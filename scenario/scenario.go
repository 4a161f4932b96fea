// Package scenario drives a printer through a declarative list of steps.
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/printstack/printstack/constant"
	"github.com/printstack/printstack/filesystem"
	"github.com/printstack/printstack/log"
	"github.com/printstack/printstack/printer"
	"github.com/printstack/printstack/version"
	"github.com/samber/lo"
)

// Actions understood by Play.
const (
	ActionAdd  = "add"
	ActionShow = "show"
	ActionFail = "fail"
	ActionUndo = "undo"
	ActionNote = "note"
)

// Actions lists every supported step action.
var Actions = []string{ActionAdd, ActionShow, ActionFail, ActionUndo, ActionNote}

// Step is a single instruction for the printer.
type Step struct {
	Action  string `json:"action" jsonschema:"enum=add,enum=show,enum=fail,enum=undo,enum=note,description=What the printer should do."`
	Content string `json:"content,omitempty" jsonschema:"description=Layer content for add or text for note."`
}

// Scenario is a named sequence of steps.
type Scenario struct {
	Name     string `json:"name" jsonschema:"description=Human readable name of the scenario."`
	Requires string `json:"requires,omitempty" jsonschema:"description=Minimum printstack version able to play the scenario."`
	Steps    []Step `json:"steps" jsonschema:"minItems=1"`
}

// ErrNoSteps is returned for a scenario without steps.
var ErrNoSteps = errors.New("scenario has no steps")

// Validate checks that every step is playable.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return ErrNoSteps
	}

	if s.Requires != "" {
		cmp, err := version.Compare(s.Requires, constant.Version)
		if err != nil {
			return fmt.Errorf("requires: %w", err)
		}
		if cmp > 0 {
			return fmt.Errorf("scenario requires %s %s or newer, this is %s", constant.Printstack, s.Requires, constant.Version)
		}
	}

	for i, step := range s.Steps {
		if !lo.Contains(Actions, step.Action) {
			return fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
		}

		if step.Action == ActionAdd && step.Content == "" {
			return fmt.Errorf("step %d: add requires content", i+1)
		}
	}

	return nil
}

// Play executes the steps in order against p, writing notes to out.
func (s *Scenario) Play(p *printer.Printer, out io.Writer) error {
	if err := s.Validate(); err != nil {
		return err
	}

	log.WithField("scenario", s.Name).Info("playing scenario")

	for _, step := range s.Steps {
		switch step.Action {
		case ActionAdd:
			p.AddLayer(step.Content)
		case ActionShow:
			p.ShowProgress()
		case ActionFail:
			p.HandleError()
		case ActionUndo:
			p.Undo()
		case ActionNote:
			if _, err := fmt.Fprintln(out, step.Content); err != nil {
				return err
			}
		}
	}

	return nil
}

// Parse decodes and validates a JSON scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads a JSON scenario file through the filesystem facade.
func Load(path string) (*Scenario, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	return Parse(data)
}
