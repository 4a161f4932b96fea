package mini

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// errInterrupt is returned when the user aborts a prompt with ctrl+c.
var errInterrupt = errors.New("interrupt")

// prompter asks the user questions.
type prompter interface {
	Select(message string, options []string) (string, error)
	Input(message string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Select{
		Message: message,
		Options: options,
	}, &answer)
	return answer, normalize(err)
}

func (surveyPrompter) Input(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{
		Message: message,
	}, &answer)
	return answer, normalize(err)
}

func normalize(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errInterrupt
	}
	return err
}
