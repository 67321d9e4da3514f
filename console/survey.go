// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package console

import (
	"github.com/AlecAivazis/survey/v2"
)

type surveyConsole struct {
	message string
}

// Survey returns a Console backed by an interactive terminal prompt.
// Print sets the message of the next prompt instead of writing anything
// directly; ReadLine runs the prompt and returns the answer.
func Survey() Console {
	return &surveyConsole{}
}

func (c *surveyConsole) Print(msg string) {
	c.message = msg
}

func (c *surveyConsole) ReadLine() (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: c.message}, &answer)
	c.message = ""
	if err != nil {
		return "", err
	}
	return answer, nil
}
