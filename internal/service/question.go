package service

import (
	"errors"
	"strings"
)

// ErrRequired is returned when a required question gets an empty answer.
var ErrRequired = errors.New("this field is required")

// Question describes one configuration option to collect from the user.
type Question struct {
	Key      string
	Prompt   string
	Default  string
	Required bool
	// Hidden questions are secrets and must not be echoed.
	Hidden bool
	// Choice questions pick from Options. With no options they degrade to
	// free input.
	Choice  bool
	Options []string
}

// Title returns the prompt with its default appended.
func (q Question) Title() string {
	if q.Default == "" {
		return q.Prompt
	}
	return q.Prompt + " [" + q.Default + "]"
}

// HasOptions reports whether the question can be shown as a selection.
func (q Question) HasOptions() bool {
	return q.Choice && len(q.Options) > 0
}

// Validate checks an answer against the question's constraints.
func (q Question) Validate(answer string) error {
	if q.Required && strings.TrimSpace(answer) == "" {
		return ErrRequired
	}
	return nil
}
