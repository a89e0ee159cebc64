package wizard

import (
	"github.com/charmbracelet/huh"
)

// HuhAsker asks through interactive terminal forms.
type HuhAsker struct{}

func (HuhAsker) Input(title, def string, hidden bool, validate func(string) error) (string, error) {
	value := def
	input := huh.NewInput().
		Title(title).
		Value(&value).
		Validate(validate)
	if hidden {
		input = input.EchoMode(huh.EchoModePassword)
	}
	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", err
	}
	return value, nil
}

func (HuhAsker) Confirm(title string, def bool) (bool, error) {
	value := def
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Value(&value),
	)).Run()
	return value, err
}

func (HuhAsker) Choose(title string, choices []Choice, def string) (string, error) {
	value := def
	options := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		options = append(options, huh.NewOption(c.Label, c.Value).Selected(c.Value == def))
	}
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(&value),
	)).Run()
	return value, err
}

// Select picks one of options by value.
func (h HuhAsker) Select(title string, options []string, def string) (string, error) {
	choices := make([]Choice, 0, len(options))
	for _, o := range options {
		choices = append(choices, Choice{Label: o, Value: o})
	}
	return h.Choose(title, choices, def)
}
