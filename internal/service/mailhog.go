package service

import (
	"context"
	"fmt"
	"strings"
)

// mailhogPorts maps option keys to container ports, in prompt order.
var mailhogPorts = []struct {
	key       string
	container int
}{
	{"web_port", 8025},
	{"smtp_port", 1025},
}

// MailHog is the SMTP capture service.
type MailHog struct {
	base
}

// NewMailHog creates a MailHog descriptor from stored configuration.
func NewMailHog(configuration Configuration) Descriptor {
	defaults := Configuration{}
	for _, p := range mailhogPorts {
		defaults[p.key] = p.container
	}
	return &MailHog{base: newBase(
		identity{label: "MailHog", image: "mailhog/mailhog", group: GroupOther},
		defaults,
		configuration,
	)}
}

func (m *MailHog) Definition() *Definition {
	cfg := m.Configuration()
	def := m.definition()
	for _, p := range mailhogPorts {
		def.Ports = append(def.Ports, fmt.Sprintf("%s:%d", cfg.String(p.key), p.container))
	}
	return def
}

func (m *MailHog) ConfigurationQuestions(ctx context.Context, tags TagLister) []Question {
	questions := []Question{m.versionQuestion(ctx, tags)}
	for _, p := range mailhogPorts {
		name := strings.ReplaceAll(p.key, "_", " ")
		questions = append(questions, m.inputQuestion(p.key, "Input "+name))
	}
	return questions
}
