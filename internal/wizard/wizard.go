package wizard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Pr0ject-X/px-valet/internal/config"
	"github.com/Pr0ject-X/px-valet/internal/service"
	"github.com/Pr0ject-X/px-valet/internal/util"
)

// Choice is one selectable answer.
type Choice struct {
	Label string
	Value string
}

// Asker collects single answers from the user.
type Asker interface {
	Input(title, def string, hidden bool, validate func(string) error) (string, error)
	Confirm(title string, def bool) (bool, error)
	Choose(title string, choices []Choice, def string) (string, error)
}

// Flow collects the project configuration.
type Flow struct {
	Asker    Asker
	Registry *service.Registry
	Tags     service.TagLister
	// Project names the default first domain.
	Project string
}

func required(v string) error {
	return service.Question{Required: true}.Validate(v)
}

// Run asks for every setting, starting from current, and returns the new
// configuration. current is not modified.
func (f *Flow) Run(ctx context.Context, current *config.Config) (*config.Config, error) {
	next := *current

	appRoot, err := f.Asker.Input("Input the application root", current.AppRoot, false, required)
	if err != nil {
		return nil, err
	}
	next.AppRoot = appRoot

	if next.Domains, err = f.domains(current.Domains); err != nil {
		return nil, err
	}

	next.Services = map[service.Group][]config.ServiceEntry{}
	for _, group := range service.Groups() {
		entries, err := f.services(ctx, group, current.ServiceEntries(group))
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			next.Services[group] = entries
		}
	}
	return &next, nil
}

// domains asks for at least the existing number of domains, then offers to
// add more.
func (f *Flow) domains(existing []config.Domain) ([]config.Domain, error) {
	var out []config.Domain
	for i := 0; ; i++ {
		def := ""
		ssl := false
		if i < len(existing) {
			def, ssl = existing[i].Name, existing[i].SSL
		} else if i == 0 {
			def = util.NormalizeDomain(f.Project)
		}

		name, err := f.Asker.Input("Input the domain name", def, false, required)
		if err != nil {
			return nil, err
		}
		secure, err := f.Asker.Confirm("Enable SSL for domain?", ssl)
		if err != nil {
			return nil, err
		}
		out = append(out, config.Domain{Name: util.NormalizeDomain(name), SSL: secure})

		if i+1 < len(existing) {
			continue
		}
		more, err := f.Asker.Confirm("Add another domain?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}
	}
}

func (f *Flow) services(ctx context.Context, group service.Group, existing []config.ServiceEntry) ([]config.ServiceEntry, error) {
	options, err := f.Registry.RequireOptions(group)
	if err != nil {
		if group.Required() {
			return nil, err
		}
		return nil, nil
	}

	if !group.Required() && len(existing) == 0 {
		add, err := f.Asker.Confirm(fmt.Sprintf("Add %s services?", group), false)
		if err != nil {
			return nil, err
		}
		if !add {
			return nil, nil
		}
	}

	def := ""
	if len(existing) > 0 {
		def = existing[0].Image
	} else if len(options) == 1 {
		def = options[0].Image
	}
	choices := make([]Choice, 0, len(options))
	for _, o := range options {
		choices = append(choices, Choice{Label: o.Label, Value: o.Image})
	}

	image, err := f.Asker.Choose(fmt.Sprintf("Select the %s service", group), choices, def)
	if err != nil {
		return nil, err
	}

	var stored service.Configuration
	for _, e := range existing {
		if e.Image == image {
			stored = e.Configuration
		}
	}
	desc, ok := f.Registry.CreateInstance(image, stored)
	if !ok {
		return nil, fmt.Errorf("unknown service %q", image)
	}

	cfg, err := f.configure(ctx, desc)
	if err != nil {
		return nil, err
	}
	return []config.ServiceEntry{{Image: image, Configuration: cfg}}, nil
}

// configure asks the descriptor's questions. Answers to options whose
// default is numeric are stored as numbers.
func (f *Flow) configure(ctx context.Context, desc service.Descriptor) (service.Configuration, error) {
	defaults := desc.DefaultConfiguration()
	cfg := service.Configuration{}

	for _, q := range desc.ConfigurationQuestions(ctx, f.Tags) {
		var answer string
		var err error
		if q.HasOptions() {
			choices := make([]Choice, 0, len(q.Options))
			for _, o := range q.Options {
				choices = append(choices, Choice{Label: o, Value: o})
			}
			answer, err = f.Asker.Choose(q.Title(), choices, q.Default)
		} else {
			answer, err = f.Asker.Input(q.Title(), q.Default, q.Hidden, q.Validate)
		}
		if err != nil {
			return nil, err
		}

		if _, numeric := defaults[q.Key].(int); numeric {
			if n, err := strconv.Atoi(answer); err == nil {
				cfg[q.Key] = n
				continue
			}
		}
		cfg[q.Key] = answer
	}
	return cfg, nil
}
