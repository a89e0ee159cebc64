package service

import (
	"context"
	"fmt"
	"strings"
)

// DefaultTag is the image tag used when no version is configured.
const DefaultTag = "latest"

const restartAlways = "always"

// Descriptor describes one infrastructure service that can be added to a
// project manifest.
type Descriptor interface {
	Label() string
	Image() string
	Group() Group
	PackageName() string

	// DefaultConfiguration returns the baseline options of the service.
	DefaultConfiguration() Configuration
	// Configuration returns the runtime options merged over the defaults.
	Configuration() Configuration
	// Definition returns the manifest fragment for the service.
	Definition() *Definition
	// TemplateDirectory returns a directory of extra files mirrored next to
	// the manifest, or "" when the service has none.
	TemplateDirectory() string
	// ConfigurationQuestions returns the options to collect, in prompt order.
	ConfigurationQuestions(ctx context.Context, tags TagLister) []Question
}

// PackageName derives the short package name from an image reference: the
// part after the last slash, or the whole reference.
func PackageName(image string) string {
	if idx := strings.LastIndex(image, "/"); idx != -1 {
		return image[idx+1:]
	}
	return image
}

type identity struct {
	label string
	image string
	group Group
}

func (i identity) Label() string       { return i.label }
func (i identity) Image() string       { return i.image }
func (i identity) Group() Group        { return i.group }
func (i identity) PackageName() string { return PackageName(i.image) }

// base carries what every descriptor shares: identity, its own defaults and
// the runtime configuration it was created with.
type base struct {
	identity
	defaults      Configuration
	configuration Configuration
}

func newBase(id identity, defaults, configuration Configuration) base {
	return base{identity: id, defaults: defaults, configuration: configuration}
}

func (b base) DefaultConfiguration() Configuration {
	return Configuration{"version": DefaultTag}.Merge(b.defaults)
}

func (b base) Configuration() Configuration {
	return b.DefaultConfiguration().Merge(b.configuration)
}

func (b base) TemplateDirectory() string {
	return ""
}

func (b base) definition() *Definition {
	cfg := b.Configuration()
	version := cfg.String("version")
	if version == "" {
		version = DefaultTag
	}
	return &Definition{
		Image:         fmt.Sprintf("%s:%s", b.image, version),
		Restart:       restartAlways,
		ContainerName: b.PackageName(),
	}
}

func (b base) versionQuestion(ctx context.Context, tags TagLister) Question {
	var options []string
	if tags != nil {
		// A failed lookup leaves the choice empty and the prompt falls back
		// to free input.
		options, _ = tags.Tags(ctx, b.image)
	}
	return Question{
		Key:      "version",
		Prompt:   fmt.Sprintf("Select %s release tag", b.image),
		Default:  b.Configuration().String("version"),
		Required: true,
		Choice:   true,
		Options:  options,
	}
}

func (b base) inputQuestion(key, prompt string) Question {
	return Question{
		Key:      key,
		Prompt:   prompt,
		Default:  b.Configuration().String(key),
		Required: true,
	}
}
