package service

import (
	"errors"
	"fmt"
)

// ErrNoServiceOptions is returned when a group has no registered services.
var ErrNoServiceOptions = errors.New("no service options available")

// Factory creates a descriptor from stored configuration.
type Factory func(Configuration) Descriptor

// builtin lists every service px-valet knows about, in presentation order.
var builtin = []Factory{
	NewRedis,
	NewMySQL,
	NewMariaDB,
	NewMailHog,
}

// Option is a selectable service, keyed by image.
type Option struct {
	Image string
	Label string
}

// Registry maps image identifiers to descriptor factories.
type Registry struct {
	images    []string
	factories map[string]Factory
	prototype map[string]Descriptor
}

// NewRegistry returns a registry holding the built-in services. Extra
// factories are registered after them.
func NewRegistry(extra ...Factory) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		prototype: make(map[string]Descriptor),
	}
	for _, f := range append(append([]Factory{}, builtin...), extra...) {
		r.register(f)
	}
	return r
}

func (r *Registry) register(f Factory) {
	proto := f(nil)
	image := proto.Image()
	if _, exists := r.factories[image]; !exists {
		r.images = append(r.images, image)
	}
	r.factories[image] = f
	r.prototype[image] = proto
}

// CreateInstance builds the descriptor bound to image. It reports false for
// unknown images; callers skip those services.
func (r *Registry) CreateInstance(image string, configuration Configuration) (Descriptor, bool) {
	f, ok := r.factories[image]
	if !ok {
		return nil, false
	}
	return f(configuration), true
}

// ServiceOptions lists registered services, restricted to group unless it is
// empty.
func (r *Registry) ServiceOptions(group Group) []Option {
	var options []Option
	for _, image := range r.images {
		proto := r.prototype[image]
		if group != "" && proto.Group() != group {
			continue
		}
		options = append(options, Option{Image: image, Label: proto.Label()})
	}
	return options
}

// RequireOptions is ServiceOptions that fails when the group is empty.
func (r *Registry) RequireOptions(group Group) ([]Option, error) {
	options := r.ServiceOptions(group)
	if len(options) == 0 {
		return nil, fmt.Errorf("%s: %w", group, ErrNoServiceOptions)
	}
	return options, nil
}
