package service

import (
	"context"
	"fmt"
)

const redisPort = 6379

// Redis is the key-value cache service.
type Redis struct {
	base
}

// NewRedis creates a Redis descriptor from stored configuration.
func NewRedis(configuration Configuration) Descriptor {
	return &Redis{base: newBase(
		identity{label: "Redis", image: "redis", group: GroupCaching},
		Configuration{"port": redisPort},
		configuration,
	)}
}

func (r *Redis) Definition() *Definition {
	cfg := r.Configuration()
	def := r.definition()
	def.Ports = []string{fmt.Sprintf("%s:%d", cfg.String("port"), redisPort)}
	def.Volumes = []string{r.PackageName() + "-data:/data"}
	return def
}

func (r *Redis) ConfigurationQuestions(ctx context.Context, tags TagLister) []Question {
	return []Question{
		r.versionQuestion(ctx, tags),
		r.inputQuestion("port", "Input redis port"),
	}
}
