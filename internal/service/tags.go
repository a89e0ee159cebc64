package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Pr0ject-X/px-valet/internal/logger"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
)

// DefaultHubURL is the registry base used for tag lookups.
const DefaultHubURL = "https://registry.hub.docker.com/v1/repositories/"

// TagLister returns the release tags published for an image.
type TagLister interface {
	Tags(ctx context.Context, image string) ([]string, error)
}

// TagError reports a failed tag lookup for a package.
type TagError struct {
	Image string
	Err   error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("unable to load the image tags for %s package: %v", e.Image, e.Err)
}

func (e *TagError) Unwrap() error {
	return e.Err
}

// ReleaseTags drops empty tags and tags containing a hyphen, which are
// pre-release or variant builds.
func ReleaseTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if t == "" || strings.Contains(t, "-") {
			continue
		}
		out = append(out, t)
	}
	return out
}

// HubTagLister queries GET <base>/<image>/tags and expects a JSON list of
// objects with a name field.
type HubTagLister struct {
	Client  *http.Client
	BaseURL string
}

// NewHubTagLister returns a lister using client, or a client with a 30s
// timeout when nil.
func NewHubTagLister(client *http.Client, baseURL string) *HubTagLister {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultHubURL
	}
	return &HubTagLister{Client: client, BaseURL: baseURL}
}

type hubTag struct {
	Name string `json:"name"`
}

func (h *HubTagLister) Tags(ctx context.Context, image string) ([]string, error) {
	url := strings.TrimSuffix(h.BaseURL, "/") + "/" + image + "/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TagError{Image: image, Err: err}
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, &TagError{Image: image, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var tags []hubTag
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, &TagError{Image: image, Err: err}
	}

	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return ReleaseTags(names), nil
}

// RegistryTagLister lists tags through the OCI distribution API.
type RegistryTagLister struct {
	// Registry prefixes bare image names, e.g. "ghcr.io". Empty means the
	// Docker Hub default.
	Registry string
	Options  []remote.Option
}

func (r *RegistryTagLister) Tags(ctx context.Context, image string) ([]string, error) {
	ref := image
	if r.Registry != "" {
		ref = strings.TrimSuffix(r.Registry, "/") + "/" + image
	}

	repo, err := name.NewRepository(ref)
	if err != nil {
		return nil, &TagError{Image: image, Err: err}
	}

	opts := append([]remote.Option{remote.WithContext(ctx)}, r.Options...)
	tags, err := remote.List(repo, opts...)
	if err != nil {
		return nil, &TagError{Image: image, Err: err}
	}
	return ReleaseTags(tags), nil
}

// Tolerant wraps a lister so failures are logged and turned into an empty
// tag list.
func Tolerant(next TagLister, log logger.Logger) TagLister {
	if log == nil {
		log = logger.Nop()
	}
	return &tolerantLister{next: next, log: log}
}

type tolerantLister struct {
	next TagLister
	log  logger.Logger
}

func (t *tolerantLister) Tags(ctx context.Context, image string) ([]string, error) {
	tags, err := t.next.Tags(ctx, image)
	if err != nil {
		t.log.Warn("tag lookup failed", logger.String("image", image), logger.Error(err))
		return nil, nil
	}
	return tags, nil
}

// ValidateImage checks that image parses as a repository reference.
func ValidateImage(image string) error {
	if _, err := name.NewRepository(image); err != nil {
		return fmt.Errorf("invalid image %q: %w", image, err)
	}
	return nil
}
