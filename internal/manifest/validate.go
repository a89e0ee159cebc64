package manifest

import (
	"context"
	"fmt"

	"github.com/compose-spec/compose-go/v2/cli"
	"github.com/compose-spec/compose-go/v2/loader"
	composetypes "github.com/compose-spec/compose-go/v2/types"
)

// ProjectName returns name as a compose project name, normalized the way
// compose normalizes directory names.
func ProjectName(name string) string {
	return loader.NormalizeProjectName(name)
}

// Validate loads the manifest at path with the compose loader, proving the
// generated file is a project docker compose accepts under projectName.
func Validate(ctx context.Context, path, projectName string) (*composetypes.Project, error) {
	opts, err := cli.NewProjectOptions(
		[]string{path},
		cli.WithName(ProjectName(projectName)),
		cli.WithInterpolation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("project options: %w", err)
	}

	project, err := cli.ProjectFromOptions(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return project, nil
}
