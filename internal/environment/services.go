package environment

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Pr0ject-X/px-valet/internal/logger"
	"github.com/Pr0ject-X/px-valet/internal/manifest"
	"github.com/Pr0ject-X/px-valet/internal/service"
)

// Descriptors returns the configured services of every group, in group order.
// Entries naming an unknown image are skipped.
func (e *Environment) Descriptors() []service.Descriptor {
	var out []service.Descriptor
	for _, group := range service.Groups() {
		for _, entry := range e.cfg.ServiceEntries(group) {
			desc, ok := e.deps.Registry.CreateInstance(entry.Image, entry.Configuration)
			if !ok {
				e.deps.Logger.Warn("unknown service image skipped",
					logger.String("group", string(group)),
					logger.String("image", entry.Image),
				)
				continue
			}
			out = append(out, desc)
		}
	}
	return out
}

// WriteManifest writes the docker compose file for the configured services
// and copies their template directories next to it.
func (e *Environment) WriteManifest() error {
	dockerDir := e.deps.Paths.DockerDir()
	builder := manifest.NewBuilder(dockerDir).SetVersion(manifest.DefaultVersion)

	for _, desc := range e.Descriptors() {
		builder.SetService(desc.PackageName(), desc)

		src := desc.TemplateDirectory()
		if src == "" {
			continue
		}
		if info, err := os.Stat(src); err != nil || !info.IsDir() {
			continue
		}
		dst := filepath.Join(dockerDir, "services", desc.PackageName())
		if err := mirrorDir(src, dst); err != nil {
			return e.fail("Unable to copy the service templates", err)
		}
	}

	if err := builder.Save(); err != nil {
		return e.fail("Unable to save the docker compose file", err)
	}
	e.deps.Printer.Success("The docker compose file has successfully been saved!")
	return nil
}

// mirrorDir copies the tree at src into dst, overwriting existing files.
func mirrorDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, info.Mode().Perm()); err != nil {
			return fmt.Errorf("copying %s: %w", rel, err)
		}
		return nil
	})
}
