package environment

import (
	"context"

	"github.com/Pr0ject-X/px-valet/internal/database"
	"github.com/Pr0ject-X/px-valet/internal/service"
)

// Databases returns the environment databases. The configured database
// service is the primary one, reachable on the local host.
func (e *Environment) Databases() map[string]database.Database {
	databases := map[string]database.Database{}
	for _, desc := range e.Descriptors() {
		if desc.Group() != service.GroupDatabase {
			continue
		}
		cfg := desc.Configuration()
		databases[database.Primary] = database.Database{
			Type:     desc.Image(),
			Host:     database.DefaultHost,
			Port:     cfg.Int("port"),
			Name:     cfg.String("database"),
			Username: cfg.String("username"),
			Password: cfg.String("password"),
		}
	}
	return databases
}

// Database resolves the database to work with from overrides and the
// environment databases.
func (e *Environment) Database(o database.Overrides) (database.Database, error) {
	db, err := database.Resolve(e.Databases(), o)
	if err != nil {
		return database.Database{}, e.fail("Unable to resolve the database", err)
	}
	return db, nil
}

// ImportDatabase loads file into the resolved database.
func (e *Environment) ImportDatabase(ctx context.Context, o database.Overrides, file string) error {
	db, err := e.Database(o)
	if err != nil {
		return err
	}
	cmd, err := database.Import(db, file)
	if err != nil {
		return e.fail("Unable to import the database", err)
	}
	if err := e.run(ctx, e.deps.Paths.Root, cmd); err != nil {
		return e.fail("Unable to import the database", err)
	}
	e.deps.Printer.Success("The database was successfully imported!")
	return nil
}

// ExportDatabase dumps the resolved database into dir as name.sql.gz.
func (e *Environment) ExportDatabase(ctx context.Context, o database.Overrides, dir, name string) error {
	db, err := e.Database(o)
	if err != nil {
		return err
	}
	cmd, err := database.Export(db, dir, name)
	if err != nil {
		return e.fail("Unable to export the database", err)
	}
	if err := e.run(ctx, e.deps.Paths.Root, cmd); err != nil {
		return e.fail("Unable to export the database", err)
	}
	e.deps.Printer.Success("The database was successfully exported!")
	return nil
}
