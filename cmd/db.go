package cmd

import (
	"fmt"

	"github.com/Pr0ject-X/px-valet/internal/database"
	"github.com/Pr0ject-X/px-valet/internal/environment"
	"github.com/Pr0ject-X/px-valet/internal/ui"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	dbOverrides database.Overrides
	dbCopy      bool
	dbFilename  string
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Work with the project database",
}

var dbInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the database connection settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(func(env *environment.Environment) error {
			db, err := env.Database(dbOverrides)
			if err != nil {
				return err
			}
			return printDatabase(env, db)
		})
	},
}

var dbSpfCmd = &cobra.Command{
	Use:   "spf <file>",
	Short: "Write a Sequel Ace connection file for the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(func(env *environment.Environment) error {
			db, err := env.Database(dbOverrides)
			if err != nil {
				return err
			}
			if err := database.WriteSequel(db, args[0]); err != nil {
				return env.Fail("Unable to write the connection file", err)
			}
			env.Printer().Success("The connection file was saved to " + args[0])
			return nil
		})
	},
}

var dbImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a .sql or .sql.gz file into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(func(env *environment.Environment) error {
			return env.ImportDatabase(cmd.Context(), dbOverrides, args[0])
		})
	},
}

var dbExportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Export the database as a gzipped dump into a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(func(env *environment.Environment) error {
			return env.ExportDatabase(cmd.Context(), dbOverrides, args[0], dbFilename)
		})
	},
}

func init() {
	flags := dbCmd.PersistentFlags()
	flags.StringVar(&dbOverrides.Host, "host", "", "database host")
	flags.StringVar(&dbOverrides.Name, "database", "", "database name")
	flags.StringVar(&dbOverrides.Username, "username", "", "database username")
	flags.StringVar(&dbOverrides.Password, "password", "", "database password")
	flags.StringVar(&dbOverrides.Type, "type", database.Primary, "environment database (primary or secondary)")

	dbInfoCmd.Flags().BoolVar(&dbCopy, "copy", false, "copy the connection URL to the clipboard")
	dbExportCmd.Flags().StringVar(&dbFilename, "filename", "db", "dump file name without extension")

	dbCmd.AddCommand(dbInfoCmd, dbSpfCmd, dbImportCmd, dbExportCmd)
	rootCmd.AddCommand(dbCmd)
}

func printDatabase(env *environment.Environment, db database.Database) error {
	p := env.Printer()
	fmt.Fprintln(p.Writer(), ui.Bold("Database"))
	fmt.Fprintf(p.Writer(), "  type:     %s\n", db.Type)
	fmt.Fprintf(p.Writer(), "  host:     %s\n", db.Host)
	if db.Port != 0 {
		fmt.Fprintf(p.Writer(), "  port:     %d\n", db.Port)
	}
	fmt.Fprintf(p.Writer(), "  database: %s\n", db.Name)
	fmt.Fprintf(p.Writer(), "  username: %s\n", db.Username)
	fmt.Fprintf(p.Writer(), "  password: %s\n", db.Password)

	link, err := database.TablePlusURL(db)
	if err != nil {
		return env.Fail("Unable to build the connection URL", err)
	}
	fmt.Fprintf(p.Writer(), "  url:      %s\n", link)

	if dbCopy {
		if err := writeClipboard(link); err != nil {
			return env.Fail("Unable to copy the connection URL", err)
		}
		p.Success("The connection URL was copied to the clipboard!")
	}
	return nil
}
