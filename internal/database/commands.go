package database

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Pr0ject-X/px-valet/internal/runner"
	"github.com/Pr0ject-X/px-valet/internal/util"
)

// DefaultExportName is the export file name without extensions.
const DefaultExportName = "db"

var (
	ErrImportFileMissing = errors.New("the database import file does not exist")
	ErrExportDirMissing  = errors.New("the database export directory does not exist")
)

func connectionFlags(db Database) []string {
	flags := []string{"--host=" + db.Host}
	if db.Port != 0 {
		flags = append(flags, "--port="+strconv.Itoa(db.Port))
	}
	flags = append(flags, "--user="+db.Username)
	if db.Password != "" {
		flags = append(flags, "--password="+db.Password)
	}
	return flags
}

func line(name string, args ...string) string {
	return runner.NewCommand(name, args...).String()
}

// Client returns the mysql client invocation connected to db.
func Client(db Database) string {
	return line("mysql", append(connectionFlags(db), db.Name)...)
}

// Dump returns the mysqldump invocation for db.
func Dump(db Database) string {
	return line("mysqldump", append(connectionFlags(db), "--no-tablespaces", db.Name)...)
}

// IsGzipped reports whether the file at path starts with a gzip header.
func IsGzipped(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		if errors.Is(err, gzip.ErrHeader) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	zr.Close()
	return true, nil
}

// Import returns the shell command loading file into db. Gzipped dumps are
// streamed through gzcat.
func Import(db Database, file string) (runner.Command, error) {
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return runner.Command{}, fmt.Errorf("%w: %s", ErrImportFileMissing, file)
	}
	gz, err := IsGzipped(file)
	if err != nil {
		return runner.Command{}, fmt.Errorf("reading %s: %w", file, err)
	}

	quoted := util.ShellQuote(file)
	if gz {
		return runner.Shell(fmt.Sprintf("gzcat %s | %s", quoted, Client(db))), nil
	}
	return runner.Shell(fmt.Sprintf("%s < %s", Client(db), quoted)), nil
}

// ExportPath returns the dump file written into dir for name.
func ExportPath(dir, name string) string {
	if name == "" {
		name = DefaultExportName
	}
	name = strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ".sql")
	return filepath.Join(dir, name+".sql.gz")
}

// Export returns the shell command dumping db into dir as a gzipped file.
func Export(db Database, dir, name string) (runner.Command, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return runner.Command{}, fmt.Errorf("%w: %s", ErrExportDirMissing, dir)
	}
	target := util.ShellQuote(ExportPath(dir, name))
	return runner.Shell(fmt.Sprintf("%s | gzip -c > %s", Dump(db), target)), nil
}
