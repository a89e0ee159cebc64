package database

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"net/url"
	"os"
	"text/template"
)

// SequelLabel names the connection in Sequel Ace and Sequel Pro.
const SequelLabel = "Project-X Database"

//go:embed templates/sequel.spf
var templates embed.FS

var sequelTemplate = template.Must(
	template.New("sequel.spf").
		Funcs(template.FuncMap{"xml": escapeXML}).
		ParseFS(templates, "templates/sequel.spf"),
)

func escapeXML(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Sequel renders the .spf connection file for db.
func Sequel(db Database) ([]byte, error) {
	if !db.Valid() {
		return nil, ErrInvalidDatabase
	}
	port := db.Port
	if port == 0 {
		port = defaultPort
	}

	var buf bytes.Buffer
	err := sequelTemplate.Execute(&buf, struct {
		Database
		Label string
		Port  int
	}{db, SequelLabel, port})
	if err != nil {
		return nil, fmt.Errorf("rendering sequel file: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteSequel writes the .spf connection file for db to path.
func WriteSequel(db Database, path string) error {
	data, err := Sequel(db)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// TablePlusURL returns the URL TablePlus opens a local connection from.
func TablePlusURL(db Database) (string, error) {
	if !db.Valid() {
		return "", ErrInvalidDatabase
	}
	query := url.Values{}
	query.Set("statusColor", "007F3D")
	query.Set("enviroment", "local")
	query.Set("name", "Project-X Local Database")
	query.Set("tLSMode", "0")
	query.Set("usePrivateKey", "true")
	query.Set("safeModeLevel", "0")
	query.Set("advancedSafeModeLevel", "0")
	return db.URL() + "?" + query.Encode(), nil
}
