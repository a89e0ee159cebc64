package wizard

import (
	"bytes"
	"text/template"

	"github.com/Pr0ject-X/px-valet/internal/config"
)

const headerTemplate = `# px-valet configuration for {{ .Project }}
#
# Regenerate with: px-valet configure
# Apply with:      px-valet init
{{- range .Domains }}
#   {{ if .SSL }}https{{ else }}http{{ end }}://{{ .Name }}.{{ $.TLD }}
{{- end }}

`

// ConfigHeader renders the comment block written above the config of project.
func ConfigHeader(project string, cfg *config.Config) (string, error) {
	tmpl, err := template.New("header").Parse(headerTemplate)
	if err != nil {
		return "", err
	}

	tld := cfg.Valet.TLD
	if tld == "" {
		tld = "test"
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Project string
		Domains []config.Domain
		TLD     string
	}{project, cfg.Domains, tld})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
