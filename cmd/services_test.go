package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Pr0ject-X/px-valet/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestPrintServices(t *testing.T) {
	var buf bytes.Buffer
	printServices(&buf, service.NewRegistry())
	out := buf.String()

	assert.Contains(t, out, "database (required)")
	assert.Contains(t, out, "mysql")
	assert.Contains(t, out, "mariadb")
	assert.Contains(t, out, "redis")
	assert.Contains(t, out, "mailhog/mailhog")

	// groups are listed in order
	db := strings.Index(out, "database")
	caching := strings.Index(out, "caching")
	other := strings.Index(out, "other")
	assert.Less(t, db, caching)
	assert.Less(t, caching, other)
}
