package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"app", "app"},
		{"My App", "my-app"},
		{"shop.test", "shop"},
		{"Shop.Example.com", "shop"},
		{"  padded  ", "padded"},
		{" shop .test", "shop"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeDomain(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, NormalizeDomain(got), "normalization must be idempotent")
		})
	}
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, "''", ShellQuote(""))
	assert.Equal(t, "app", ShellQuote("app"))
	assert.Equal(t, "/tmp/db.sql.gz", ShellQuote("/tmp/db.sql.gz"))
	assert.Equal(t, "'two words'", ShellQuote("two words"))
	assert.Equal(t, `'it'"'"'s'`, ShellQuote("it's"))
}
