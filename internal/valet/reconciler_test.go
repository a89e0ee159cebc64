package valet

import (
	"context"
	"testing"

	"github.com/Pr0ject-X/px-valet/internal/config"
	"github.com/Pr0ject-X/px-valet/internal/logger"
	"github.com/Pr0ject-X/px-valet/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost is a StateProbe whose state changes as valet commands run
// against it.
type fakeHost struct {
	sites map[string]SiteState
}

func newFakeHost(sites map[string]SiteState) *fakeHost {
	if sites == nil {
		sites = map[string]SiteState{}
	}
	return &fakeHost{sites: sites}
}

func (h *fakeHost) Installed() bool                       { return true }
func (h *fakeHost) SiteLinked(domain string) bool         { return h.sites[domain].Linked }
func (h *fakeHost) CertificatePresent(domain string) bool { return h.sites[domain].CertPresent }

func (h *fakeHost) Run(_ context.Context, _ string, cmd runner.Command) error {
	name := cmd.Args[1]
	s := h.sites[name]
	switch cmd.Args[0] {
	case "link":
		s.Linked = true
	case "unlink":
		s.Linked = false
	case "secure":
		s.CertPresent = true
	case "unsecure":
		s.CertPresent = false
	}
	h.sites[name] = s
	return nil
}

func lines(stack *runner.Stack) []string {
	var out []string
	for _, c := range stack.Commands() {
		out = append(out, c.String())
	}
	return out
}

func newTestReconciler(host *fakeHost) *Reconciler {
	return NewReconciler(host, NewExecutable(""), logger.Nop())
}

func TestConverge(t *testing.T) {
	tests := []struct {
		name     string
		sites    map[string]SiteState
		domains  []config.Domain
		expected []string
	}{
		{
			name:     "unlinked without ssl links only",
			domains:  []config.Domain{{Name: "shop"}},
			expected: []string{"valet link shop"},
		},
		{
			name:     "unlinked with ssl links then secures",
			domains:  []config.Domain{{Name: "shop", SSL: true}},
			expected: []string{"valet link shop", "valet secure shop"},
		},
		{
			name:     "unlinked with existing cert is not secured again",
			sites:    map[string]SiteState{"shop": {CertPresent: true}},
			domains:  []config.Domain{{Name: "shop", SSL: true}},
			expected: []string{"valet link shop"},
		},
		{
			name:     "unlinked without ssl drops a stale cert",
			sites:    map[string]SiteState{"shop": {CertPresent: true}},
			domains:  []config.Domain{{Name: "shop"}},
			expected: []string{"valet link shop", "valet unsecure shop"},
		},
		{
			name:     "linked gains ssl",
			sites:    map[string]SiteState{"shop": {Linked: true}},
			domains:  []config.Domain{{Name: "shop", SSL: true}},
			expected: []string{"valet secure shop"},
		},
		{
			name:     "secured loses ssl",
			sites:    map[string]SiteState{"shop": {Linked: true, CertPresent: true}},
			domains:  []config.Domain{{Name: "shop"}},
			expected: []string{"valet unsecure shop"},
		},
		{
			name:     "already converged",
			sites:    map[string]SiteState{"shop": {Linked: true, CertPresent: true}, "blog": {Linked: true}},
			domains:  []config.Domain{{Name: "shop", SSL: true}, {Name: "blog"}},
			expected: nil,
		},
		{
			name:     "duplicate domain links once",
			domains:  []config.Domain{{Name: "app"}, {Name: "app"}},
			expected: []string{"valet link app"},
		},
		{
			name:     "empty names are skipped",
			domains:  []config.Domain{{Name: ""}, {Name: "  "}, {Name: "shop"}},
			expected: []string{"valet link shop"},
		},
		{
			name:     "domains keep their order",
			domains:  []config.Domain{{Name: "b", SSL: true}, {Name: "a"}},
			expected: []string{"valet link b", "valet secure b", "valet link a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReconciler(newFakeHost(tt.sites))
			assert.Equal(t, tt.expected, lines(r.Converge(tt.domains)))
		})
	}
}

func TestConvergeIsIdempotent(t *testing.T) {
	host := newFakeHost(map[string]SiteState{
		"shop": {Linked: true, CertPresent: true},
		"blog": {CertPresent: true},
		"docs": {CertPresent: true},
	})
	r := newTestReconciler(host)
	domains := []config.Domain{
		{Name: "shop"},
		{Name: "blog", SSL: true},
		{Name: "docs"},
		{Name: "api", SSL: true},
		{Name: "api", SSL: true},
	}

	first := r.Converge(domains)
	require.False(t, first.Empty())
	require.NoError(t, first.Run(context.Background(), host))

	assert.True(t, r.Converge(domains).Empty())
}

func TestTeardown(t *testing.T) {
	tests := []struct {
		name     string
		sites    map[string]SiteState
		domains  []config.Domain
		expected []string
	}{
		{
			name:     "linked and secured",
			sites:    map[string]SiteState{"shop": {Linked: true, CertPresent: true}},
			domains:  []config.Domain{{Name: "shop", SSL: true}},
			expected: []string{"valet unsecure shop", "valet unlink shop"},
		},
		{
			name:     "linked only",
			sites:    map[string]SiteState{"shop": {Linked: true}},
			domains:  []config.Domain{{Name: "shop"}},
			expected: []string{"valet unlink shop"},
		},
		{
			name:     "certificate without link",
			sites:    map[string]SiteState{"shop": {CertPresent: true}},
			domains:  []config.Domain{{Name: "shop", SSL: true}},
			expected: []string{"valet unsecure shop"},
		},
		{
			name:     "nothing on host",
			domains:  []config.Domain{{Name: "shop"}},
			expected: nil,
		},
		{
			name:     "duplicate domain removed once",
			sites:    map[string]SiteState{"app": {Linked: true}},
			domains:  []config.Domain{{Name: "app"}, {Name: "app"}, {Name: ""}},
			expected: []string{"valet unlink app"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReconciler(newFakeHost(tt.sites))
			assert.Equal(t, tt.expected, lines(r.Teardown(tt.domains)))
		})
	}
}

func TestExecutableRestart(t *testing.T) {
	v := NewExecutable("")
	assert.Equal(t, "valet restart", v.Restart("").String())
	assert.Equal(t, "valet restart nginx", v.Restart("nginx").String())
	assert.Equal(t, "valet restart", v.Restart("mysql").String())
	assert.Equal(t, "/opt/bin/valet install", NewExecutable("/opt/bin/valet").Install().String())
}
