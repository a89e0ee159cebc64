package valet

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultTLD is the top level domain valet serves sites under.
const DefaultTLD = "test"

// Detector abstracts filesystem lookups for testing.
type Detector interface {
	Stat(path string) (os.FileInfo, error)
}

// OSDetector uses the real filesystem.
type OSDetector struct{}

func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

// ConfigDir finds the valet configuration directory. The first existing
// candidate wins and is remembered; a miss is retried on the next call.
type ConfigDir struct {
	detector   Detector
	candidates []string
	found      string
}

// NewConfigDir returns a resolver over the candidate directories under home.
func NewConfigDir(d Detector, home string) *ConfigDir {
	if d == nil {
		d = OSDetector{}
	}
	return &ConfigDir{
		detector: d,
		candidates: []string{
			filepath.Join(home, ".valet"),
			filepath.Join(home, ".config", "valet"),
		},
	}
}

// Candidates returns the directories searched, in order.
func (c *ConfigDir) Candidates() []string {
	return append([]string(nil), c.candidates...)
}

// Path returns the resolved directory and whether one exists.
func (c *ConfigDir) Path() (string, bool) {
	if c.found != "" {
		return c.found, true
	}
	for _, dir := range c.candidates {
		if info, err := c.detector.Stat(dir); err == nil && info.IsDir() {
			c.found = dir
			return dir, true
		}
	}
	return "", false
}

// StateProbe observes the host state of valet sites.
type StateProbe interface {
	// Installed reports whether valet has a configuration directory.
	Installed() bool
	// SiteLinked reports whether domain is linked to a project.
	SiteLinked(domain string) bool
	// CertificatePresent reports whether a TLS certificate exists for domain.
	CertificatePresent(domain string) bool
}

// FSProbe reads site links and certificates from the valet config directory.
type FSProbe struct {
	dir      *ConfigDir
	detector Detector
	tld      string
}

// NewFSProbe returns a probe over dir. An empty tld means DefaultTLD.
func NewFSProbe(d Detector, dir *ConfigDir, tld string) *FSProbe {
	if d == nil {
		d = OSDetector{}
	}
	if tld == "" {
		tld = DefaultTLD
	}
	return &FSProbe{dir: dir, detector: d, tld: tld}
}

func (p *FSProbe) Installed() bool {
	_, ok := p.dir.Path()
	return ok
}

func (p *FSProbe) SiteLinked(domain string) bool {
	return p.exists("Sites", domain)
}

func (p *FSProbe) CertificatePresent(domain string) bool {
	return p.exists("Certificates", fmt.Sprintf("%s.%s.crt", domain, p.tld))
}

func (p *FSProbe) exists(sub, name string) bool {
	dir, ok := p.dir.Path()
	if !ok {
		return false
	}
	_, err := p.detector.Stat(filepath.Join(dir, sub, name))
	return err == nil
}
