package valet

import (
	"strings"

	"github.com/Pr0ject-X/px-valet/internal/config"
	"github.com/Pr0ject-X/px-valet/internal/logger"
	"github.com/Pr0ject-X/px-valet/internal/runner"
)

// SiteState is the host state of one domain.
type SiteState struct {
	Linked      bool
	CertPresent bool
}

// Reconciler turns desired domains into the valet commands that bring the
// host in line with them.
type Reconciler struct {
	probe StateProbe
	valet Executable
	log   logger.Logger
}

// NewReconciler returns a reconciler observing the host through probe.
func NewReconciler(probe StateProbe, valet Executable, log logger.Logger) *Reconciler {
	if log == nil {
		log = logger.Nop()
	}
	return &Reconciler{probe: probe, valet: valet, log: log}
}

// pass tracks the state each domain will be in once the queued commands run,
// so a repeated domain is judged against the plan rather than the host.
type pass struct {
	r       *Reconciler
	planned map[string]SiteState
}

func (r *Reconciler) newPass() *pass {
	return &pass{r: r, planned: make(map[string]SiteState)}
}

func (p *pass) state(name string) SiteState {
	if s, ok := p.planned[name]; ok {
		return s
	}
	return SiteState{
		Linked:      p.r.probe.SiteLinked(name),
		CertPresent: p.r.probe.CertificatePresent(name),
	}
}

// Converge returns the commands that link every domain and align its
// certificate with the ssl flag. Domains already in the desired state
// produce nothing.
func (r *Reconciler) Converge(domains []config.Domain) *runner.Stack {
	stack := runner.NewStack()
	p := r.newPass()

	for _, d := range domains {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		s := p.state(name)

		switch {
		case !s.Linked:
			stack.Exec(r.valet.Link(name))
			s.Linked = true
			if d.SSL && !s.CertPresent {
				stack.Exec(r.valet.Secure(name))
				s.CertPresent = true
			} else if !d.SSL && s.CertPresent {
				stack.Exec(r.valet.Unsecure(name))
				s.CertPresent = false
			}
		case d.SSL && !s.CertPresent:
			stack.Exec(r.valet.Secure(name))
			s.CertPresent = true
		case !d.SSL && s.CertPresent:
			stack.Exec(r.valet.Unsecure(name))
			s.CertPresent = false
		default:
			r.log.Debug("site up to date", logger.String("domain", name), logger.Bool("ssl", d.SSL))
		}
		p.planned[name] = s
	}
	return stack
}

// Teardown returns the commands removing every domain's certificate and
// link. A certificate is removed even when the site is no longer linked.
func (r *Reconciler) Teardown(domains []config.Domain) *runner.Stack {
	stack := runner.NewStack()
	p := r.newPass()

	for _, d := range domains {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		s := p.state(name)

		if s.CertPresent {
			stack.Exec(r.valet.Unsecure(name))
		}
		if s.Linked {
			stack.Exec(r.valet.Unlink(name))
		}
		p.planned[name] = SiteState{}
	}
	return stack
}
