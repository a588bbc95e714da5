// Package subst implements the placeholder substitution collaborator.
package subst

import (
	"regexp"

	"go.faultline.dev/faultline/internal/core/domain"
	"go.faultline.dev/faultline/internal/core/ports"
)

var _ ports.Substituter = (*Substituter)(nil)

var placeholder = regexp.MustCompile(`\$\{([A-Za-z0-9_.-]+)\}`)

// Substituter resolves ${name} placeholders in argument flags and values
// from configuration and secrets. Secrets take precedence. Unknown
// placeholders are left untouched so they surface verbatim in the spawned
// command line rather than silently vanishing.
type Substituter struct{}

// New creates a new Substituter.
func New() *Substituter {
	return &Substituter{}
}

// Substitute returns a new arguments list of the same shape with
// placeholders resolved. It never mutates its input and is a no-op on empty
// configuration and secrets.
func (s *Substituter) Substitute(args domain.Arguments, cfg domain.Configuration, secrets domain.Secrets) (domain.Arguments, error) {
	if len(cfg) == 0 && len(secrets) == 0 {
		return args, nil
	}

	out := make(domain.Arguments, len(args))
	for i, a := range args {
		out[i].Flag = expand(a.Flag, cfg, secrets)
		if a.Value != nil {
			v := expand(*a.Value, cfg, secrets)
			out[i].Value = &v
		}
	}
	return out, nil
}

func expand(in string, cfg domain.Configuration, secrets domain.Secrets) string {
	return placeholder.ReplaceAllStringFunc(in, func(m string) string {
		key := m[2 : len(m)-1]
		if v, ok := secrets[key]; ok {
			return v
		}
		if v, ok := cfg[key]; ok {
			return v
		}
		return m
	})
}
