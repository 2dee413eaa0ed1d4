package rules

import (
	"github.com/arthur-debert/jenkins-job-linter/pkg/lint"
)

// CheckFunc performs a rule's check on a document that passed the root tag
// gate.
type CheckFunc func(ctx *lint.Context) lint.Result

// rule implements lint.Rule from plain values.
type rule struct {
	name        string
	description string
	rootTags    []string
	defaults    map[string]interface{}
	options     []string
	check       CheckFunc
}

func (r *rule) Name() string        { return r.name }
func (r *rule) Description() string { return r.description }
func (r *rule) RootTags() []string  { return r.rootTags }

// DefaultConfig returns a fresh copy so callers may not alter the defaults.
func (r *rule) DefaultConfig() map[string]interface{} {
	out := make(map[string]interface{}, len(r.defaults))
	for k, v := range r.defaults {
		out[k] = v
	}
	return out
}

// Options lists the options the check reads.
func (r *rule) Options() []string {
	return append([]string(nil), r.options...)
}

func (r *rule) Check(ctx *lint.Context) lint.Result {
	return r.check(ctx)
}

// requireElement builds a rule that fails, without detail, unless the
// element at path exists under the document root.
func requireElement(name, description, path string) lint.Factory {
	return func() lint.Rule {
		return &rule{
			name:        name,
			description: description,
			rootTags:    lint.JobRootTags,
			check: func(ctx *lint.Context) lint.Result {
				if ctx.Root().FindElement(path) == nil {
					return lint.Failed("")
				}
				return lint.Passed()
			},
		}
	}
}
