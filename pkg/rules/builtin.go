package rules

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/arthur-debert/jenkins-job-linter/pkg/lint"
	"github.com/arthur-debert/jenkins-job-linter/pkg/registry"
)

// builtin lists the built-in rule factories in evaluation order.
var builtin = []lint.Factory{
	NewEnsureTimestamps,
	NewCheckForEmptyShell,
	NewCheckShebang,
	NewCheckEnvInject,
	NewCheckJobReferences,
	NewEnsureWorkspaceCleanup,
	NewCheckColumnConfiguration,
}

// Builtin returns a new registry holding every built-in rule.
func Builtin() registry.Registry[lint.Factory] {
	reg := registry.New[lint.Factory]()
	for _, f := range builtin {
		MustRegister(reg, f)
	}
	return reg
}

// Register validates the rule a factory produces and adds the factory to reg
// under the rule's name.
func Register(reg registry.Registry[lint.Factory], factory lint.Factory) error {
	if factory == nil {
		return errors.New(errors.ErrRuleInvalid, "rule factory is nil")
	}
	r := factory()
	if err := Validate(r); err != nil {
		return err
	}
	if reg.Has(r.Name()) {
		return errors.Newf(errors.ErrRuleInvalid, "rule %q is already registered", r.Name()).
			WithDetail("rule", r.Name())
	}
	if err := reg.Register(r.Name(), factory); err != nil {
		return errors.Wrapf(err, errors.ErrRuleInvalid, "cannot register rule %q", r.Name())
	}
	return nil
}

// MustRegister is Register for init-time registration; it panics on error.
func MustRegister(reg registry.Registry[lint.Factory], factory lint.Factory) {
	if err := Register(reg, factory); err != nil {
		panic(err)
	}
}

// Validate checks the static properties every rule must have: a name usable
// as a configuration section suffix and filter token, a description and at
// least one root tag. A rule that declares the options it reads must give
// each of them a default.
func Validate(r lint.Rule) error {
	if r == nil {
		return errors.New(errors.ErrRuleInvalid, "rule factory returned nil")
	}
	name := r.Name()
	if name == "" {
		return errors.New(errors.ErrRuleInvalid, "rule name cannot be empty")
	}
	if strings.ContainsAny(name, ":.,") || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return errors.Newf(errors.ErrRuleInvalid, "rule name %q contains a reserved character", name).
			WithDetail("rule", name)
	}
	if r.Description() == "" {
		return errors.Newf(errors.ErrRuleInvalid, "rule %q has no description", name).
			WithDetail("rule", name)
	}
	if len(r.RootTags()) == 0 {
		return errors.Newf(errors.ErrRuleInvalid, "rule %q declares no root tags", name).
			WithDetail("rule", name)
	}
	if reader, ok := r.(lint.OptionReader); ok {
		defaults := r.DefaultConfig()
		for _, opt := range reader.Options() {
			if _, ok := defaults[opt]; !ok {
				return errors.Newf(errors.ErrRuleInvalid, "rule %q reads option %q without a default", name, opt).
					WithDetail("rule", name).
					WithDetail("option", opt)
			}
		}
	}
	return nil
}
