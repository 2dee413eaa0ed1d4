package config

import (
	"strings"

	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

const (
	// Namespace is the section holding global linter options. Rule sections
	// are named Namespace + ":" + rule name.
	Namespace = "job_linter"

	// DisableLinters names rules that are never invoked.
	DisableLinters = "disable_linters"
	// OnlyRun restricts a run to the named rules when non-empty.
	OnlyRun = "only_run"

	// delim is the koanf key path delimiter. Section names never contain it.
	delim = "."
)

// Defaults is anything that declares default options for its own section.
// lint.Rule satisfies it.
type Defaults interface {
	Name() string
	DefaultConfig() map[string]interface{}
}

// RuleSectionName returns the configuration section holding a rule's options.
func RuleSectionName(rule string) string {
	return Namespace + ":" + rule
}

// InNamespace reports whether a section belongs to the linter.
func InNamespace(section string) bool {
	return section == Namespace || strings.HasPrefix(section, Namespace+":")
}

func globalDefaults() map[string]interface{} {
	return map[string]interface{}{
		Namespace: map[string]interface{}{
			DisableLinters: "",
		},
	}
}

// Config is the effective, namespace-filtered configuration of one run.
type Config struct {
	k *koanf.Koanf
}

// Build layers global defaults, the defaults of every rule and the raw user
// configuration, then drops every section outside the linter namespace.
// raw may be nil and is never modified.
func Build(raw *koanf.Koanf, rules ...Defaults) (*Config, error) {
	k := koanf.New(delim)

	if err := k.Load(confmap.Provider(globalDefaults(), ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "failed to load global defaults")
	}

	ruleDefaults := make(map[string]interface{}, len(rules))
	for _, r := range rules {
		name := r.Name()
		if name == "" {
			return nil, errors.New(errors.ErrConfigValid, "rule with an empty name declares defaults")
		}
		section := RuleSectionName(name)
		if _, dup := ruleDefaults[section]; dup {
			return nil, errors.Newf(errors.ErrConfigValid, "rule %q declares defaults twice", name).
				WithDetail("rule", name)
		}
		opts := make(map[string]interface{}, len(r.DefaultConfig()))
		for opt, v := range r.DefaultConfig() {
			opts[opt] = v
		}
		ruleDefaults[section] = opts
	}
	if err := k.Load(confmap.Provider(ruleDefaults, ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "failed to load rule defaults")
	}

	// Merge works on a copy of raw's map.
	if raw != nil {
		if err := k.Merge(raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigValid, "failed to merge user configuration")
		}
	}

	// Filter on the raw map: a foreign section name may contain the key
	// delimiter, which koanf's Delete cannot address.
	merged := k.Raw()
	for section := range merged {
		if !InNamespace(section) {
			delete(merged, section)
		}
	}

	out := koanf.New(delim)
	if err := out.Load(confmap.Provider(merged, ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "failed to filter configuration")
	}
	return &Config{k: out}, nil
}

// Sections returns the names of all sections in sorted order.
func (c *Config) Sections() []string {
	return c.k.MapKeys("")
}

// Has reports whether the section exists.
func (c *Config) Has(section string) bool {
	for _, s := range c.k.MapKeys("") {
		if s == section {
			return true
		}
	}
	return false
}

// Section returns a read-only view of one section. A missing section yields
// an empty view.
func (c *Config) Section(name string) Section {
	return Section{name: name, k: c.k.Cut(name)}
}

// RuleSection returns the section holding a rule's options.
func (c *Config) RuleSection(rule string) Section {
	return c.Section(RuleSectionName(rule))
}

// Global returns the job_linter section.
func (c *Config) Global() Section {
	return c.Section(Namespace)
}

// List reads a list-valued option of a section.
func (c *Config) List(section, option string) []string {
	return c.Section(section).List(option)
}

// Raw returns a copy of the configuration as nested maps.
func (c *Config) Raw() map[string]interface{} {
	return c.k.Raw()
}
