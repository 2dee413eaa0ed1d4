package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Section is a read-only view over the options of one configuration section.
// The zero value is an empty section.
type Section struct {
	name string
	k    *koanf.Koanf
}

// NewSection builds a standalone section from an option map. Rules under test
// use it to run checks without a full configuration.
func NewSection(name string, opts map[string]interface{}) Section {
	k := koanf.New(delim)
	// confmap.Provider without a delimiter never fails on a plain map.
	_ = k.Load(confmap.Provider(opts, ""), nil)
	return Section{name: name, k: k}
}

// Name returns the section name.
func (s Section) Name() string {
	return s.name
}

// Has reports whether the option is set.
func (s Section) Has(option string) bool {
	if s.k == nil {
		return false
	}
	return s.k.Exists(option)
}

// Keys returns the option names in sorted order.
func (s Section) Keys() []string {
	if s.k == nil {
		return nil
	}
	return s.k.Keys()
}

// String returns the option as a string, or "" when it is unset.
func (s Section) String(option string) string {
	if s.k == nil {
		return ""
	}
	return s.k.String(option)
}

// Bool interprets the option as a boolean. Besides native booleans it
// accepts 1/yes/true/on and 0/no/false/off in any case; anything else,
// including an unset option, is false.
func (s Section) Bool(option string) bool {
	if s.k == nil {
		return false
	}
	switch v := s.k.Get(option).(type) {
	case bool:
		return v
	case nil:
		return false
	default:
		switch strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", v))) {
		case "1", "yes", "true", "on":
			return true
		}
		return false
	}
}

// List reads the option with ParseList.
func (s Section) List(option string) []string {
	if s.k == nil {
		return []string{}
	}
	return ParseList(s.k.Get(option))
}

// ParseList turns an option value into a list of strings. Strings are split
// on commas; arrays are taken element-wise. Every entry is trimmed and empty
// entries are dropped, so "" and an unset option both give an empty list.
func ParseList(v interface{}) []string {
	var tokens []string
	switch val := v.(type) {
	case nil:
	case string:
		tokens = strings.Split(val, ",")
	case []string:
		tokens = val
	case []interface{}:
		for _, item := range val {
			tokens = append(tokens, fmt.Sprintf("%v", item))
		}
	default:
		tokens = strings.Split(fmt.Sprintf("%v", val), ",")
	}

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
