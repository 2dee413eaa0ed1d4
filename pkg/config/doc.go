// Package config resolves the effective linter configuration.
//
// Configuration is a set of named sections, each a map of option names to
// values. The effective configuration is built in layers on top of koanf:
//
//  1. global defaults under the "job_linter" section
//  2. every rule's declared defaults under "job_linter:<rule>"
//  3. the user's raw configuration (usually a TOML or YAML file)
//
// After merging, every section outside the linter namespace is dropped, so
// a shared configuration file may carry settings for other tools (for
// example the [jenkins] connection section) without leaking them into rule
// options.
package config
