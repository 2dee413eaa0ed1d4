package config

import (
	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// MarshalTOML renders the effective configuration as TOML. Rule sections are
// written as quoted table names, e.g. ["job_linter:check_shebang"].
func MarshalTOML(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg.Raw())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return out, nil
}
