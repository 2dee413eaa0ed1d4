package config

import (
	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"
)

// JenkinsSection is the raw section holding server connection settings. It
// lives outside the linter namespace and never reaches rule options.
const JenkinsSection = "jenkins"

// JenkinsSettings locate and authenticate against a Jenkins server.
type JenkinsSettings struct {
	URL      string `koanf:"url"`
	Username string `koanf:"user"`
	Password string `koanf:"password"`
}

// JenkinsFromRaw decodes the [jenkins] section of a raw configuration. A nil
// configuration or a missing section yields empty settings.
func JenkinsFromRaw(raw *koanf.Koanf) (JenkinsSettings, error) {
	var s JenkinsSettings
	if raw == nil || !raw.Exists(JenkinsSection) {
		return s, nil
	}

	err := raw.UnmarshalWithConf(JenkinsSection, &s, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return JenkinsSettings{}, errors.Wrap(err, errors.ErrConfigParse, "invalid [jenkins] section")
	}
	return s, nil
}

// Merge fills every empty field of s from fallback.
func (s JenkinsSettings) Merge(fallback JenkinsSettings) JenkinsSettings {
	if s.URL == "" {
		s.URL = fallback.URL
	}
	if s.Username == "" {
		s.Username = fallback.Username
	}
	if s.Password == "" {
		s.Password = fallback.Password
	}
	return s
}
