package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultFile is the configuration file looked up under the XDG config dirs.
const DefaultFile = "jenkins-job-linter/config.toml"

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// parserFor picks the koanf parser from the file extension. TOML is the
// default.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser()
	default:
		return toml.Parser()
	}
}

// LoadFile reads a configuration file into raw, unfiltered sections.
func LoadFile(path string) (*koanf.Koanf, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access config file %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrConfigLoad, "config path %s is a directory", path).
			WithDetail("path", path)
	}

	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}

	return Parse(data, parserFor(path), path)
}

// Parse loads configuration bytes with the given parser. name only labels
// errors.
func Parse(data []byte, parser koanf.Parser, name string) (*koanf.Koanf, error) {
	k := koanf.New(delim)
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", name).
			WithDetail("path", name)
	}
	return k, nil
}

// FindDefaultFile looks for DefaultFile in the XDG config directories.
func FindDefaultFile() (string, bool) {
	path, err := xdg.SearchConfigFile(DefaultFile)
	if err != nil {
		return "", false
	}
	return path, true
}
