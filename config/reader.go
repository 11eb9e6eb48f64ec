package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/viper"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/log"
)

// DefaultEnvPrefix is the default prefix of the environment variables that overrides the setting values.
const DefaultEnvPrefix = "DBHELPER"

// ReadOptions are the settings reader options.
type ReadOptions struct {
	// EnvPrefix is the prefix of environment variables overriding the settings, i.e. for the
	// 'DBHELPER' prefix the 'sqlalchemy.url' is overridden by the 'DBHELPER_SQLALCHEMY_URL'.
	EnvPrefix string
	// Defaults are the setting values used when the file doesn't define them.
	Defaults map[string]string
}

// ReadOption is an option function that changes the ReadOptions.
type ReadOption func(o *ReadOptions)

// WithEnvPrefix sets the environment variables prefix.
func WithEnvPrefix(prefix string) ReadOption {
	return func(o *ReadOptions) {
		o.EnvPrefix = prefix
	}
}

// WithDefault sets the default 'value' for the setting 'key'.
func WithDefault(key, value string) ReadOption {
	return func(o *ReadOptions) {
		o.Defaults[key] = value
	}
}

// ReadSettings reads the settings file at 'path'.
// The '.properties' files are read in the file order. The '.ini' and '.cfg' files are read in the file
// order as well, where the keys of all sections are merged, i.e. the '[app:main]' section header is skipped
// and its 'sqlalchemy.url' is read as is. Other formats supported by viper
// (yaml, json, toml, hcl) are flattened into dotted keys which are sorted, with an 'url' key listed
// first among its siblings. The setting keys are case insensitive and lower cased.
func ReadSettings(path string, options ...ReadOption) (*Settings, error) {
	o := &ReadOptions{EnvPrefix: DefaultEnvPrefix, Defaults: map[string]string{}}
	for _, option := range options {
		option(o)
	}

	v := viper.New()
	if o.EnvPrefix != "" {
		v.SetEnvPrefix(o.EnvPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var keys []string
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "properties", "props", "prop":
		p, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return nil, errors.WrapDetf(ErrInvalidSettings, "reading settings file: '%s' failed: %v", path, err)
		}
		keys = setProperties(v, p)
	case "ini", "cfg":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapDetf(ErrInvalidSettings, "reading settings file: '%s' failed: %v", path, err)
		}
		p, err := properties.LoadString(iniToProperties(string(data)))
		if err != nil {
			return nil, errors.WrapDetf(ErrInvalidSettings, "reading settings file: '%s' failed: %v", path, err)
		}
		keys = setProperties(v, p)
	default:
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapDetf(ErrInvalidSettings, "reading settings file: '%s' failed: %v", path, err)
		}
		keys = v.AllKeys()
		sortKeys(keys)
	}

	s := &Settings{values: map[string]string{}}
	for _, key := range keys {
		s.Set(key, v.GetString(key))
	}
	defaultKeys := make([]string, 0, len(o.Defaults))
	for key := range o.Defaults {
		defaultKeys = append(defaultKeys, key)
	}
	sort.Strings(defaultKeys)
	for _, key := range defaultKeys {
		if s.Has(key) {
			continue
		}
		v.SetDefault(key, o.Defaults[key])
		s.Set(key, v.GetString(key))
	}
	log.Debugf("Read %d settings from: '%s'", s.Len(), path)
	return s, nil
}

func setProperties(v *viper.Viper, p *properties.Properties) []string {
	keys := make([]string, 0, p.Len())
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		v.SetDefault(key, value)
		keys = append(keys, strings.ToLower(key))
	}
	return keys
}

// iniToProperties rewrites the ini content into the properties format. The section headers and ';' comments
// are dropped and the indented continuation lines are joined to the value above with a space.
func iniToProperties(content string) string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			lines = append(lines, "")
		case strings.HasPrefix(trimmed, ";"), strings.HasPrefix(trimmed, "#"):
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			lines = append(lines, "")
		case line[0] == ' ' || line[0] == '\t':
			if n := len(lines); n > 0 && lines[n-1] != "" {
				lines[n-1] += " " + trimmed
			}
		default:
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}

// sortKeys sorts the dotted keys so that the siblings are grouped together and the 'url' leaf precedes its siblings.
func sortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		pi, li := splitLeaf(keys[i])
		pj, lj := splitLeaf(keys[j])
		if pi != pj {
			return pi < pj
		}
		if (li == OptionURL) != (lj == OptionURL) {
			return li == OptionURL
		}
		return li < lj
	})
}

func splitLeaf(key string) (parent, leaf string) {
	i := strings.LastIndexByte(key, '.')
	if i == -1 {
		return "", key
	}
	return key[:i], key[i+1:]
}
