// Package config loads the releasefetch configuration.
//
// Configuration comes from a .properties or .yaml file and from environment
// variables prefixed with RELEASEFETCH_ (RELEASEFETCH_CURATOR_DATABASE_HOST
// overrides curator.database.host). Every source is declared under
// sources.<name>:
//
//	sources.uniprot.url=https://rest.uniprot.org/uniprotkb/stream?format=tsv
//	sources.uniprot.destination=/tmp/uniprot.tsv
//	sources.uniprot.max_age=24h
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/reactome/releasefetch/instanceedit"
)

const (
	EnvPrefix = "RELEASEFETCH"

	KindFile   = "file"
	KindCOSMIC = "cosmic"

	PrefixCurator = "curator"
	PrefixRelease = "release"

	maskedPassword = "********"
)

// Config is the resolved configuration.
type Config struct {
	Sources     map[string]Source `mapstructure:"sources" yaml:"sources"`
	Curator     DatabaseSection   `mapstructure:"curator" yaml:"curator"`
	Release     DatabaseSection   `mapstructure:"release" yaml:"release"`
	PersonID    int64             `mapstructure:"person_id" yaml:"person_id"`
	Workers     int               `mapstructure:"workers" yaml:"workers"`
	LogLevel    string            `mapstructure:"log_level" yaml:"log_level"`
	LogDir      string            `mapstructure:"log_dir" yaml:"log_dir,omitempty"`
	MetricsFile string            `mapstructure:"metrics_file" yaml:"metrics_file,omitempty"`
}

// DatabaseSection holds the <prefix>.database.* settings.
type DatabaseSection struct {
	Database instanceedit.DBConfig `mapstructure:"database" yaml:"database"`
}

// Source describes one data file to retrieve.
type Source struct {
	URL         string        `mapstructure:"url" yaml:"url"`
	Destination string        `mapstructure:"destination" yaml:"destination"`
	MaxAge      time.Duration `mapstructure:"max_age" yaml:"max_age"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout,omitempty"`
	// Retries is nil when the retriever default applies.
	Retries    *int   `mapstructure:"retries" yaml:"retries,omitempty"`
	PassiveFTP bool   `mapstructure:"passive_ftp" yaml:"passive_ftp"`
	Username   string `mapstructure:"username" yaml:"username,omitempty"`
	Password   string `mapstructure:"password" yaml:"password,omitempty"`
	// Kind is KindFile or KindCOSMIC.
	Kind string `mapstructure:"kind" yaml:"kind"`
}

// ErrProperty is matched by PropertyNotPresentError and PropertyHasNoValueError.
var ErrProperty = errors.New("mandatory property")

// PropertyNotPresentError reports a mandatory key that is absent.
type PropertyNotPresentError struct {
	Key string
}

func (e *PropertyNotPresentError) Error() string {
	return fmt.Sprintf("the property %s is not in this set of properties", e.Key)
}

func (e *PropertyNotPresentError) Is(target error) bool { return target == ErrProperty }

// PropertyHasNoValueError reports a mandatory key whose value is blank.
type PropertyHasNoValueError struct {
	Key string
}

func (e *PropertyHasNoValueError) Error() string {
	return fmt.Sprintf("the property %s is present in this set of properties, but no value has been set for it", e.Key)
}

func (e *PropertyHasNoValueError) Is(target error) bool { return target == ErrProperty }

// Mandatory returns the value of key, which must be present and not blank.
func Mandatory(v *viper.Viper, key string) (string, error) {
	if !v.IsSet(key) {
		return "", &PropertyNotPresentError{Key: key}
	}

	value := v.GetString(key)
	if strings.TrimSpace(value) == "" {
		return "", &PropertyHasNoValueError{Key: key}
	}

	return value, nil
}

// New returns a viper instance with the defaults and environment binding used by Load.
func New() *viper.Viper {
	v := viper.New()

	for _, prefix := range []string{PrefixCurator, PrefixRelease} {
		v.SetDefault(prefix+".database.host", "localhost")
		v.SetDefault(prefix+".database.port", 3306)
		v.SetDefault(prefix+".database.user", "root")
		v.SetDefault(prefix+".database.password", "root")
		v.SetDefault(prefix+".database.name", "")
	}
	v.SetDefault("person_id", 0)
	v.SetDefault("workers", 4)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_dir", "")
	v.SetDefault("metrics_file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path, which may be empty to use defaults and environment only.
// The format follows the extension: .properties, .yaml, .yml or .json.
func Load(path string) (*Config, error) {
	v := New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	return Decode(v)
}

// Decode builds a Config from v and validates every source.
func Decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for _, name := range cfg.SourceNames() {
		for _, field := range []string{"url", "destination"} {
			if _, err := Mandatory(v, "sources."+name+"."+field); err != nil {
				return nil, err
			}
		}

		source := cfg.Sources[name]
		source.Kind = strings.ToLower(strings.TrimSpace(source.Kind))
		switch source.Kind {
		case "":
			source.Kind = KindFile
		case KindFile, KindCOSMIC:
		default:
			return nil, fmt.Errorf("source %s: unknown kind %q", name, source.Kind)
		}
		if source.MaxAge < 0 {
			return nil, fmt.Errorf("source %s: max_age cannot be negative", name)
		}
		if source.Retries != nil && *source.Retries < 0 {
			return nil, fmt.Errorf("source %s: retries cannot be negative", name)
		}
		cfg.Sources[name] = source
	}

	return cfg, nil
}

// SourceNames returns the configured source names in order.
func (c *Config) SourceNames() []string {
	names := make([]string, 0, len(c.Sources))
	for name := range c.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Database returns the connection settings of the curator or release database.
func (c *Config) Database(prefix string) (instanceedit.DBConfig, error) {
	switch prefix {
	case PrefixCurator:
		return c.Curator.Database, nil
	case PrefixRelease:
		return c.Release.Database, nil
	default:
		return instanceedit.DBConfig{}, fmt.Errorf("unknown database %q: use %s or %s", prefix, PrefixCurator, PrefixRelease)
	}
}

// Masked returns a copy of c with every password replaced.
func (c *Config) Masked() *Config {
	masked := *c
	for _, section := range []*DatabaseSection{&masked.Curator, &masked.Release} {
		if section.Database.Password != "" {
			section.Database.Password = maskedPassword
		}
	}

	masked.Sources = make(map[string]Source, len(c.Sources))
	for name, source := range c.Sources {
		if source.Password != "" {
			source.Password = maskedPassword
		}
		masked.Sources[name] = source
	}

	return &masked
}
