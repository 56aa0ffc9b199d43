package auth

import (
	"os"
	"strings"

	"github.com/reactome/releasefetch"
)

// Config holds the credentials used for a source
type Config struct {
	Username string
	Password string
}

// FromEnvironment reads credentials for source from environment variables.
// Priority: RELEASEFETCH_<SOURCE>_USERNAME > RELEASEFETCH_USERNAME, and the same for passwords.
func FromEnvironment(source string) *Config {
	prefix := "RELEASEFETCH_" + envName(source) + "_"

	return &Config{
		Username: firstSet(os.Getenv(prefix+"USERNAME"), os.Getenv("RELEASEFETCH_USERNAME")),
		Password: firstSet(os.Getenv(prefix+"PASSWORD"), os.Getenv("RELEASEFETCH_PASSWORD")),
	}
}

// Merge overrides the credentials with the non-empty values given.
// Callers merge in increasing order of precedence: config file, environment, flags.
func (c *Config) Merge(username, password string) {
	if username != "" {
		c.Username = username
	}
	if password != "" {
		c.Password = password
	}
}

// ToOptions converts the credentials to retriever options.
func (c *Config) ToOptions() []releasefetch.Option {
	var opts []releasefetch.Option

	if c.HasAuth() {
		opts = append(opts, releasefetch.WithCredentials(c.Username, c.Password))
	}

	return opts
}

// HasAuth returns true if a username is configured. An empty password is allowed.
func (c *Config) HasAuth() bool {
	return strings.TrimSpace(c.Username) != ""
}

func envName(source string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(source))
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
