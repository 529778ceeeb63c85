// Package config loads the migration request from a YAML file.
//
//	from: 3f1aa5b9-3c2b-4e44-99ad-f6284e9f2e91
//	to: 11111111-2222-3333-4444-555555555555
//
// The keys old and new are accepted in place of from and to.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Lagufka/minecraft-UUID-replacer/ident"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

const DefaultFile = "uuid_config.yml"

var ErrConfig = errors.New("configuration error")

type Config struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Old  string `yaml:"old"`
	New  string `yaml:"new"`
}

// Load reads and parses the configuration file at path.
func Load(fs afero.Fs, path string) (*Config, error) {
	d, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: config file %q not found", ErrConfig, path)
		}
		return nil, fmt.Errorf("%w: reading %q: %w", ErrConfig, path, err)
	}
	return Parse(d)
}

func Parse(d []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

// Identifiers returns the old and new identifier strings, resolving the
// aliases.
func (c *Config) Identifiers() (oldID, newID string, err error) {
	oldID, err = pick("from", c.From, "old", c.Old)
	if err != nil {
		return "", "", err
	}
	newID, err = pick("to", c.To, "new", c.New)
	if err != nil {
		return "", "", err
	}
	return oldID, newID, nil
}

// Migration builds the migration described by c. Malformed identifiers
// are reported as ident.ErrInvalidFormat.
func (c *Config) Migration() (*ident.Migration, error) {
	oldID, newID, err := c.Identifiers()
	if err != nil {
		return nil, err
	}
	return ident.NewMigration(oldID, newID)
}

func pick(key, v, alias, av string) (string, error) {
	switch {
	case v == "" && av == "":
		return "", fmt.Errorf("%w: missing required key %q", ErrConfig, key)
	case v != "" && av != "" && v != av:
		return "", fmt.Errorf("%w: %q and %q disagree", ErrConfig, key, alias)
	case v != "":
		return v, nil
	}
	return av, nil
}

// LoadMigration is Load followed by Migration.
func LoadMigration(fs afero.Fs, path string) (*ident.Migration, error) {
	cfg, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	return cfg.Migration()
}
