package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// ErrProfileNotFound is returned when a profile is neither in the config
// nor a readable profile file
var ErrProfileNotFound = errors.New("profile not found")

// Profile describes how to build and prepare a deck
type Profile struct {
	Kind    string `toml:"kind"`
	Decks   int    `toml:"decks,omitempty"`
	Shuffle bool   `toml:"shuffle"`
	Seed    uint64 `toml:"seed,omitempty"` // 0 means seed from entropy
}

// Config represents the application configuration
type Config struct {
	DefaultProfile string             `toml:"default_profile"`
	Profiles       map[string]Profile `toml:"profiles"`
}

// ProfileFile is the layout of a standalone profile file
type ProfileFile struct {
	Profile ProfileSection `toml:"profile"`
}

type ProfileSection struct {
	Name string `toml:"name"`
	Profile
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "deckhand", "config.toml")
}

// DefaultConfig returns the config written on first use
func DefaultConfig() *Config {
	return &Config{
		DefaultProfile: "standard",
		Profiles: map[string]Profile{
			"standard": {Kind: "standard", Shuffle: true},
			"jokers":   {Kind: "jokers", Shuffle: true},
			"shoe":     {Kind: "multiple", Decks: 6, Shuffle: true},
		},
	}
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := DefaultConfig()
	if err := saveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// saveConfig writes config to the config file, creating its directory
func saveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// ProfileNames returns the configured profile names, sorted
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetProfile returns a profile by name. An empty name selects the default
// profile. Names not found in the config are tried as a path to a profile
// file.
func GetProfile(name string) (Profile, error) {
	config, err := LoadConfig()
	if err != nil {
		return Profile{}, err
	}

	if name == "" {
		name = config.DefaultProfile
	}

	if p, ok := config.Profiles[name]; ok {
		return p, nil
	}

	if _, err := os.Stat(name); err == nil {
		pf, _, err := LoadProfileFile(name)
		if err != nil {
			return Profile{}, err
		}
		return pf.Profile.Profile, nil
	}

	return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
}

// SetDefaultProfile sets the default profile in the config
func SetDefaultProfile(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if _, ok := config.Profiles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	config.DefaultProfile = name
	return saveConfig(config)
}

// AddProfile stores a profile under name, replacing any existing one
func AddProfile(name string, p Profile) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.Profiles[name] = p
	return saveConfig(config)
}

// LoadProfileFile decodes a standalone profile file. The returned metadata
// tells callers which keys were present.
func LoadProfileFile(path string) (*ProfileFile, toml.MetaData, error) {
	var pf ProfileFile
	md, err := toml.DecodeFile(path, &pf)
	if err != nil {
		return nil, md, fmt.Errorf("error parsing profile file: %w", err)
	}
	return &pf, md, nil
}
