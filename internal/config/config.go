package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"ch/internal/domain"
)

const (
	// EnvConfigPath overrides the default config location
	EnvConfigPath = "CH_CONFIG"

	// DefaultShell runs commands when the config names none
	DefaultShell = "/bin/sh"
)

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrDuplicateCommand is returned when a group defines a command under both keys.
	ErrDuplicateCommand = errors.New("duplicate command")
)

// Config represents the application configuration
type Config struct {
	Shell  string           `toml:"shell,omitempty" yaml:"shell,omitempty"`
	Groups map[string]Group `toml:"groups" yaml:"groups"`
}

// Group holds the commands of one group. Connections is the legacy key
// for the same map and is merged into Commands on load.
type Group struct {
	Commands    map[string]string `toml:"commands,omitempty" yaml:"commands,omitempty"`
	Connections map[string]string `toml:"connections,omitempty" yaml:"connections,omitempty"`
}

// EmptyCommand names a command whose command string is blank
type EmptyCommand struct {
	Group   string
	Command string
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct{}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// DefaultPath returns ~/.ch/config.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("can't get home dir: %w", err)
	}
	return filepath.Join(home, ".ch", "config.toml"), nil
}

// ResolvePath picks the config path: explicit flag, then CH_CONFIG, then the default
func ResolvePath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, nil
	}
	return DefaultPath()
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data, formatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if formatFor(path) == FormatYAML {
		data, err = yaml.Marshal(config)
	} else {
		data, err = toml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Format is a config file encoding
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes and normalizes a config document
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				return nil, fmt.Errorf("failed to parse config at line %d column %d: %w", row, col, err)
			}
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize merges legacy connections into commands
func (c *Config) normalize() error {
	if c.Groups == nil {
		c.Groups = make(map[string]Group)
	}
	for name, g := range c.Groups {
		merged := make(map[string]string, len(g.Commands)+len(g.Connections))
		for cmd, s := range g.Commands {
			merged[cmd] = s
		}
		for cmd, s := range g.Connections {
			if _, dup := merged[cmd]; dup {
				return fmt.Errorf("%w: %q in group %q is defined under both commands and connections", ErrDuplicateCommand, cmd, name)
			}
			merged[cmd] = s
		}
		c.Groups[name] = Group{Commands: merged}
	}
	return nil
}

// ShellOrDefault returns the configured shell or /bin/sh
func (c *Config) ShellOrDefault() string {
	if c == nil || strings.TrimSpace(c.Shell) == "" {
		return DefaultShell
	}
	return c.Shell
}

// Catalog converts the loaded groups into a catalog
func (c *Config) Catalog() *domain.Catalog {
	groups := make(map[string]map[string]string, len(c.Groups))
	for name, g := range c.Groups {
		groups[name] = g.Commands
	}
	return domain.NewCatalog(groups)
}

// EmptyCommands lists commands with a blank command string, sorted
func (c *Config) EmptyCommands() []EmptyCommand {
	var empty []EmptyCommand
	for name, g := range c.Groups {
		for cmd, s := range g.Commands {
			if strings.TrimSpace(s) == "" {
				empty = append(empty, EmptyCommand{Group: name, Command: cmd})
			}
		}
	}
	sort.Slice(empty, func(i, j int) bool {
		if empty[i].Group != empty[j].Group {
			return empty[i].Group < empty[j].Group
		}
		return empty[i].Command < empty[j].Command
	})
	return empty
}

// DefaultConfig returns the starter configuration written by init
func DefaultConfig() *Config {
	return &Config{
		Shell: DefaultShell,
		Groups: map[string]Group{
			"system": {Commands: map[string]string{
				"disk":   "df -h",
				"memory": "free -h",
				"uptime": "uptime",
			}},
			"network": {Commands: map[string]string{
				"ports": "ss -tulpn",
				"ip":    "ip -brief address",
			}},
		},
	}
}
