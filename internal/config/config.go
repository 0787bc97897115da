package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chaz8081/melk-led/internal/state"
)

// Config holds all application configuration.
type Config struct {
	Devices   []DeviceConfig `yaml:"devices"`
	StateFile string         `yaml:"state_file"`
	Timing    TimingConfig   `yaml:"timing"`
	MQTT      MQTTConfig     `yaml:"mqtt"`
	HTTP      HTTPConfig     `yaml:"http"`
	LogLevel  string         `yaml:"log_level"`
	LogFormat string         `yaml:"log_format"` // "text", "json" or "journal"
}

// DeviceConfig identifies one strip.
type DeviceConfig struct {
	Address string `yaml:"address"` // MAC on Linux, CoreBluetooth UUID on macOS
	Name    string `yaml:"name"`
}

// DisplayName returns Name, or a name derived from the address.
func (d DeviceConfig) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return "MELK " + d.Address
}

// TimingConfig holds the BLE pacing and recovery timings.
type TimingConfig struct {
	WriteDelay        time.Duration `yaml:"write_delay"`
	ConnectDelay      time.Duration `yaml:"connect_delay"`
	ReconnectDelay    time.Duration `yaml:"reconnect_delay"`
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
	RetryAttempts     int           `yaml:"retry_attempts"`
	RetryBackoff      time.Duration `yaml:"retry_backoff"`
	MicSettleDelay    time.Duration `yaml:"mic_settle_delay"`
	ScanTimeout       time.Duration `yaml:"scan_timeout"`
}

// MQTTConfig holds the Home Assistant bridge settings. An empty Broker
// disables the bridge.
type MQTTConfig struct {
	Broker          string `yaml:"broker"` // e.g. "tcp://localhost:1883"
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	ClientID        string `yaml:"client_id"`
	DiscoveryPrefix string `yaml:"discovery_prefix"`
	BaseTopic       string `yaml:"base_topic"`
}

// HTTPConfig holds the status API settings. An empty Listen disables it.
type HTTPConfig struct {
	Listen string `yaml:"listen"`
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "melk-led")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		StateFile: state.DefaultPath(),
		Timing: TimingConfig{
			WriteDelay:        150 * time.Millisecond,
			ConnectDelay:      3 * time.Second,
			ReconnectDelay:    5 * time.Second,
			HeartbeatInterval: 30 * time.Second,
			RetryAttempts:     3,
			RetryBackoff:      250 * time.Millisecond,
			MicSettleDelay:    200 * time.Millisecond,
			ScanTimeout:       10 * time.Second,
		},
		MQTT: MQTTConfig{
			DiscoveryPrefix: "homeassistant",
			BaseTopic:       "melk-led",
		},
		HTTP: HTTPConfig{
			Listen: ":9105",
		},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads and parses a YAML config file. Missing fields are filled
// with defaults. Tilde (~) in state_file is expanded to the user's home directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.StateFile = expandTilde(cfg.StateFile)
	for i := range cfg.Devices {
		cfg.Devices[i].Address = strings.TrimSpace(cfg.Devices[i].Address)
	}

	return cfg, nil
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Devices))
	for i, d := range c.Devices {
		if d.Address == "" {
			return fmt.Errorf("devices[%d].address must not be empty", i)
		}
		key := strings.ToUpper(d.Address)
		if seen[key] {
			return fmt.Errorf("devices[%d].address %q is listed twice", i, d.Address)
		}
		seen[key] = true
	}

	if c.StateFile == "" {
		return fmt.Errorf("state_file must not be empty")
	}

	t := c.Timing
	for name, d := range map[string]time.Duration{
		"timing.write_delay":      t.WriteDelay,
		"timing.connect_delay":    t.ConnectDelay,
		"timing.retry_backoff":    t.RetryBackoff,
		"timing.mic_settle_delay": t.MicSettleDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}
	if t.ReconnectDelay <= 0 {
		return fmt.Errorf("timing.reconnect_delay must be > 0")
	}
	if t.HeartbeatInterval <= 0 {
		return fmt.Errorf("timing.heartbeat_interval must be > 0")
	}
	if t.ScanTimeout <= 0 {
		return fmt.Errorf("timing.scan_timeout must be > 0")
	}
	if t.RetryAttempts < 1 {
		return fmt.Errorf("timing.retry_attempts must be >= 1, got %d", t.RetryAttempts)
	}

	if c.MQTT.Broker != "" {
		if c.MQTT.BaseTopic == "" {
			return fmt.Errorf("mqtt.base_topic must not be empty when mqtt.broker is set")
		}
		if c.MQTT.DiscoveryPrefix == "" {
			return fmt.Errorf("mqtt.discovery_prefix must not be empty when mqtt.broker is set")
		}
		if strings.ContainsAny(c.MQTT.BaseTopic, "+#") {
			return fmt.Errorf("mqtt.base_topic must not contain wildcards, got %q", c.MQTT.BaseTopic)
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "text", "json", "journal":
	default:
		return fmt.Errorf("log_format must be text, json, or journal, got %q", c.LogFormat)
	}

	return nil
}

// defaultConfigYAML is written by WriteDefault. It mirrors Default() and
// documents every field.
const defaultConfigYAML = `# melk-led configuration
#
# Strips to manage. Find addresses with "melk-led scan".
devices: []
#  - address: "BE:FF:20:00:0A:1C"
#    name: "Living room"

# Last known power/color/brightness per strip.
state_file: ~/.local/share/melk-led/state.json

timing:
  write_delay: 150ms        # pause after every frame
  connect_delay: 3s         # grace period before the first connect
  reconnect_delay: 5s       # retry delay after a failed connect
  heartbeat_interval: 30s   # link liveness check
  retry_attempts: 3         # per write and connect
  retry_backoff: 250ms
  mic_settle_delay: 200ms   # between static color and microphone enable
  scan_timeout: 10s

# Home Assistant bridge. Leave broker empty to disable.
mqtt:
  broker: ""                # e.g. tcp://localhost:1883
  username: ""
  password: ""
  client_id: ""             # random when empty
  discovery_prefix: homeassistant
  base_topic: melk-led

# Status API (/healthz, /metrics, /api/devices). Leave listen empty to disable.
http:
  listen: ":9105"

log_level: info             # debug, info, warn, error
log_format: text            # text, json, journal
`

// WriteDefault writes the default config to DefaultConfigPath if no file
// exists there yet. It returns the path written, or "" if a config already
// exists.
func WriteDefault() (string, error) {
	path := DefaultConfigPath()
	if path == "config.yaml" {
		return "", fmt.Errorf("cannot determine home directory")
	}

	if _, err := os.Stat(path); err == nil {
		return "", nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("checking config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}
	return path, nil
}

// expandTilde replaces a leading ~ with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
