package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chaz8081/melk-led/internal/state"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.StateFile != state.DefaultPath() {
		t.Errorf("StateFile = %q, want %q", cfg.StateFile, state.DefaultPath())
	}
	if len(cfg.Devices) != 0 {
		t.Errorf("Devices length = %d, want 0", len(cfg.Devices))
	}
	if cfg.Timing.WriteDelay != 150*time.Millisecond {
		t.Errorf("Timing.WriteDelay = %v, want 150ms", cfg.Timing.WriteDelay)
	}
	if cfg.Timing.HeartbeatInterval != 30*time.Second {
		t.Errorf("Timing.HeartbeatInterval = %v, want 30s", cfg.Timing.HeartbeatInterval)
	}
	if cfg.Timing.RetryAttempts != 3 {
		t.Errorf("Timing.RetryAttempts = %d, want 3", cfg.Timing.RetryAttempts)
	}
	if cfg.MQTT.Broker != "" {
		t.Errorf("MQTT.Broker = %q, want empty", cfg.MQTT.Broker)
	}
	if cfg.MQTT.DiscoveryPrefix != "homeassistant" {
		t.Errorf("MQTT.DiscoveryPrefix = %q, want %q", cfg.MQTT.DiscoveryPrefix, "homeassistant")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad(t *testing.T) {
	yamlContent := `
devices:
  - address: " BE:FF:20:00:0A:1C "
    name: Desk
  - address: BE:FF:20:00:0B:2D
state_file: /tmp/melk-state.json
timing:
  write_delay: 200ms
  heartbeat_interval: 1m
  retry_attempts: 5
mqtt:
  broker: tcp://broker:1883
  base_topic: leds
log_level: debug
log_format: json
`
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Devices) != 2 {
		t.Fatalf("Devices length = %d, want 2", len(cfg.Devices))
	}
	if cfg.Devices[0].Address != "BE:FF:20:00:0A:1C" {
		t.Errorf("Devices[0].Address = %q, want trimmed address", cfg.Devices[0].Address)
	}
	if cfg.Devices[0].DisplayName() != "Desk" {
		t.Errorf("Devices[0].DisplayName() = %q, want %q", cfg.Devices[0].DisplayName(), "Desk")
	}
	if cfg.Devices[1].DisplayName() != "MELK BE:FF:20:00:0B:2D" {
		t.Errorf("Devices[1].DisplayName() = %q", cfg.Devices[1].DisplayName())
	}
	if cfg.StateFile != "/tmp/melk-state.json" {
		t.Errorf("StateFile = %q, want %q", cfg.StateFile, "/tmp/melk-state.json")
	}
	if cfg.Timing.WriteDelay != 200*time.Millisecond {
		t.Errorf("Timing.WriteDelay = %v, want 200ms", cfg.Timing.WriteDelay)
	}
	if cfg.Timing.HeartbeatInterval != time.Minute {
		t.Errorf("Timing.HeartbeatInterval = %v, want 1m", cfg.Timing.HeartbeatInterval)
	}
	if cfg.Timing.RetryAttempts != 5 {
		t.Errorf("Timing.RetryAttempts = %d, want 5", cfg.Timing.RetryAttempts)
	}
	if cfg.Timing.ReconnectDelay != 5*time.Second {
		t.Errorf("Timing.ReconnectDelay = %v, want default 5s", cfg.Timing.ReconnectDelay)
	}
	if cfg.MQTT.Broker != "tcp://broker:1883" || cfg.MQTT.BaseTopic != "leds" {
		t.Errorf("MQTT = %+v", cfg.MQTT)
	}
	if cfg.MQTT.DiscoveryPrefix != "homeassistant" {
		t.Errorf("MQTT.DiscoveryPrefix = %q, want default", cfg.MQTT.DiscoveryPrefix)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	yamlContent := `
state_file: ~/melk/state.json
`
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := filepath.Join(home, "melk/state.json")
	if cfg.StateFile != expected {
		t.Errorf("StateFile = %q, want %q", cfg.StateFile, expected)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("timing: [not a map"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("Load() should fail on invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid devices",
			modify: func(c *Config) {
				c.Devices = []DeviceConfig{{Address: "AA:BB"}, {Address: "CC:DD"}}
			},
			wantErr: false,
		},
		{
			name:    "empty device address",
			modify:  func(c *Config) { c.Devices = []DeviceConfig{{Name: "x"}} },
			wantErr: true,
		},
		{
			name: "duplicate device address",
			modify: func(c *Config) {
				c.Devices = []DeviceConfig{{Address: "aa:bb"}, {Address: "AA:BB"}}
			},
			wantErr: true,
		},
		{
			name:    "empty state file",
			modify:  func(c *Config) { c.StateFile = "" },
			wantErr: true,
		},
		{
			name:    "negative write delay",
			modify:  func(c *Config) { c.Timing.WriteDelay = -time.Second },
			wantErr: true,
		},
		{
			name:    "zero write delay",
			modify:  func(c *Config) { c.Timing.WriteDelay = 0 },
			wantErr: false,
		},
		{
			name:    "zero heartbeat",
			modify:  func(c *Config) { c.Timing.HeartbeatInterval = 0 },
			wantErr: true,
		},
		{
			name:    "zero reconnect delay",
			modify:  func(c *Config) { c.Timing.ReconnectDelay = 0 },
			wantErr: true,
		},
		{
			name:    "zero retry attempts",
			modify:  func(c *Config) { c.Timing.RetryAttempts = 0 },
			wantErr: true,
		},
		{
			name: "mqtt without base topic",
			modify: func(c *Config) {
				c.MQTT.Broker = "tcp://localhost:1883"
				c.MQTT.BaseTopic = ""
			},
			wantErr: true,
		},
		{
			name: "mqtt wildcard base topic",
			modify: func(c *Config) {
				c.MQTT.Broker = "tcp://localhost:1883"
				c.MQTT.BaseTopic = "leds/#"
			},
			wantErr: true,
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.LogLevel = "invalid" },
			wantErr: true,
		},
		{
			name:    "invalid log format",
			modify:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteDefault_CreatesFile(t *testing.T) {
	// Use a temp dir as fake home to avoid touching real config
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	path, err := WriteDefault()
	if err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	expectedPath := filepath.Join(tmpHome, ".config", "melk-led", "config.yaml")
	if path != expectedPath {
		t.Errorf("WriteDefault() path = %q, want %q", path, expectedPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}

	if !strings.HasPrefix(string(data), "# melk-led") {
		t.Error("written config should start with header comment")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("written config is not valid YAML: %v", err)
	}

	// Values should match defaults
	def := Default()
	if cfg.Timing != def.Timing {
		t.Errorf("written config Timing = %+v, want %+v", cfg.Timing, def.Timing)
	}
	if cfg.MQTT != def.MQTT {
		t.Errorf("written config MQTT = %+v, want %+v", cfg.MQTT, def.MQTT)
	}
	if cfg.HTTP != def.HTTP {
		t.Errorf("written config HTTP = %+v, want %+v", cfg.HTTP, def.HTTP)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of written config error = %v", err)
	}
	if loaded.StateFile != def.StateFile {
		t.Errorf("written config StateFile = %q, want %q", loaded.StateFile, def.StateFile)
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("written config does not validate: %v", err)
	}
}

func TestWriteDefault_NoOpIfExists(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	// Create config dir and file manually first
	configDir := filepath.Join(tmpHome, ".config", "melk-led")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	existingContent := []byte("log_level: debug\n")
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, existingContent, 0644); err != nil {
		t.Fatalf("failed to write existing config: %v", err)
	}

	// WriteDefault should return ("", nil) without overwriting
	path, err := WriteDefault()
	if err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if path != "" {
		t.Errorf("WriteDefault() path = %q, want empty string for existing file", path)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if string(data) != string(existingContent) {
		t.Error("WriteDefault() should not overwrite existing config file")
	}
}
