// Command melk-led drives MELK BLE LED strips and bridges them to Home
// Assistant over MQTT.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chaz8081/melk-led/internal/config"
	"github.com/chaz8081/melk-led/internal/logging"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "melk-led",
		Short:         "Control MELK BLE LED strips",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (default: ~/.config/melk-led/config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log_level from the config file")

	root.AddCommand(
		newRunCmd(opts),
		newScanCmd(opts),
		newSendCmd(opts),
		newEffectsCmd(),
		newConfigCmd(),
	)
	return root
}

// setup loads and validates the config, then installs the logger.
func (o *rootOptions) setup() (*config.Config, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfig loads the config from the specified path, or falls back to
// the default config path, or uses built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	defaultPath := config.DefaultConfigPath()
	if _, err := os.Stat(defaultPath); err == nil {
		cfg, err := config.Load(defaultPath)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", defaultPath, err)
		}
		slog.Debug("Config loaded", "path", defaultPath)
		return cfg, nil
	}

	slog.Debug("No config file found, using defaults")
	return config.Default(), nil
}
