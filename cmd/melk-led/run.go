package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/chaz8081/melk-led/internal/ble"
	"github.com/chaz8081/melk-led/internal/catalog"
	"github.com/chaz8081/melk-led/internal/config"
	"github.com/chaz8081/melk-led/internal/device"
	"github.com/chaz8081/melk-led/internal/events"
	"github.com/chaz8081/melk-led/internal/httpapi"
	"github.com/chaz8081/melk-led/internal/metrics"
	"github.com/chaz8081/melk-led/internal/mqtt"
	"github.com/chaz8081/melk-led/internal/state"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the daemon: keep strips connected and serve MQTT and HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.setup()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runDaemon(ctx, cfg)
		},
	}
}

func runDaemon(ctx context.Context, cfg *config.Config) error {
	if len(cfg.Devices) == 0 {
		return errors.New("no devices configured: add them under devices: in the config file (see 'melk-led scan')")
	}

	printBanner(cfg)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bus := events.New()
	d := deps{
		adapter: ble.NewTinyGoAdapter(),
		store:   state.NewStore(cfg.StateFile),
		metrics: metrics.New(reg),
		events:  bus,
	}
	cat := catalog.New()

	defer bus.OnConnectionChanged(func(ev events.ConnectionChanged) {
		slog.Info("[BLE] link changed", "device", ev.Address, "connected", ev.Connected)
	})()

	sessions := make([]*device.Session, 0, len(cfg.Devices))
	for _, dev := range cfg.Devices {
		s := newSession(cfg, dev, d)
		s.Start(ctx)
		sessions = append(sessions, s)
		slog.Info("[device] managing strip", "device", dev.DisplayName(), "address", dev.Address)
	}

	var bridge *mqtt.Bridge
	var client *mqtt.Client
	if cfg.MQTT.Broker != "" {
		client = mqtt.NewClient(mqtt.Options{
			Broker:    cfg.MQTT.Broker,
			Username:  cfg.MQTT.Username,
			Password:  cfg.MQTT.Password,
			ClientID:  cfg.MQTT.ClientID,
			WillTopic: mqtt.StatusTopic(cfg.MQTT.BaseTopic),
		})
		targets := make([]mqtt.Session, 0, len(sessions))
		for _, s := range sessions {
			targets = append(targets, s)
		}
		bridge = mqtt.NewBridge(client, cat, targets, mqtt.BridgeOptions{
			DiscoveryPrefix: cfg.MQTT.DiscoveryPrefix,
			BaseTopic:       cfg.MQTT.BaseTopic,
		})
		bridge.Start(ctx, bus)
		// With connect-retry on, the first connect blocks until the broker
		// is reachable, so it must not hold up startup.
		go func() {
			if err := client.Connect(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("[MQTT] connect failed", "broker", cfg.MQTT.Broker, "error", err)
			}
		}()
	}

	var httpSrv *http.Server
	if cfg.HTTP.Listen != "" {
		snapshotters := make([]httpapi.Snapshotter, 0, len(sessions))
		for _, s := range sessions {
			snapshotters = append(snapshotters, s)
		}
		httpSrv = &http.Server{
			Addr:         cfg.HTTP.Listen,
			Handler:      httpapi.NewServer(snapshotters, cat, reg).Handler(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			slog.Info("[HTTP] listening", "addr", cfg.HTTP.Listen)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("[HTTP] server error", "error", err)
			}
		}()
	}

	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		slog.Debug("sd_notify failed", "error", err)
	}
	slog.Info("Ready", "devices", len(sessions))

	<-ctx.Done()
	slog.Info("Shutting down")
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)

	if httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("[HTTP] shutdown error", "error", err)
		}
		cancel()
	}
	if bridge != nil {
		bridge.Stop()
		client.Close()
	}

	var errs []error
	for _, s := range sessions {
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	slog.Info("Goodbye!")
	return errors.Join(errs...)
}

// printBanner displays the startup configuration summary.
func printBanner(cfg *config.Config) {
	fmt.Println("=== melk-led ===")
	for _, dev := range cfg.Devices {
		fmt.Printf("  Strip:   %s (%s)\n", dev.DisplayName(), dev.Address)
	}
	if cfg.MQTT.Broker != "" {
		fmt.Printf("  MQTT:    %s (base %s)\n", cfg.MQTT.Broker, cfg.MQTT.BaseTopic)
	} else {
		fmt.Println("  MQTT:    disabled")
	}
	if cfg.HTTP.Listen != "" {
		fmt.Printf("  HTTP:    %s\n", cfg.HTTP.Listen)
	}
	fmt.Printf("  State:   %s\n", cfg.StateFile)
	fmt.Printf("  Log:     %s\n", cfg.LogLevel)
	fmt.Println("================")
}
