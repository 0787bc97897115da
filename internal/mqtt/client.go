// Package mqtt exposes device sessions to Home Assistant over MQTT
// discovery.
package mqtt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// Message is the part of an incoming message the bridge reads.
type Message interface {
	Topic() string
	Payload() []byte
}

// Handler handles one incoming message.
type Handler func(Message)

// ClientAPI is the minimal surface the bridge needs. It lets the bridge be
// tested without a live broker.
type ClientAPI interface {
	Subscribe(topic string, h Handler) error
	Publish(topic string, payload []byte, retain bool) error
	// OnConnect registers fn to run after every (re)connect.
	OnConnect(fn func())
}

// Options configures the broker connection.
type Options struct {
	Broker   string // tcp://, mqtt://, ssl://, ws:// or wss:// URL
	Username string
	Password string
	ClientID string // random when empty

	// WillTopic receives a retained "offline" when the connection is lost.
	WillTopic string
}

// Client wraps a paho client.
type Client struct {
	cli paho.Client

	mu        sync.Mutex
	onConnect []func()
}

// Compile-time check that Client implements ClientAPI.
var _ ClientAPI = (*Client)(nil)

// NewClient builds a client. Call Connect to open the connection.
func NewClient(o Options) *Client {
	c := &Client{}

	opts := paho.NewClientOptions()
	opts.AddBroker(normalizeBroker(o.Broker))
	clientID := strings.TrimSpace(o.ClientID)
	if clientID == "" {
		clientID = "melk-led-" + uuid.NewString()[:8]
	}
	opts.SetClientID(clientID)
	if o.Username != "" {
		opts.SetUsername(o.Username)
		opts.SetPassword(o.Password)
	}
	if o.WillTopic != "" {
		opts.SetWill(o.WillTopic, PayloadOffline, 1, true)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(2 * time.Second)
	opts.SetKeepAlive(30 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	// Commands drive slow BLE writes; run handlers concurrently so one strip
	// cannot stall the network loop.
	opts.SetOrderMatters(false)

	opts.OnConnect = func(_ paho.Client) {
		slog.Info("[MQTT] connected", "broker", o.Broker)
		c.mu.Lock()
		hooks := append([]func(){}, c.onConnect...)
		c.mu.Unlock()
		for _, fn := range hooks {
			fn()
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		slog.Warn("[MQTT] connection lost", "error", err)
	}

	c.cli = paho.NewClient(opts)
	return c
}

// Connect opens the connection. With connect-retry enabled paho keeps trying
// in the background, so Connect returns once the first attempt settles or
// ctx is done.
func (c *Client) Connect(ctx context.Context) error {
	tok := c.cli.Connect()
	select {
	case <-tok.Done():
		if err := tok.Error(); err != nil {
			return fmt.Errorf("mqtt connect: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnConnect registers fn to run after every successful (re)connect.
func (c *Client) OnConnect(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onConnect = append(c.onConnect, fn)
}

// Subscribe subscribes at QoS 1.
func (c *Client) Subscribe(topic string, h Handler) error {
	tok := c.cli.Subscribe(topic, 1, func(_ paho.Client, msg paho.Message) {
		h(msg)
	})
	if tok.Wait() && tok.Error() != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", topic, tok.Error())
	}
	slog.Debug("[MQTT] subscribed", "topic", topic)
	return nil
}

// Publish publishes at QoS 1.
func (c *Client) Publish(topic string, payload []byte, retain bool) error {
	tok := c.cli.Publish(topic, 1, retain, payload)
	if tok.Wait() && tok.Error() != nil {
		return fmt.Errorf("mqtt publish %s: %w", topic, tok.Error())
	}
	return nil
}

// Close disconnects, giving in-flight messages a moment to drain.
func (c *Client) Close() {
	if c == nil || c.cli == nil {
		return
	}
	c.cli.Disconnect(1000)
}

// normalizeBroker maps mqtt:// and tls:// schemes onto the ones paho knows.
func normalizeBroker(url string) string {
	url = strings.TrimSpace(url)
	switch {
	case strings.HasPrefix(url, "mqtt://"):
		return "tcp://" + strings.TrimPrefix(url, "mqtt://")
	case strings.HasPrefix(url, "mqtts://"):
		return "ssl://" + strings.TrimPrefix(url, "mqtts://")
	case strings.HasPrefix(url, "tls://"):
		return "ssl://" + strings.TrimPrefix(url, "tls://")
	case !strings.Contains(url, "://"):
		return "tcp://" + url
	}
	return url
}
