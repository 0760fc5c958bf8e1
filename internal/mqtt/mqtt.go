package mqtt

import (
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Mavwarf/assetgen/internal/config"
	"github.com/Mavwarf/assetgen/internal/report"
)

const timeout = 5 * time.Second

// PublishSummary sends s to the configured broker and topic.
func PublishSummary(cfg config.MQTT, s report.Summary) error {
	payload, err := s.Payload()
	if err != nil {
		return fmt.Errorf("mqtt: encode: %w", err)
	}
	return Publish(cfg, payload)
}

// Publish connects to the broker, publishes payload at QoS 1 and
// disconnects. Each invocation creates a fresh connection; a run
// publishes at most once.
func Publish(cfg config.MQTT, payload []byte) error {
	topic := cfg.Topic
	if topic == "" {
		topic = config.DefaultMQTTTopic
	}

	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(timeout)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	client := pahomqtt.NewClient(opts)
	tok := client.Connect()
	if !tok.WaitTimeout(timeout) {
		return fmt.Errorf("mqtt: connect timeout")
	}
	if tok.Error() != nil {
		return fmt.Errorf("mqtt: connect: %w", tok.Error())
	}
	defer client.Disconnect(250)

	pub := client.Publish(topic, 1, false, payload)
	if !pub.WaitTimeout(timeout) {
		return fmt.Errorf("mqtt: publish timeout")
	}
	if pub.Error() != nil {
		return fmt.Errorf("mqtt: publish: %w", pub.Error())
	}
	return nil
}
