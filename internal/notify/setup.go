package notify

import (
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-queue/internal/config"
)

// FromConfig escolhe o transporte: Kafka quando há brokers, log caso contrário.
// O close devolvido deve ser chamado no shutdown.
func FromConfig(cfg *config.Config) (Notifier, func() error) {
	messages := Messages{SiteURL: cfg.Site.URL}

	if len(cfg.Kafka.Brokers) == 0 {
		logrus.Warn("kafka brokers not configured, sms notifications will only be logged")
		return NewLogNotifier(messages), func() error { return nil }
	}

	logrus.WithFields(logrus.Fields{
		"brokers": cfg.Kafka.Brokers,
		"topic":   cfg.Kafka.SMSTopic,
	}).Info("sms notifications via kafka")

	n := NewKafkaNotifier(NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.SMSTopic), messages)
	return n, n.Close
}
