package kafkabroker

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const (
	defaultBatchTimeout = 50 * time.Millisecond
	defaultWriteTimeout = 5 * time.Second

	headerContentType = "content-type"
	contentTypeJSON   = "application/json"
)

var ErrNoBrokers = errors.New("kafka: no brokers configured")

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	WriteTimeout time.Duration
}

// Producer publishes JSON events keyed by server id, so alerts for one server
// stay ordered within a partition.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(cfg ProducerConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = defaultBatchTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			WriteTimeout:           cfg.WriteTimeout,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		topic: cfg.Topic,
	}, nil
}

func (p *Producer) SendMessage(ctx context.Context, key, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     key,
		Value:   value,
		Time:    time.Now(),
		Headers: []kafka.Header{{Key: headerContentType, Value: []byte(contentTypeJSON)}},
	})
	if err != nil {
		log.WithFields(log.Fields{"topic": p.topic, "key": string(key)}).Errorf("Failed to send message: %v", err)
		return err
	}
	log.WithFields(log.Fields{"topic": p.topic, "key": string(key)}).Debug("Message sent")
	return nil
}

func (p *Producer) Close() error {
	log.WithField("topic", p.topic).Info("Closing Kafka producer...")
	return p.writer.Close()
}
