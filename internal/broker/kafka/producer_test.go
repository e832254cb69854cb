package kafkabroker

import (
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer(t *testing.T) {
	t.Run("requires brokers", func(t *testing.T) {
		_, err := NewProducer(ProducerConfig{Topic: "long_running_queries"})
		assert.ErrorIs(t, err, ErrNoBrokers)
	})

	t.Run("applies defaults", func(t *testing.T) {
		p, err := NewProducer(ProducerConfig{Brokers: []string{"localhost:9092"}, Topic: "long_running_queries"})
		require.NoError(t, err)
		defer p.Close()

		assert.Equal(t, "long_running_queries", p.writer.Topic)
		assert.Equal(t, defaultBatchTimeout, p.writer.BatchTimeout)
		assert.Equal(t, defaultWriteTimeout, p.writer.WriteTimeout)
		assert.IsType(t, &kafka.Hash{}, p.writer.Balancer)
	})

	t.Run("keeps explicit timeouts", func(t *testing.T) {
		p, err := NewProducer(ProducerConfig{
			Brokers:      []string{"a:9092", "b:9092"},
			Topic:        "alerts",
			BatchTimeout: time.Second,
			WriteTimeout: 2 * time.Second,
		})
		require.NoError(t, err)
		defer p.Close()

		assert.Equal(t, time.Second, p.writer.BatchTimeout)
		assert.Equal(t, 2*time.Second, p.writer.WriteTimeout)
	})
}
