package services

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// IKafkaService defines the interface for Kafka operations.
type IKafkaService interface {
	PushMessage(topic string, message []byte) error
}

// KafkaService implements IKafkaService using Sarama.
type KafkaService struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
}

// NewKafkaService creates a new KafkaService instance.
func NewKafkaService(brokers []string, logger *zap.Logger) (IKafkaService, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	logger.Info("Kafka producer connected successfully")
	return &KafkaService{producer: producer, logger: logger}, nil
}

// PushMessage sends a message to the specified Kafka topic.
func (s *KafkaService) PushMessage(topic string, message []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.StringEncoder(message),
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		s.logger.Error("Failed to send message to Kafka",
			zap.String("topic", topic), zap.Error(err))
		return err
	}
	s.logger.Debug("Message sent to Kafka",
		zap.String("topic", topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}
