package kafka

import (
	"Newsroom/internal/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// Producer 工作流通知生产者
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg config.KafkaConfig) (*Producer, error) {
	saramaCfg := newSaramaConfig(cfg)

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

// SendMessage 同步发送一条文本通知
func (s *Producer) SendMessage(ctx context.Context, message string) error {
	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Value: sarama.StringEncoder(message),
	})
	if err != nil {
		log.ErrorContext(ctx, "send notification failed", "topic", s.topic, "err", err)
		return err
	}

	log.InfoContext(ctx, "notification sent", "topic", s.topic, "partition", partition, "offset", offset)
	return nil
}

func (s *Producer) Close() error {
	return s.producer.Close()
}
