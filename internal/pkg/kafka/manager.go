package kafka

import (
	"Boomer/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	reviewConsumer sarama.ConsumerGroup
	reviewHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config, cache CacheInvalidator) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	reviewConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaReviewConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		reviewConsumer: reviewConsumer,
		reviewHandler:  NewReviewEventHandler(cache),
	}, nil
}

// Start 启动所有消费者，阻塞直到 ctx 结束
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		for err := range m.reviewConsumer.Errors() {
			log.Error("Review consumer error", "err", err)
		}
	}()

	go func() {
		topic := cfg.KafkaReviewConsumer.Topic
		log.Info("Review consumer started", "topic", topic)
		for {
			if err := m.reviewConsumer.Consume(ctx, []string{topic}, m.reviewHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.reviewConsumer.Close(); err != nil {
		log.Error("Failed to close review consumer", "err", err)
	}

	return nil
}
