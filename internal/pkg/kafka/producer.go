package kafka

import (
	"Boomer/internal/api/config"
	"Boomer/internal/api/dto"
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ReviewEventProducer 评价变更后同步写入 Kafka，消息以 movie_id 为 Key 保证同一电影有序
type ReviewEventProducer struct {
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
}

func NewReviewEventProducer(cfg *config.Config) (*ReviewEventProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}
	return newReviewEventProducer(producer, cfg.KafkaReviewConsumer.Topic), nil
}

func newReviewEventProducer(producer sarama.SyncProducer, topic string) *ReviewEventProducer {
	return &ReviewEventProducer{producer: producer, topic: topic, now: time.Now}
}

func (p *ReviewEventProducer) NotifyReviews(_ context.Context, change *dto.ReviewChange) error {
	data, err := json.Marshal(&dto.ReviewEvent{
		Action:      change.Action,
		MovieID:     change.MovieID,
		ReviewCount: change.RatingCount,
		Rating:      change.Rating,
		OccurredAt:  p.now(),
	})
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(change.MovieID),
		Value: sarama.ByteEncoder(data),
	})
	if err != nil {
		return errors.Wrapf(err, "publish review event for movie %s", change.MovieID)
	}
	return nil
}

func (p *ReviewEventProducer) Close() error {
	return p.producer.Close()
}
