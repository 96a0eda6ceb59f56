package kafka

import (
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// CacheInvalidator 评价变更后需要失效的缓存
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type ReviewEventHandler struct {
	cache CacheInvalidator
}

func NewReviewEventHandler(cache CacheInvalidator) *ReviewEventHandler {
	return &ReviewEventHandler{cache: cache}
}

func (s *ReviewEventHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("review event consumer setup")
	return nil
}

func (s *ReviewEventHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("review event consumer cleanup")
	return nil
}

func (s *ReviewEventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("review event consume claim", "partition", claim.Partition())
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("review event process batch error", "err", err)
		return err
	}
	return nil
}

// logic 无法解析的消息直接跳过，缓存失效失败则交给批处理重试
func (s *ReviewEventHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToReviewEvent(msg)
	if err != nil {
		log.WarnContext(ctx, "skip malformed review event", "err", err)
		return nil
	}

	if err = s.cache.Invalidate(ctx); err != nil {
		return errors.Wrapf(err, "invalidate trending cache for movie %s", event.MovieID)
	}
	log.DebugContext(ctx, "trending cache invalidated", "movie_id", event.MovieID, "action", event.Action)
	return nil
}
