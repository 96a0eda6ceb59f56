package redis

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/consts"
	"context"

	"github.com/goccy/go-json"
)

// ReviewBroadcaster 把评价区快照发布到 Redis 频道，由每个 WebSocket 节点转发给在线客户端
type ReviewBroadcaster struct{}

func NewReviewBroadcaster() *ReviewBroadcaster {
	return &ReviewBroadcaster{}
}

func (b *ReviewBroadcaster) NotifyReviews(ctx context.Context, change *dto.ReviewChange) error {
	data, err := json.Marshal(&dto.WsResponse{Event: change.Action, Data: change.Thread})
	if err != nil {
		return err
	}
	return Publish(ctx, consts.ReviewChannel, data)
}
