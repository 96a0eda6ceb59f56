package handler

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/api/middleware"
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/redis"
	"Boomer/internal/pkg/response"
	"Boomer/internal/pkg/security"
	"Boomer/internal/pkg/util"
	"Boomer/internal/service"
	"context"
	"fmt"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsMaxFrame   = 64 << 10
	wsSendBuffer = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WsHandler 评价实时通道：客户端可通过帧操作评价，所有变更经 Redis 广播给每个连接
type WsHandler struct {
	reviewSvc service.ReviewService
	revoked   middleware.RevocationCheck
}

func NewWsHandler(reviewSvc service.ReviewService, revoked middleware.RevocationCheck) *WsHandler {
	return &WsHandler{reviewSvc: reviewSvc, revoked: revoked}
}

func (s *WsHandler) Connect(c *gin.Context) {
	// 鉴权，未携带 token 时只能读取与接收广播
	var claims *security.UserClaims
	if token := c.Query("token"); token != "" {
		var err error
		claims, err = s.authenticate(c.Request.Context(), token)
		if err != nil {
			log.Warn("WS 鉴权失败", "err", err)
			response.Error(c, service.ErrTokenInvalid)
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := redis.Subscribe(ctx, consts.ReviewChannel)
	defer func() {
		_ = pubsub.Close()
	}()

	log.Info("WS 连接已建立", "authenticated", claims != nil)

	send := make(chan []byte, wsSendBuffer)
	stopChan := make(chan struct{})

	// 读循环：处理客户端帧，断开时通知写循环
	go func() {
		defer close(stopChan)
		conn.SetReadLimit(wsMaxFrame)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			_, frame, err := conn.ReadMessage()
			if err != nil {
				return
			}
			reply := s.handleFrame(ctx, claims, frame)
			if reply == nil {
				continue
			}
			data, err := json.Marshal(reply)
			if err != nil {
				continue
			}
			select {
			case send <- data:
			case <-ctx.Done():
				return
			}
		}
	}()

	// 写循环：Redis 广播、单播回复与心跳共用一个写者
	redisCh := pubsub.Channel()
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-redisCh:
			if !ok {
				return
			}
			if err := s.write(conn, websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Error("WS 推送失败", "err", err)
				return
			}
		case data := <-send:
			if err := s.write(conn, websocket.TextMessage, data); err != nil {
				log.Error("WS 回复失败", "err", err)
				return
			}
		case <-ticker.C:
			if err := s.write(conn, websocket.PingMessage, nil); err != nil {
				return
			}
		case <-stopChan:
			log.Info("WS 连接已断开")
			return
		}
	}
}

func (s *WsHandler) authenticate(ctx context.Context, token string) (*security.UserClaims, error) {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	if s.revoked == nil {
		return claims, nil
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.revoked(ctx, signature)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, service.ErrTokenInvalid
	}
	return claims, nil
}

func (s *WsHandler) write(conn *websocket.Conn, messageType int, data []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteMessage(messageType, data)
}

// handleFrame 处理一帧请求，返回需要单独回给调用方的响应；写操作的结果通过广播下发
func (s *WsHandler) handleFrame(ctx context.Context, claims *security.UserClaims, frame []byte) *dto.WsResponse {
	var req dto.WsRequest
	if err := json.Unmarshal(frame, &req); err != nil {
		return wsError(service.ErrParamInvalid)
	}

	switch req.Event {
	case consts.ReviewActionCreate, consts.ReviewActionUpdate:
		if claims == nil {
			return wsError(service.UnauthorizedError)
		}
		var body dto.ReviewDTO
		if err := decodeWsData(req.Data, &body); err != nil {
			return wsError(err)
		}
		var err error
		if req.Event == consts.ReviewActionCreate {
			_, err = s.reviewSvc.AddOrUpdateReview(ctx, claims.UserID, claims.UserName, &body)
		} else {
			_, err = s.reviewSvc.UpdateReview(ctx, claims.UserID, claims.UserName, &body)
		}
		if err != nil {
			return wsError(err)
		}
		return nil

	case consts.ReviewActionDelete:
		if claims == nil {
			return wsError(service.UnauthorizedError)
		}
		var body dto.DeleteReviewDTO
		if err := decodeWsData(req.Data, &body); err != nil {
			return wsError(err)
		}
		if _, err := s.reviewSvc.DeleteReview(ctx, body.MovieID, claims.UserID); err != nil {
			return wsError(err)
		}
		return nil

	case consts.ReviewActionList:
		var body dto.DeleteReviewDTO
		if err := decodeWsData(req.Data, &body); err != nil {
			return wsError(err)
		}
		thread, err := s.reviewSvc.GetReviews(ctx, body.MovieID)
		if err != nil {
			return wsError(err)
		}
		return &dto.WsResponse{Event: consts.ReviewActionList, Data: thread}

	default:
		return wsError(service.ErrParamInvalid)
	}
}

func decodeWsData(raw json.RawMessage, obj any) error {
	if len(raw) == 0 {
		return service.ErrParamInvalid
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return service.ErrParamInvalid
	}
	if err := util.ValidateDTO(obj); err != nil {
		return fmt.Errorf("%w: %v", service.ErrParamInvalid, err)
	}
	return nil
}

func wsError(err error) *dto.WsResponse {
	message := err.Error()
	if _, ok := service.StatusOf(err); !ok {
		log.Error("WS 请求处理失败", "err", err)
		message = service.UnExpectedError.Error()
	}
	return &dto.WsResponse{Event: consts.WsEventError, Message: message}
}
