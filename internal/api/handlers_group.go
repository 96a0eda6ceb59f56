package api

import "Boomer/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	MovieHandler   *handler.MovieHandler
	CommentHandler *handler.CommentHandler
	ReviewHandler  *handler.ReviewHandler
	UserHandler    *handler.UserHandler
	MediaHandler   *handler.MediaHandler
	WsHandler      *handler.WsHandler
}
