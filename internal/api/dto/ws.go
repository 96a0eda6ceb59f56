package dto

import "github.com/goccy/go-json"

// WsRequest 客户端发来的帧
type WsRequest struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WsResponse 推送给客户端的帧
type WsResponse struct {
	Event   string `json:"event"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
