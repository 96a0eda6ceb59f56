package logger

import (
	"Boomer/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"strings"
	"time"
)

var LogWriter io.Writer = os.Stdout

// InitLogger 初始化全局 slog，Logstash 可达时同时上报远端
func InitLogger(cfg config.LogstashConfig) {
	opts := &log.HandlerOptions{Level: parseLevel(cfg.Level)}
	hStdout := log.NewJSONHandler(os.Stdout, opts)

	var finalHandler log.Handler = hStdout

	conn, err := net.DialTimeout("tcp", cfg.Address, 3*time.Second)
	if err == nil {
		hRemote := log.NewJSONHandler(conn, opts).
			WithAttrs([]log.Attr{
				log.String("target_index", cfg.Index),
				log.String("log_token", cfg.Token),
			})

		finalHandler = &TeeHandler{
			handlers: []log.Handler{hStdout, &RemoteFilterHandler{next: hRemote}},
		}
		LogWriter = io.MultiWriter(os.Stdout, conn)
	} else {
		log.Warn("Failed to connect to Logstash, logging to stdout only", "addr", cfg.Address, "err", err)
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

// truncate 截断过长的请求/响应体
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "...[truncated]"
}
