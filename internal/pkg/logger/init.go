package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer = os.Stdout

// InitLogger 初始化 slog，所有服务统一输出 JSON 到标准输出
func InitLogger(serviceName string) {
	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo}).
		WithAttrs([]log.Attr{
			log.String("service", serviceName),
		})

	logger := log.New(&ContextHandler{hStdout})
	log.SetDefault(logger)
}
