package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// setupLogger 创建日志并设为默认
// level: debug info warn error（不区分大小写）; format: text json
func setupLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("无效的日志级别 '%s'", level)
	}
	options := &slog.HandlerOptions{Level: l}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, options)
	case "text", "":
		handler = slog.NewTextHandler(w, options)
	default:
		return nil, fmt.Errorf("无效的日志格式 '%s'", format)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}
