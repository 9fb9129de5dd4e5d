package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("命令执行失败", "error", err)
		os.Exit(1)
	}
}
