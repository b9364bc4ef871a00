package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"project_api/internal/api"
	"project_api/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 從配置文件與環境變數中讀取設置，如監聽埠號和專案識別碼等
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化 zap 日誌
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 設置 Gin 路由
	r := api.NewRouter(cfg, logger)

	// 啟動伺服器，監聽所有網路介面
	logger.Info("server starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("project", cfg.Project.ID),
	)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Fatal("Failed to run server", zap.Error(err))
	}
}
