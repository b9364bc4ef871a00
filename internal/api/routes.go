package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"project_api/internal/api/handlers"
	"project_api/internal/middleware"
	"project_api/pkg/config"
)

// NewRouter 創建 Gin 路由器並掛上日誌、跨域等中間件
func NewRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// 請求日誌與 panic 恢復
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.RequestID())

	// 允許任意來源的跨域請求
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	SetupRoutes(r, cfg)

	return r
}

// SetupRoutes 設置所有路由
func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	// 初始化 handlers
	projectHandler := handlers.NewProjectHandler(cfg.Project.ID)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 基本的健康檢查
	r.GET("/health", projectHandler.HealthCheck)

	// API 路由群組
	api := r.Group("/api")
	{
		api.GET("/projects", projectHandler.ListProjects)   // 獲取專案列表
		api.POST("/projects", projectHandler.CreateProject) // 創建專案
	}
}
