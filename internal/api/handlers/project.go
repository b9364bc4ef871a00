package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"project_api/internal/models"
)

// ProjectHandler 處理與專案相關的請求
type ProjectHandler struct {
	projectID string
}

// NewProjectHandler 創建一個新的 ProjectHandler 實例
func NewProjectHandler(projectID string) *ProjectHandler {
	return &ProjectHandler{projectID: projectID}
}

// HealthCheck 處理健康檢查的請求
func (h *ProjectHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: now(),
		Project:   h.projectID,
	})
}

// ListProjects 處理獲取專案列表的請求
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, models.ProjectListResponse{
		Message:   "Projects API endpoint",
		Project:   h.projectID,
		Timestamp: now(),
	})
}

// CreateProject 處理創建專案的請求
// 請求主體可以是任意 JSON 值，會原樣放進回應的 data 欄位
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var data any
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ProjectCreatedResponse{
		Message:   "Project created",
		Data:      data,
		Timestamp: now(),
	})
}

// now 回傳 ISO-8601 格式的當前時間
func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
