package models

// HealthResponse 表示健康檢查的回應內容
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Project   string `json:"project"`
}

// ProjectListResponse 表示專案列表端點的回應內容
type ProjectListResponse struct {
	Message   string `json:"message"`
	Project   string `json:"project"`
	Timestamp string `json:"timestamp"`
}

// ProjectCreatedResponse 表示創建專案後的回應內容
// Data 欄位原封不動帶回請求主體的 JSON 值
type ProjectCreatedResponse struct {
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}
