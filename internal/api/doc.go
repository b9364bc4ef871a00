// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含了所有的 HTTP 處理器（handlers）。
// 它負責解析 HTTP 請求，構造對應的 JSON 回應內容。
package api
