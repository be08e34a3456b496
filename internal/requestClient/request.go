package requestClient

import (
	"net/http"
	"runtime"
	"time"
)

// New 构建REST请求客户端, timeout为0时不限制
func New(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		MaxIdleConns:    runtime.NumCPU() * 250,
		IdleConnTimeout: 90 * time.Second,
	}
	return &http.Client{
		Transport: tr,
		Timeout:   timeout,
	}
}
