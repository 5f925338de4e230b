package dto

import (
	"time"
)

// MessageResponse is returned by operations whose result is a confirmation only
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service liveness and per-collection record counts
type HealthResponse struct {
	Status     string         `json:"status" example:"healthy"`
	Timestamp  time.Time      `json:"timestamp"`
	DataCounts map[string]int `json:"data_counts"`
}

// BannerResponse is the service banner served at the root path
type BannerResponse struct {
	Status    string              `json:"status"`
	Message   string              `json:"message"`
	Endpoints map[string][]string `json:"endpoints"`
}
