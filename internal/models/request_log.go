package models

import (
	"time"

	"gorm.io/gorm"
)

type RequestStatus string

const (
	StatusSuccess RequestStatus = "SUCCESS"
	StatusError   RequestStatus = "ERROR"
)

type RequestLog struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	RequestID  string         `gorm:"type:varchar(64)" json:"requestId"`
	UserID     string         `gorm:"index" json:"userId,omitempty"`
	Endpoint   string         `gorm:"index" json:"endpoint"`
	Method     string         `json:"method"`
	Status     RequestStatus  `gorm:"type:varchar(10)" json:"status"`
	StatusCode int            `json:"statusCode"`
	DurationMs int64          `json:"durationMs"`
	IP         string         `json:"ip"`
	Timestamp  time.Time      `gorm:"index" json:"timestamp"`
	CreatedAt  time.Time      `json:"-"`
	UpdatedAt  time.Time      `json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

type RequestLogFilter struct {
	UserID   string
	Endpoint string
	From     time.Time
	To       time.Time
}
