package models

import (
	"gorm.io/gorm"
)

const (
	// SettingMaxRevisionRequests caps revision requests per image.
	SettingMaxRevisionRequests = "max_revision_requests"

	// DefaultMaxRevisionRequests applies when the setting row is absent.
	DefaultMaxRevisionRequests = 2
)

type Setting struct {
	gorm.Model
	Key   string `json:"key" gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"not null"`
}
