package models

import (
	"gorm.io/gorm"
)

type DesignType struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
}
