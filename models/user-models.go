package models

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "ADMIN"
	RoleDesigner = "DESIGNER"
	RoleClient   = "CLIENT"
)

// ValidRole reports whether role is one of the three portal roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleDesigner || role == RoleClient
}

type User struct {
	gorm.Model
	Identifier             string `json:"identifier" gorm:"uniqueIndex;not null"`
	Name                   string `json:"name" gorm:"not null"`
	Email                  string `json:"email,omitempty"`
	Role                   string `json:"role" gorm:"not null;index"`
	RevisionRulesConfirmed bool   `json:"revision_rules_confirmed" gorm:"not null;default:false"`
}
