package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ImageStatusPending           = "PENDING"
	ImageStatusApproved          = "APPROVED"
	ImageStatusRejected          = "REJECTED"
	ImageStatusRevisionRequested = "REVISION_REQUESTED"
)

type Image struct {
	gorm.Model
	URL      string `json:"url" gorm:"not null"`
	PublicID string `json:"public_id" gorm:"uniqueIndex;not null"`

	DesignerID uint `json:"designer_id" gorm:"not null;index"`
	ClientID   uint `json:"client_id" gorm:"not null;index"`
	// Snapshot of the client's name at upload time, kept stable across renames.
	ClientName   string `json:"client_name" gorm:"not null"`
	DesignTypeID uint   `json:"design_type_id" gorm:"not null;index"`

	Format string `json:"format"`
	Bytes  int64  `json:"bytes"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	Status               string     `json:"status" gorm:"not null;default:'PENDING';index"`
	RejectionReason      *string    `json:"rejection_reason,omitempty"`
	ClientFeedback       *string    `json:"client_feedback,omitempty"`
	ApprovedAt           *time.Time `json:"approved_at,omitempty"`
	RejectedAt           *time.Time `json:"rejected_at,omitempty"`
	RevisionRequestCount int        `json:"revision_request_count" gorm:"not null;default:0"`

	// Relationships
	Designer   User       `gorm:"foreignKey:DesignerID;constraint:OnDelete:CASCADE" json:"-"`
	Client     User       `gorm:"foreignKey:ClientID" json:"-"`
	DesignType DesignType `gorm:"foreignKey:DesignTypeID" json:"-"`
}
