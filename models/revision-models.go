package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RevisionStatusPending = "PENDING"
	RevisionStatusDone    = "DONE"
)

type RevisionRequest struct {
	gorm.Model
	ImageID    uint       `json:"image_id" gorm:"not null;index"`
	ClientID   uint       `json:"client_id" gorm:"not null;index"`
	DesignerID uint       `json:"designer_id" gorm:"not null;index"`
	Feedback   string     `json:"feedback" gorm:"type:text;not null"`
	Status     string     `json:"status" gorm:"not null;default:'PENDING'"`
	DoneAt     *time.Time `json:"done_at,omitempty"`

	// Relationships
	Image Image `gorm:"foreignKey:ImageID" json:"-"`
}

// RevisionRule is one entry of the ordered policy list clients must confirm
// before requesting revisions. Order values are kept as a dense 1..N sequence.
type RevisionRule struct {
	gorm.Model
	Order int    `json:"order" gorm:"column:rule_order;not null"`
	Text  string `json:"text" gorm:"type:text;not null"`
}
