package models

import (
	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	ImageID  uint `json:"image_id" gorm:"not null;index"`
	AuthorID uint `json:"author_id" gorm:"not null;index"`
	// Role of the author at write time. Deliberately not re-derived from the
	// user row, so later role changes don't rewrite old threads.
	AuthorRole string `json:"author_role" gorm:"not null"`
	// Uploader of the image, denormalized for the pending-reply query.
	DesignerID uint   `json:"designer_id" gorm:"not null;index"`
	Content    string `json:"content" gorm:"type:text;not null"`
	ParentID   *uint  `json:"parent_id,omitempty" gorm:"index"`
	IsDeleted  bool   `json:"is_deleted" gorm:"not null;default:false"`

	// Relationships
	Image  Image `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE" json:"-"`
	Author User  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}
