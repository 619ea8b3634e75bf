package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atelierhq/design-portal/models"
	"gorm.io/gorm"
)

// PostComment attaches a comment to an image, optionally as a reply. The
// author's role and the image's designer are copied onto the row at write
// time so the thread stays stable if either record changes later.
func (s *Service) PostComment(imageID, authorID uint, content string, parentID *uint) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", models.ErrInvalidInput)
	}

	var image models.Image
	if err := s.db.First(&image, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: image %d", models.ErrNotFound, imageID)
		}
		return nil, err
	}

	var author models.User
	if err := s.db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", models.ErrNotFound, authorID)
		}
		return nil, err
	}

	if parentID != nil {
		var parent models.Comment
		if err := s.db.First(&parent, *parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: parent comment %d", models.ErrNotFound, *parentID)
			}
			return nil, err
		}
		if parent.ImageID != imageID {
			return nil, fmt.Errorf("%w: parent comment belongs to another image", models.ErrInvalidInput)
		}
	}

	comment := models.Comment{
		ImageID:    imageID,
		AuthorID:   authorID,
		AuthorRole: author.Role,
		DesignerID: image.DesignerID,
		Content:    content,
		ParentID:   parentID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// CommentsForImage returns the full visible thread of an image, oldest first.
func (s *Service) CommentsForImage(imageID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.
		Where("image_id = ? AND is_deleted = ?", imageID, false).
		Order("created_at asc").
		Find(&comments).Error
	return comments, err
}

// PendingCommentsForDesigner returns top-level client comments on the
// designer's images that have no designer reply yet. The view is recomputed
// on every call; there is no cached unanswered flag.
func (s *Service) PendingCommentsForDesigner(designerID uint) ([]models.Comment, error) {
	answered := s.db.Model(&models.Comment{}).
		Select("parent_id").
		Where("author_role = ? AND parent_id IS NOT NULL AND is_deleted = ?",
			models.RoleDesigner, false)

	var comments []models.Comment
	err := s.db.
		Where("designer_id = ? AND author_role = ? AND parent_id IS NULL AND is_deleted = ?",
			designerID, models.RoleClient, false).
		Where("id NOT IN (?)", answered).
		Order("created_at asc").
		Find(&comments).Error
	return comments, err
}
