package workflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atelierhq/design-portal/models"
	"gorm.io/gorm"
)

const (
	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionRevision = "revision"
)

// SubmitDecision applies a client decision to a PENDING deliverable. For
// revision decisions a RevisionRequest row is created in the same transaction
// as the status change, and the returned count is recomputed from the store
// rather than incremented in memory.
func (s *Service) SubmitDecision(imageID, clientID uint, action, text string) (*models.Image, int64, error) {
	text = strings.TrimSpace(text)

	switch action {
	case ActionApprove, ActionReject, ActionRevision:
	default:
		return nil, 0, fmt.Errorf("%w: unknown action %q", models.ErrInvalidInput, action)
	}
	if action != ActionApprove && text == "" {
		return nil, 0, fmt.Errorf("%w: %s requires a non-empty message", models.ErrInvalidInput, action)
	}

	var image models.Image
	if err := s.db.First(&image, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fmt.Errorf("%w: image %d", models.ErrNotFound, imageID)
		}
		return nil, 0, err
	}

	now := time.Now()
	var count int64

	switch action {
	case ActionApprove:
		image.Status = models.ImageStatusApproved
		image.ApprovedAt = &now
		image.RejectionReason = nil
		image.ClientFeedback = nil
		if err := s.db.Save(&image).Error; err != nil {
			return nil, 0, err
		}
		count = int64(image.RevisionRequestCount)

	case ActionReject:
		image.Status = models.ImageStatusRejected
		image.RejectedAt = &now
		image.RejectionReason = &text
		image.ClientFeedback = nil
		if err := s.db.Save(&image).Error; err != nil {
			return nil, 0, err
		}
		count = int64(image.RevisionRequestCount)

	case ActionRevision:
		var client models.User
		if err := s.db.First(&client, clientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, fmt.Errorf("%w: user %d", models.ErrNotFound, clientID)
			}
			return nil, 0, err
		}
		if client.ID != image.ClientID {
			return nil, 0, fmt.Errorf("%w: image belongs to another client", models.ErrInvalidInput)
		}
		if !client.RevisionRulesConfirmed {
			return nil, 0, models.ErrRulesNotConfirmed
		}

		limit := int64(s.MaxRevisionRequests())

		// The guarded increment is the cap gate: the UPDATE takes the image
		// row lock, so a concurrent decision blocks until this transaction
		// commits and then re-evaluates the WHERE against the new counter.
		err := s.db.Transaction(func(tx *gorm.DB) error {
			gate := tx.Model(&models.Image{}).
				Where("id = ? AND revision_request_count < ?", image.ID, limit).
				Update("revision_request_count", gorm.Expr("revision_request_count + 1"))
			if gate.Error != nil {
				return gate.Error
			}
			if gate.RowsAffected == 0 {
				if err := tx.Model(&models.RevisionRequest{}).
					Where("image_id = ?", image.ID).
					Count(&count).Error; err != nil {
					return err
				}
				return fmt.Errorf("%w: %d of %d used", models.ErrRevisionCap, count, limit)
			}

			request := models.RevisionRequest{
				ImageID:    image.ID,
				ClientID:   image.ClientID,
				DesignerID: image.DesignerID,
				Feedback:   text,
				Status:     models.RevisionStatusPending,
			}
			if err := tx.Create(&request).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.RevisionRequest{}).
				Where("image_id = ?", image.ID).
				Count(&count).Error; err != nil {
				return err
			}

			if err := tx.First(&image, image.ID).Error; err != nil {
				return err
			}
			image.Status = models.ImageStatusRevisionRequested
			image.ClientFeedback = &text
			image.RejectionReason = nil
			image.RevisionRequestCount = int(count)
			return tx.Save(&image).Error
		})
		if err != nil {
			return nil, 0, err
		}
	}

	return &image, count, nil
}

// MarkRevisionDone resolves a PENDING revision request. Re-marking a request
// that is already DONE is a conflict, not a silent no-op.
func (s *Service) MarkRevisionDone(requestID uint) (*models.RevisionRequest, error) {
	var request models.RevisionRequest
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: revision request %d", models.ErrNotFound, requestID)
		}
		return nil, err
	}

	if request.Status != models.RevisionStatusPending {
		return nil, fmt.Errorf("%w: revision request %d is %s", models.ErrConflict, requestID, request.Status)
	}

	now := time.Now()
	request.Status = models.RevisionStatusDone
	request.DoneAt = &now
	if err := s.db.Save(&request).Error; err != nil {
		return nil, err
	}

	return &request, nil
}

// RevisionRequestsForImage lists the revision ledger of one image, oldest first.
func (s *Service) RevisionRequestsForImage(imageID uint) ([]models.RevisionRequest, error) {
	var requests []models.RevisionRequest
	err := s.db.Where("image_id = ?", imageID).Order("created_at asc").Find(&requests).Error
	return requests, err
}
