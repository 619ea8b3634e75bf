// Package workflow owns the approval lifecycle of uploaded deliverables:
// image status transitions, the bounded revision-request ledger, comment
// threading, and the revision-rule list shown to clients.
package workflow

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/atelierhq/design-portal/models"
	"gorm.io/gorm"
)

type Service struct {
	db          *gorm.DB
	fallbackCap int
}

// NewService wires the workflow engine to a database handle. fallbackCap is
// used when the max_revision_requests setting row is absent.
func NewService(db *gorm.DB, fallbackCap int) *Service {
	if fallbackCap < 1 {
		fallbackCap = models.DefaultMaxRevisionRequests
	}
	return &Service{db: db, fallbackCap: fallbackCap}
}

// SetRulesConfirmed toggles a user's revision-rules confirmation flag, the
// gate on submitting revision decisions.
func (s *Service) SetRulesConfirmed(userID uint, confirmed bool) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", models.ErrNotFound, userID)
		}
		return nil, err
	}

	user.RevisionRulesConfirmed = confirmed
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// MaxRevisionRequests returns the configured per-image revision cap.
func (s *Service) MaxRevisionRequests() int {
	var setting models.Setting
	if err := s.db.Where("key = ?", models.SettingMaxRevisionRequests).First(&setting).Error; err != nil {
		return s.fallbackCap
	}

	limit, err := strconv.Atoi(setting.Value)
	if err != nil || limit < 1 {
		return s.fallbackCap
	}
	return limit
}

// SetMaxRevisionRequests stores a new per-image revision cap.
func (s *Service) SetMaxRevisionRequests(limit int) error {
	if limit < 1 {
		return fmt.Errorf("%w: max revision requests must be a positive integer", models.ErrInvalidInput)
	}

	var existing models.Setting
	err := s.db.Where("key = ?", models.SettingMaxRevisionRequests).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting := models.Setting{Key: models.SettingMaxRevisionRequests, Value: strconv.Itoa(limit)}
		return s.db.Create(&setting).Error
	}
	if err != nil {
		return err
	}

	existing.Value = strconv.Itoa(limit)
	return s.db.Save(&existing).Error
}
