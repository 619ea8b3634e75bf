package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atelierhq/design-portal/models"
	"gorm.io/gorm"
)

// ListRules returns the rule list in display order.
func (s *Service) ListRules() ([]models.RevisionRule, error) {
	var rules []models.RevisionRule
	err := s.db.Order("rule_order asc").Find(&rules).Error
	return rules, err
}

// CreateRule appends a rule to the end of the list.
func (s *Service) CreateRule(text string) (*models.RevisionRule, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: rule text is required", models.ErrInvalidInput)
	}

	var rule models.RevisionRule
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.RevisionRule{}).Count(&count).Error; err != nil {
			return err
		}

		rule = models.RevisionRule{Order: int(count) + 1, Text: text}
		if err := tx.Create(&rule).Error; err != nil {
			return err
		}
		return resequenceRules(tx)
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// UpdateRule rewrites a rule's text and, when order differs, moves it to that
// position before the whole list is renumbered.
func (s *Service) UpdateRule(id uint, text string, order int) (*models.RevisionRule, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: rule text is required", models.ErrInvalidInput)
	}

	var rule models.RevisionRule
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rule, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: revision rule %d", models.ErrNotFound, id)
			}
			return err
		}

		rule.Text = text
		if err := tx.Save(&rule).Error; err != nil {
			return err
		}

		var all []models.RevisionRule
		if err := tx.Order("rule_order asc, id asc").Find(&all).Error; err != nil {
			return err
		}

		// Pull the rule out, clamp the requested slot, splice it back in,
		// then rewrite the whole list to a dense 1..N sequence.
		reordered := make([]models.RevisionRule, 0, len(all))
		for _, r := range all {
			if r.ID != rule.ID {
				reordered = append(reordered, r)
			}
		}
		slot := rule.Order
		if order > 0 {
			slot = order
		}
		if slot < 1 {
			slot = 1
		}
		if slot > len(reordered)+1 {
			slot = len(reordered) + 1
		}
		reordered = append(reordered[:slot-1], append([]models.RevisionRule{rule}, reordered[slot-1:]...)...)

		for i := range reordered {
			if err := tx.Model(&models.RevisionRule{}).
				Where("id = ?", reordered[i].ID).
				Update("rule_order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.First(&rule, id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// DeleteRule removes a rule and renumbers the remainder.
func (s *Service) DeleteRule(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var rule models.RevisionRule
		if err := tx.First(&rule, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: revision rule %d", models.ErrNotFound, id)
			}
			return err
		}
		if err := tx.Delete(&rule).Error; err != nil {
			return err
		}
		return resequenceRules(tx)
	})
}

// resequenceRules rewrites every order value to a dense 1..N sequence. Runs
// after every mutation; the list doubles as the canonical display order and
// is expected to stay small.
func resequenceRules(tx *gorm.DB) error {
	var rules []models.RevisionRule
	if err := tx.Order("rule_order asc, id asc").Find(&rules).Error; err != nil {
		return err
	}

	for i := range rules {
		want := i + 1
		if rules[i].Order == want {
			continue
		}
		if err := tx.Model(&rules[i]).Update("rule_order", want).Error; err != nil {
			return err
		}
	}
	return nil
}
