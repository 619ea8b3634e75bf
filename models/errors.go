package models

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflicting state")
	ErrRevisionCap       = errors.New("revision request limit reached")
	ErrRulesNotConfirmed = errors.New("revision rules not confirmed")
)
