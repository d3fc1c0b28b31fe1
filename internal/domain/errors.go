package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrConflict             = errors.New("resource conflict")
	ErrInvalidInput         = errors.New("invalid input")
	ErrAdjustmentNotPending = errors.New("adjustment is not pending")
	ErrCoachingManual       = errors.New("coaching mode is manual")
)
