package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrNotLoaded    = errors.New("content not loaded")
	ErrLoadFailed   = errors.New("content load failed")
)
