package entity

import "errors"

var (
	// Upload errors
	ErrEmptyFile = errors.New("empty file uploaded")
)
