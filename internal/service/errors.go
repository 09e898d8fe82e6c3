package service

import "errors"

var (
	ErrCustomCSSNotFound = errors.New("custom stylesheet not found")
)
