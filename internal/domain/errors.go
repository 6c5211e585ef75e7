package domain

import "errors"

var (
	ErrInvalidRange   = errors.New("invalid range")
	ErrEmptyAssetID   = errors.New("asset id is empty")
	ErrInvalidAssetID = errors.New("invalid asset id")
)
