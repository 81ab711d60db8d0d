package service

import "errors"

var (
	ErrURLNotFound      = errors.New("URL not found")
	ErrEmptyURL         = errors.New("URL is empty")
	ErrIDInUse          = errors.New("ID in use")
	ErrIDNotExist       = errors.New("ID does not exist")
	ErrIDSpaceExhausted = errors.New("ID space exhausted")
)
