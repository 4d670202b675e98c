package service

import "errors"

var (
	ErrInvalidTelegramData   = errors.New("invalid telegram data")
	ErrInvalidQuery          = errors.New("invalid query")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
