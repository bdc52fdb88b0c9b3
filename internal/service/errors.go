package service

import "errors"

var (
	ErrInvalidPassword = errors.New("invalid password")
)
