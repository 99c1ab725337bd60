package entity

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrPlicoAlreadyExists = errors.New("plico already exists")
	ErrEmailAlreadyExists = errors.New("email already exists")
)
