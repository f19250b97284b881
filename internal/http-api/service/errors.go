package service

import (
	"errors"

	"fyyur/internal/http-api/repository"
)

var (
	ErrNotFound         = repository.ErrNotFound
	ErrInvalidReference = repository.ErrInvalidReference
	ErrPersistence      = repository.ErrPersistence
	ErrValidation       = errors.New("validation failed")
	ErrHasShows         = errors.New("record still has shows")
)
