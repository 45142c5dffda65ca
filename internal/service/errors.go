package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidToken     = errors.New("invalid token")

	ErrTaskNotClaimable = errors.New("task is assigned to another user")

	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrNameGenerationFailed = errors.New("could not generate a free organization name")
)
