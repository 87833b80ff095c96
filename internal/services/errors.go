package services

import (
	"errors"
)

var (
	// ErrInvalidCategory is returned for categories outside the fixed tracks
	ErrInvalidCategory = errors.New("invalid category: use 'fullstack' or 'aiml'")
	// ErrMissingUsername is returned when a scoring or lookup target has no username
	ErrMissingUsername = errors.New("github username is required")
	// ErrNoAPIToken is returned when an issue fetch is attempted without a GitHub token
	ErrNoAPIToken = errors.New("github api token is not configured")
)
