package updatecheck

import "errors"

// Error
var (
	ErrInvalidSlug             = errors.New("invalid slug format, expected 'owner/name'")
	ErrInvalidID               = errors.New("invalid repository ID, expected 'owner/name' but found number")
	ErrIncorrectParameterOwner = errors.New("incorrect parameter \"owner\"")
	ErrIncorrectParameterRepo  = errors.New("incorrect parameter \"repo\"")
	ErrInvalidRepository       = errors.New("repository must be set")
	ErrInvalidVersion          = errors.New("invalid version")
	ErrInvalidResponse         = errors.New("invalid response from release provider")
	ErrReleaseNotFound         = errors.New("no published release found")
)
