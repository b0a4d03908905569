package services

import "errors"

// Business errors handlers map onto HTTP status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
	ErrAccountLocked      = errors.New("account temporarily locked, try again later")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrDuplicateVote      = errors.New("this email has already voted for this nomination")
	ErrVotingClosed       = errors.New("voting is not open for this nomination")
	ErrDuplicateCategory  = errors.New("a category with this name already exists")
	ErrCategoryInUse      = errors.New("category has nominations and cannot be deleted")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrPhotoRequired      = errors.New("nominee photo is required")
	ErrFileTooLarge       = errors.New("uploaded file exceeds the size limit")
	ErrNotAnImage         = errors.New("uploaded file must be an image")
	ErrAlreadySubscribed  = errors.New("email is already subscribed")
)
