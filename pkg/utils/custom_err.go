package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidVoteType    = errors.New("invalid vote type")
	ErrTripNotFound       = errors.New("trip not found")
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrPlanNotFound       = errors.New("final plan not found")
	ErrInviteNotFound     = errors.New("invite code not found")
	ErrNotTripMember      = errors.New("user is not a trip member")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")

	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI provider")
)
