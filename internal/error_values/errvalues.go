package errorvalues

import "errors"

// Validation errors
var (
	ErrValidation      = errors.New("validation error")
	ErrSelfInvite      = errors.New("can't share a habit with yourself")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrUnknownBallTier = errors.New("unknown ball tier")
)

// Conflict errors
var (
	ErrUserExists        = errors.New("such user already exists")
	ErrProfileExists     = errors.New("profile already exists")
	ErrAlreadyCompleted  = errors.New("already completed today")
	ErrSharedHabitExists = errors.New("pending or active shared habit already exists between these users")
	ErrWrongActor        = errors.New("action isn't allowed for this participant")
	ErrNotParticipant    = errors.New("user doesn't participate in shared habit")
	ErrInvalidTransition = errors.New("action isn't allowed in current shared habit status")
	ErrNotEnoughBalls    = errors.New("not enough balls")
	ErrStaleSharedHabit  = errors.New("shared habit was modified concurrently")
	ErrWrongCredentials  = errors.New("wrong name or password")
)

// Not found errors
var (
	ErrUserNotFound        = errors.New("user doesn't exists")
	ErrProfileNotFound     = errors.New("profile doesn't exist")
	ErrHabitNotFound       = errors.New("habit doesn't exist")
	ErrSharedHabitNotFound = errors.New("shared habit doesn't exist")
	ErrCacheMiss           = errors.New("profile isn't cached")
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrEmptyPool        = errors.New("empty pool")
	ErrMalformedProfile = errors.New("malformed profile document")
)
