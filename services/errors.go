package services

import "errors"

// Domain errors returned by the service layer. Controllers match these with
// errors.Is and translate them to HTTP statuses; raw storage errors never
// cross the service boundary.
var (
	// ErrInvalidCredentials covers both unknown-account and wrong-password so
	// the response never leaks whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken = errors.New("email already registered")

	// ErrValidation indicates a missing or malformed required field.
	ErrValidation = errors.New("validation failed")

	ErrCourseNotFound = errors.New("course not found")
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrUnauthenticated means no valid session: the caller should log in.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the session is valid but lacks privilege.
	ErrForbidden = errors.New("admin access required")

	// ErrDuplicateMembership marks a wishlist/enrollment insert that lost a
	// race to an identical row. Callers treat it as already-in-desired-state.
	ErrDuplicateMembership = errors.New("membership already exists")
)
