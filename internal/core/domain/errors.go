package domain

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is the single outcome for every bearer-token rejection
	// branch: missing header, bad signature, expired token, malformed
	// subject, or a subject with no matching user.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrTaskNotFound covers both a nonexistent task and a task owned by
	// someone else.
	ErrTaskNotFound = errors.New("task not found")

	ErrUserNotFound = errors.New("user not found")
)
