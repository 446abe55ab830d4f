// Package common defines sentinel errors shared by repositories and
// controllers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// repository errors
	ErrorNotFound = errors.New("not found")

	// auth errors
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// form errors
	ErrInvalidSalary = errors.New("invalid salary")
)
