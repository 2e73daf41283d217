package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind classifies a domain error. The crud and services packages
// produce these three kinds and nothing else; the transport layer maps
// them to HTTP statuses.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindConflict
	KindForbidden
)

// DomainError carries a kind plus a client-safe message
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &DomainError{Kind: KindNotFound, Message: message}
}

func Conflict(message string) error {
	return &DomainError{Kind: KindConflict, Message: message}
}

func Forbidden(message string) error {
	return &DomainError{Kind: KindForbidden, Message: message}
}

func kindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

func IsNotFound(err error) bool  { return kindOf(err) == KindNotFound }
func IsConflict(err error) bool  { return kindOf(err) == KindConflict }
func IsForbidden(err error) bool { return kindOf(err) == KindForbidden }

// StatusCode maps a domain error to its HTTP status. Anything that is not
// a DomainError is an internal error.
func StatusCode(err error) int {
	switch kindOf(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
