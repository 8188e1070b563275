package milvus

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds surfaced by the client. Every failure returned by this package
// wraps exactly one of these sentinels, so callers can dispatch with
// errors.Is without parsing server messages.
var (
	// ErrConnection is returned when the endpoint is unreachable or the
	// handshake fails. It is fatal to the session and never retried here.
	ErrConnection = errors.New("milvus: connection failed")

	// ErrNotFound is returned when a referenced collection or index
	// does not exist.
	ErrNotFound = errors.New("milvus: not found")

	// ErrAlreadyExists is returned on a collection name collision.
	ErrAlreadyExists = errors.New("milvus: already exists")

	// ErrValidation is returned for malformed input (missing text field,
	// empty query list, non-positive limit). Raised before the remote
	// call whenever the check is local.
	ErrValidation = errors.New("milvus: validation failed")

	// ErrService is the catch-all for any other failure reported by the
	// server. The original message is preserved for diagnosis.
	ErrService = errors.New("milvus: service error")
)

// IsConnectionError checks if the error is a connection failure.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsNotFoundError checks if the error refers to a missing collection or index.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExistsError checks if the error is a collection name collision.
func IsAlreadyExistsError(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if the error is a local input validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// Kind names the taxonomy bucket of an error produced by this package.
// Used by the CLI to print a stable failure kind on stderr.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConnection):
		return "ConnectionError"
	case errors.Is(err, ErrNotFound):
		return "NotFoundError"
	case errors.Is(err, ErrAlreadyExists):
		return "AlreadyExistsError"
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	default:
		return "ServiceError"
	}
}

// classify maps an error returned by the SDK onto one of the sentinel kinds,
// keeping the server's message for diagnosis. The SDK exposes most server
// failures as flat messages, so matching is by content.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "can't find collection"),
		strings.Contains(msg, "collection not found"),
		strings.Contains(msg, "not exist"),
		strings.Contains(msg, "not found"):
		return fmt.Errorf("%s: %w: %s", op, ErrNotFound, err)

	case strings.Contains(msg, "already exist"),
		strings.Contains(msg, "duplicated collection"):
		return fmt.Errorf("%s: %w: %s", op, ErrAlreadyExists, err)

	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection error"),
		strings.Contains(msg, "unavailable"),
		strings.Contains(msg, "deadline exceeded"),
		strings.Contains(msg, "context canceled"):
		return fmt.Errorf("%s: %w: %s", op, ErrConnection, err)

	default:
		return fmt.Errorf("%s: %w: %s", op, ErrService, err)
	}
}
