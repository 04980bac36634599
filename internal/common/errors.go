// Package common defines shared constants and sentinel errors used across
// client and server layers of GophAuth. Callers should use errors.Is to
// match these values and KindOf to classify them.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("user not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Registration / login input validation, in the order they are checked.
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrLevelRequired    = errors.New("level is required")
	ErrPasswordTooLong  = errors.New("password is too long")

	// Uniqueness errors.
	ErrEmailTaken = errors.New("email already registered")
	ErrNameTaken  = errors.New("user already registered")

	// Credential errors.
	ErrIncorrectPassword = errors.New("incorrect password")

	// Access gate errors (missing, invalid or malformed token).
	ErrAccessDenied = errors.New("access denied")
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// Kind groups sentinel errors into the categories the transport layer maps
// onto status codes.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindAuth
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrNameRequired, KindValidation},
	{ErrEmailRequired, KindValidation},
	{ErrPasswordRequired, KindValidation},
	{ErrPasswordMismatch, KindValidation},
	{ErrLevelRequired, KindValidation},
	{ErrPasswordTooLong, KindValidation},
	{ErrEmailTaken, KindValidation},
	{ErrNameTaken, KindValidation},
	{ErrorNotFound, KindNotFound},
	{ErrIncorrectPassword, KindAuth},
	{ErrAccessDenied, KindAuth},
	{ErrInvalidToken, KindAuth},
	{ErrTokenExpired, KindAuth},
	{ErrorInternal, KindPersistence},
}

// KindOf reports the category of err. Errors that match none of the known
// sentinels are KindUnknown and must be treated as server errors.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}
