// Package domain defines domain-level errors for the user feature.
package domain

import "errors"

// Kind classifies user errors. The set is closed; anything the service
// layer does not classify is KindUnexpected.
type Kind uint8

const (
	KindUnexpected Kind = iota
	KindDuplicateUser
	KindUserNotFound
	KindWrongPassword
	KindInvalidToken
	KindInvalidUser
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindDuplicateUser:
		return "duplicate_user"
	case KindUserNotFound:
		return "user_not_found"
	case KindWrongPassword:
		return "wrong_password"
	case KindInvalidToken:
		return "invalid_token"
	case KindInvalidUser:
		return "invalid_user"
	default:
		return "unexpected"
	}
}

// Error is a classified user error.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Kind returns the classification of the error.
func (e *Error) Kind() Kind { return e.kind }

var (
	// ErrUserDuplicate indicates that a user with the same email or username already exists.
	ErrUserDuplicate = &Error{kind: KindDuplicateUser, msg: "user already exists"}

	// ErrUserNotFound indicates that no user matches the given login.
	ErrUserNotFound = &Error{kind: KindUserNotFound, msg: "user not found"}

	// ErrWrongPassword indicates that the password does not match the stored hash.
	ErrWrongPassword = &Error{kind: KindWrongPassword, msg: "wrong password"}

	// ErrUserToken indicates that an access token is malformed, expired,
	// signed with another key or refers to a user that no longer exists.
	ErrUserToken = &Error{kind: KindInvalidToken, msg: "invalid token"}

	// ErrInvalidUser indicates that email, full name or username is blank.
	ErrInvalidUser = &Error{kind: KindInvalidUser, msg: "invalid user"}
)

// KindOf returns the kind of the first *Error found in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnexpected
}
