package domain

import (
	"fmt"
	"time"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User models a registered account. New accounts stay disabled until an
// administrator enables them out of band.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// PasswordTooLongError is the rule violation reported for a password bcrypt
// cannot hash.
func PasswordTooLongError() error {
	return &RuleViolationError{
		Kind:    ErrPasswordTooLong,
		Message: fmt.Sprintf("password는 %d바이트 이하여야 합니다", MaxPasswordBytes),
	}
}

// UsernameTakenError builds the rule violation reported for a duplicate
// registration.
func UsernameTakenError(username string) error {
	return &RuleViolationError{
		Kind:    ErrUserExists,
		Message: fmt.Sprintf("이미 존재하는 사용자입니다. 사용자 이름: %s", username),
	}
}
